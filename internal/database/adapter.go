package database

import (
	"context"

	"github.com/Lumos-Labs-HQ/winegen/internal/database/common"
	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

type Tx = common.Tx

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Transactions
	Begin(ctx context.Context) (Tx, error)

	// Schema operations
	CreateTable(ctx context.Context, table dataset.Table) error
	DropTable(ctx context.Context, tableName string) error
	GetTableRowCount(ctx context.Context, tableName string) (int, error)

	// SQL generation
	GenerateCreateTableSQL(table dataset.Table) string
	GenerateInsertSQL(table dataset.Table, rows [][]any) (string, []any, error)
	MaxBindParams() int

	// Data type mapping
	MapColumnType(t dataset.ColumnType) string
}
