package postgres

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// The wire protocol counts bind parameters in a uint16.
const maxArgs = 65535

var typeMap = map[dataset.ColumnType]string{
	dataset.TypeInteger: "BIGINT",
	dataset.TypeReal:    "DOUBLE PRECISION",
	dataset.TypeDecimal: "NUMERIC",
	dataset.TypeText:    "TEXT",
	dataset.TypeBoolean: "BOOLEAN",
	dataset.TypeDate:    "DATE",
}

func (p *Adapter) CreateTable(ctx context.Context, table dataset.Table) error {
	if _, err := p.pool.Exec(ctx, p.GenerateCreateTableSQL(table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}
	return nil
}

func (p *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", p.dialect.Quote(tableName)))
	return err
}

func (p *Adapter) GenerateCreateTableSQL(table dataset.Table) string {
	return p.dialect.CreateTable(table)
}

func (p *Adapter) GenerateInsertSQL(table dataset.Table, rows [][]any) (string, []any, error) {
	return p.dialect.Insert(table, rows)
}

func (p *Adapter) MapColumnType(t dataset.ColumnType) string {
	return p.dialect.ColumnType(t)
}

func (p *Adapter) MaxBindParams() int {
	return p.dialect.MaxArgs
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", p.dialect.Quote(tableName))
	err := p.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}
