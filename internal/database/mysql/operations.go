package mysql

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// Placeholders allowed in one prepared statement.
const maxArgs = 65535

var typeMap = map[dataset.ColumnType]string{
	dataset.TypeInteger: "BIGINT",
	dataset.TypeReal:    "DOUBLE",
	dataset.TypeDecimal: "DECIMAL(30,10)",
	dataset.TypeText:    "VARCHAR(255)",
	dataset.TypeBoolean: "BOOLEAN",
	dataset.TypeDate:    "DATE",
}

func (m *Adapter) CreateTable(ctx context.Context, table dataset.Table) error {
	if _, err := m.db.ExecContext(ctx, m.GenerateCreateTableSQL(table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}
	return nil
}

func (m *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", m.dialect.Quote(tableName)))
	return err
}

func (m *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", m.dialect.Quote(tableName))
	err := m.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (m *Adapter) GenerateCreateTableSQL(table dataset.Table) string {
	return m.dialect.CreateTable(table)
}

func (m *Adapter) GenerateInsertSQL(table dataset.Table, rows [][]any) (string, []any, error) {
	return m.dialect.Insert(table, rows)
}

func (m *Adapter) MapColumnType(t dataset.ColumnType) string {
	return m.dialect.ColumnType(t)
}

func (m *Adapter) MaxBindParams() int {
	return m.dialect.MaxArgs
}
