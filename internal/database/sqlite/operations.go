package sqlite

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// SQLite has no boolean or date storage class.
// SQLITE_MAX_VARIABLE_NUMBER of the bundled SQLite.
const maxArgs = 32766

var typeMap = map[dataset.ColumnType]string{
	dataset.TypeInteger: "INTEGER",
	dataset.TypeReal:    "REAL",
	dataset.TypeDecimal: "NUMERIC",
	dataset.TypeText:    "TEXT",
	dataset.TypeBoolean: "INTEGER",
	dataset.TypeDate:    "TEXT",
}

func (s *Adapter) CreateTable(ctx context.Context, table dataset.Table) error {
	if _, err := s.db.ExecContext(ctx, s.GenerateCreateTableSQL(table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}
	return nil
}

func (s *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", s.dialect.Quote(tableName)))
	return err
}

func (s *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.dialect.Quote(tableName))
	err := s.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Adapter) GenerateCreateTableSQL(table dataset.Table) string {
	return s.dialect.CreateTable(table)
}

func (s *Adapter) GenerateInsertSQL(table dataset.Table, rows [][]any) (string, []any, error) {
	return s.dialect.Insert(table, rows)
}

func (s *Adapter) MapColumnType(t dataset.ColumnType) string {
	return s.dialect.ColumnType(t)
}

func (s *Adapter) MaxBindParams() int {
	return s.dialect.MaxArgs
}
