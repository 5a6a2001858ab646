package common

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/Masterminds/squirrel"
)

// Tx is the write side of an open transaction.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SQLTx adapts *sql.Tx for the database/sql based drivers.
type SQLTx struct {
	Tx *sql.Tx
}

func (t SQLTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.Tx.ExecContext(ctx, query, args...)
	return err
}

func (t SQLTx) Commit(context.Context) error {
	return t.Tx.Commit()
}

func (t SQLTx) Rollback(context.Context) error {
	return t.Tx.Rollback()
}

// Dialect is what differs between providers when rendering SQL.
type Dialect struct {
	Quote   func(string) string
	TypeMap map[dataset.ColumnType]string
	Builder squirrel.StatementBuilderType
	// MaxArgs is the most bind parameters one statement may carry.
	MaxArgs int
}

func (d Dialect) ColumnType(t dataset.ColumnType) string {
	if mapped, ok := d.TypeMap[t]; ok {
		return mapped
	}
	return "TEXT"
}

// CreateTable renders a CREATE TABLE statement. The id column is the primary
// key, every other column is NOT NULL and references become foreign keys.
func (d Dialect) CreateTable(table dataset.Table) string {
	var lines []string
	var foreignKeys []string

	for _, column := range table.Columns {
		if column.References != "" {
			foreignKeys = append(foreignKeys, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
				d.Quote(column.Name), d.Quote(column.References), d.Quote("id")))
		}
	}

	lines = append(lines, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", d.Quote(table.Name)))

	for i, column := range table.Columns {
		comma := ","
		if i == len(table.Columns)-1 && len(foreignKeys) == 0 {
			comma = ""
		}
		constraint := "NOT NULL"
		if column.Name == "id" {
			constraint = "PRIMARY KEY"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s%s", d.Quote(column.Name), d.ColumnType(column.Type), constraint, comma))
	}

	for i, fk := range foreignKeys {
		comma := ","
		if i == len(foreignKeys)-1 {
			comma = ""
		}
		lines = append(lines, fk+comma)
	}

	lines = append(lines, ");")
	return strings.Join(lines, "\n")
}

// Insert renders one multi-row INSERT for rows of table.
func (d Dialect) Insert(table dataset.Table, rows [][]any) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("no rows to insert into %s", table.Name)
	}

	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = d.Quote(c.Name)
	}

	q := d.Builder.Insert(d.Quote(table.Name)).Columns(columns...)
	for _, row := range rows {
		q = q.Values(row...)
	}
	return q.ToSql()
}

// QuoteDouble quotes an identifier with ANSI double quotes.
func QuoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteBacktick quotes an identifier the MySQL way.
func QuoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
