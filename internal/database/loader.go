package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultBatchSize = 500

// Loader streams generated tables into a database inside one transaction.
// It implements dataset.SinkFactory and dataset.Committer.
type Loader struct {
	adapter  DatabaseAdapter
	batch    int
	recreate bool
	logger   *zap.Logger
	tx       Tx
}

func NewLoader(adapter DatabaseAdapter, batch int, recreate bool, logger *zap.Logger) *Loader {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{adapter: adapter, batch: batch, recreate: recreate, logger: logger}
}

// Prepare creates the schema and opens the transaction rows are written in.
// With recreate set, existing tables are dropped first in reverse order.
func (l *Loader) Prepare(ctx context.Context) error {
	tables, err := NewDependencyGraph(dataset.Tables()).CreationOrder()
	if err != nil {
		return err
	}

	if l.recreate {
		for i := len(tables) - 1; i >= 0; i-- {
			if err := l.adapter.DropTable(ctx, tables[i].Name); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", tables[i].Name, err)
			}
		}
		l.logger.Info("dropped existing tables", zap.Int("tables", len(tables)))
	}

	for _, table := range tables {
		if err := l.adapter.CreateTable(ctx, table); err != nil {
			return err
		}
	}

	tx, err := l.adapter.Begin(ctx)
	if err != nil {
		return err
	}
	l.tx = tx
	return nil
}

func (l *Loader) Open(ctx context.Context, table dataset.Table) (dataset.RecordSink, error) {
	if l.tx == nil {
		return nil, fmt.Errorf("loader not prepared")
	}
	limit := rowsPerInsert(l.batch, l.adapter.MaxBindParams(), len(table.Columns))
	if limit < l.batch {
		l.logger.Debug("batch capped by bind parameter limit",
			zap.String("table", table.Name), zap.Int("rows", limit))
	}
	return &tableSink{ctx: ctx, loader: l, table: table, limit: limit}, nil
}

func (l *Loader) Commit(ctx context.Context) error {
	if l.tx == nil {
		return fmt.Errorf("loader not prepared")
	}
	err := l.tx.Commit(ctx)
	l.tx = nil
	return err
}

func (l *Loader) Abort(ctx context.Context) error {
	if l.tx == nil {
		return nil
	}
	err := l.tx.Rollback(ctx)
	l.tx = nil
	return err
}

type tableSink struct {
	ctx    context.Context
	loader *Loader
	table  dataset.Table
	limit  int
	rows   [][]any
}

func (s *tableSink) Append(fields []string) error {
	row, err := ConvertRow(s.table, fields)
	if err != nil {
		return err
	}
	s.rows = append(s.rows, row)
	if len(s.rows) >= s.limit {
		return s.flush()
	}
	return nil
}

func (s *tableSink) Close() error {
	if len(s.rows) == 0 {
		return nil
	}
	return s.flush()
}

func (s *tableSink) flush() error {
	query, args, err := s.loader.adapter.GenerateInsertSQL(s.table, s.rows)
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", s.table.Name, err)
	}
	if err := s.loader.tx.Exec(s.ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.table.Name, err)
	}
	s.loader.logger.Debug("batch inserted", zap.String("table", s.table.Name), zap.Int("rows", len(s.rows)))
	s.rows = s.rows[:0]
	return nil
}

// rowsPerInsert keeps one multi-row INSERT under the driver's bind parameter
// limit.
func rowsPerInsert(batch, maxArgs, columns int) int {
	if maxArgs <= 0 || columns <= 0 {
		return batch
	}
	return max(1, min(batch, maxArgs/columns))
}

// ConvertRow turns the text fields of a row into driver values according to
// the table's column types.
func ConvertRow(table dataset.Table, fields []string) ([]any, error) {
	if len(fields) != len(table.Columns) {
		return nil, fmt.Errorf("%s: row has %d fields, want %d", table.Name, len(fields), len(table.Columns))
	}

	row := make([]any, len(fields))
	for i, column := range table.Columns {
		v, err := convertField(column.Type, fields[i])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", table.Name, column.Name, err)
		}
		row[i] = v
	}
	return row, nil
}

func convertField(t dataset.ColumnType, field string) (any, error) {
	switch t {
	case dataset.TypeInteger:
		return strconv.ParseInt(field, 10, 64)
	case dataset.TypeReal:
		return strconv.ParseFloat(field, 64)
	case dataset.TypeDecimal:
		return decimal.NewFromString(field)
	case dataset.TypeBoolean:
		return strconv.ParseBool(field)
	case dataset.TypeDate:
		return time.Parse(time.DateOnly, field)
	default:
		return field, nil
	}
}
