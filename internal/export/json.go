package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// JSONTarget writes one JSON array per table. Each row is an object keyed by
// column name with string values.
type JSONTarget struct {
	staging
	meta   Meta
	tables []ManifestTable
}

func NewJSONTarget(dir string, meta Meta) *JSONTarget {
	return &JSONTarget{staging: staging{dir: dir}, meta: meta}
}

func (t *JSONTarget) Open(_ context.Context, table dataset.Table) (dataset.RecordSink, error) {
	name := table.Name + ".json"
	path, err := t.path(name)
	if err != nil {
		return nil, err
	}

	t.tables = append(t.tables, ManifestTable{Name: table.Name, File: name, Columns: table.ColumnNames()})
	idx := len(t.tables) - 1

	return &jsonSink{path: path, columns: table.ColumnNames(), done: func(rows int) { t.tables[idx].Rows = rows }}, nil
}

func (t *JSONTarget) Commit(_ context.Context) error {
	return t.commit(Manifest{
		RunID:       t.meta.RunID,
		Seed:        t.meta.Seed,
		Count:       t.meta.Count,
		Format:      "json",
		GeneratedAt: time.Now().UTC(),
		Bounds:      t.meta.Bounds,
		Tables:      t.tables,
	})
}

func (t *JSONTarget) Abort(_ context.Context) error {
	return t.abort()
}

type jsonSink struct {
	path    string
	columns []string
	rows    []map[string]string
	done    func(rows int)
}

func (s *jsonSink) Append(fields []string) error {
	if len(fields) != len(s.columns) {
		return fmt.Errorf("row has %d fields, table has %d columns", len(fields), len(s.columns))
	}
	row := make(map[string]string, len(fields))
	for i, col := range s.columns {
		row[col] = fields[i]
	}
	s.rows = append(s.rows, row)
	return nil
}

func (s *jsonSink) Close() error {
	if s.rows == nil {
		s.rows = []map[string]string{}
	}
	data, err := json.MarshalIndent(s.rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	s.done(len(s.rows))
	return nil
}
