package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// Meta describes a run for the manifest.
type Meta struct {
	RunID  string
	Seed   int64
	Count  int
	Bounds dataset.Bounds
}

// CSVTarget writes one delimited file per table, without a header row.
type CSVTarget struct {
	staging
	delimiter rune
	meta      Meta
	tables    []ManifestTable
}

func NewCSVTarget(dir string, delimiter rune, meta Meta) *CSVTarget {
	return &CSVTarget{
		staging:   staging{dir: dir},
		delimiter: delimiter,
		meta:      meta,
	}
}

func (t *CSVTarget) Open(_ context.Context, table dataset.Table) (dataset.RecordSink, error) {
	name := table.Name + ".csv"
	path, err := t.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file for %s: %w", table.Name, err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = t.delimiter

	t.tables = append(t.tables, ManifestTable{Name: table.Name, File: name, Columns: table.ColumnNames()})
	idx := len(t.tables) - 1

	return &csvSink{file: file, writer: writer, done: func(rows int) { t.tables[idx].Rows = rows }}, nil
}

func (t *CSVTarget) Commit(_ context.Context) error {
	return t.commit(Manifest{
		RunID:       t.meta.RunID,
		Seed:        t.meta.Seed,
		Count:       t.meta.Count,
		Format:      "csv",
		Delimiter:   string(t.delimiter),
		GeneratedAt: time.Now().UTC(),
		Bounds:      t.meta.Bounds,
		Tables:      t.tables,
	})
}

func (t *CSVTarget) Abort(_ context.Context) error {
	return t.abort()
}

type csvSink struct {
	file   *os.File
	writer *csv.Writer
	rows   int
	done   func(rows int)
}

func (s *csvSink) Append(fields []string) error {
	if err := s.writer.Write(fields); err != nil {
		return err
	}
	s.rows++
	return nil
}

func (s *csvSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	s.done(s.rows)
	return s.file.Close()
}
