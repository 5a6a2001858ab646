package dataset

import (
	"context"
	"fmt"
)

// RecordSink receives the rows of one table in order.
type RecordSink interface {
	Append(fields []string) error
	Close() error
}

// SinkFactory opens one sink per table.
type SinkFactory interface {
	Open(ctx context.Context, table Table) (RecordSink, error)
}

// Committer is implemented by factories that can publish or discard a whole
// run. The pipeline calls Commit after the last stage and Abort on failure.
type Committer interface {
	Commit(ctx context.Context) error
	Abort(ctx context.Context) error
}

// Snapshot holds the rows of every table keyed by table name.
type Snapshot map[string][][]string

// MemoryTarget keeps every row in memory.
type MemoryTarget struct {
	Tables Snapshot
}

func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{Tables: make(Snapshot)}
}

func (m *MemoryTarget) Open(_ context.Context, table Table) (RecordSink, error) {
	if _, exists := m.Tables[table.Name]; exists {
		return nil, fmt.Errorf("table %s already written", table.Name)
	}
	m.Tables[table.Name] = [][]string{}
	return &memorySink{target: m, table: table.Name}, nil
}

type memorySink struct {
	target *MemoryTarget
	table  string
	closed bool
}

func (s *memorySink) Append(fields []string) error {
	if s.closed {
		return fmt.Errorf("append to closed sink %s", s.table)
	}
	row := make([]string, len(fields))
	copy(row, fields)
	s.target.Tables[s.table] = append(s.target.Tables[s.table], row)
	return nil
}

func (s *memorySink) Close() error {
	s.closed = true
	return nil
}
