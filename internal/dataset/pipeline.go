package dataset

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// StageObserver is told about every table once it has been written.
type StageObserver interface {
	ObserveStage(table string, rows int, elapsed time.Duration)
}

type Summary struct {
	Count   int
	Tables  []string
	Rows    map[string]int
	Elapsed time.Duration
}

type Pipeline struct {
	gen       *Generator
	target    SinkFactory
	logger    *zap.Logger
	observers []StageObserver
}

type Option func(*Pipeline)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithObserver(observers ...StageObserver) Option {
	return func(p *Pipeline) {
		for _, o := range observers {
			if o != nil {
				p.observers = append(p.observers, o)
			}
		}
	}
}

func NewPipeline(gen *Generator, target SinkFactory, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:    gen,
		target: target,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the eight stages in dependency order. Each stage gets only
// the values returned by earlier stages. The first error stops the run and,
// when the target is a Committer, discards everything written so far.
func (p *Pipeline) Run(ctx context.Context) (summary *Summary, err error) {
	began := time.Now()
	summary = &Summary{Count: p.gen.Count(), Rows: make(map[string]int)}
	p.logger.Info("generation started", zap.Int("count", p.gen.Count()))

	defer func() {
		if err == nil {
			return
		}
		p.logger.Error("generation failed", zap.Error(err))
		if c, ok := p.target.(Committer); ok {
			if abortErr := c.Abort(ctx); abortErr != nil {
				p.logger.Warn("failed to discard partial output", zap.Error(abortErr))
			}
		}
	}()

	w := &stageWriter{p: p, summary: summary}

	start := time.Now()
	cards, err := p.gen.BonusCards()
	if err != nil {
		return nil, fmt.Errorf("bonus cards: %w", err)
	}
	if err := emit(ctx, w, BonusCards, cards, start); err != nil {
		return nil, err
	}

	start = time.Now()
	customers, err := p.gen.Customers(p.gen.NewPool("bonus_cards", len(cards)))
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	if err := emit(ctx, w, Customers, customers, start); err != nil {
		return nil, err
	}

	start = time.Now()
	suppliers, err := p.gen.Suppliers()
	if err != nil {
		return nil, fmt.Errorf("suppliers: %w", err)
	}
	if err := emit(ctx, w, Suppliers, suppliers, start); err != nil {
		return nil, err
	}

	start = time.Now()
	users, err := p.gen.Users(len(customers), len(suppliers))
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	if err := emit(ctx, w, Users, users, start); err != nil {
		return nil, err
	}

	start = time.Now()
	wines, counts, err := p.gen.Wines()
	if err != nil {
		return nil, fmt.Errorf("wines: %w", err)
	}
	if err := emit(ctx, w, Wines, wines, start); err != nil {
		return nil, err
	}

	start = time.Now()
	supplierWines, offers, err := p.gen.SupplierWines(counts, len(suppliers))
	if err != nil {
		return nil, fmt.Errorf("supplier wines: %w", err)
	}
	if err := emit(ctx, w, SupplierWines, supplierWines, start); err != nil {
		return nil, err
	}

	start = time.Now()
	sales, totals, err := p.gen.Sales(offers)
	if err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	if err := emit(ctx, w, Sales, sales, start); err != nil {
		return nil, err
	}

	start = time.Now()
	purchases, err := p.gen.Purchases(totals,
		p.gen.NewPool("customers[active]", len(customers)),
		p.gen.NewPool("customers[canceled]", len(customers)),
	)
	if err != nil {
		return nil, fmt.Errorf("purchases: %w", err)
	}
	if err := emit(ctx, w, Purchases, purchases, start); err != nil {
		return nil, err
	}

	if c, ok := p.target.(Committer); ok {
		if err := c.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit dataset: %w", err)
		}
	}

	summary.Elapsed = time.Since(began)
	p.logger.Info("generation finished",
		zap.Int("tables", len(summary.Tables)),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

type stageWriter struct {
	p       *Pipeline
	summary *Summary
}

type record interface {
	Fields() []string
}

func emit[T record](ctx context.Context, w *stageWriter, table Table, records []T, start time.Time) error {
	sink, err := w.p.target.Open(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to open sink for %s: %w", table.Name, err)
	}

	for _, r := range records {
		if err := sink.Append(r.Fields()); err != nil {
			sink.Close()
			return fmt.Errorf("failed to write %s: %w", table.Name, err)
		}
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("failed to close sink for %s: %w", table.Name, err)
	}

	elapsed := time.Since(start)
	w.summary.Tables = append(w.summary.Tables, table.Name)
	w.summary.Rows[table.Name] = len(records)

	w.p.logger.Info("table written",
		zap.String("table", table.Name),
		zap.Int("rows", len(records)),
		zap.Duration("elapsed", elapsed),
	)
	for _, o := range w.p.observers {
		o.ObserveStage(table.Name, len(records), elapsed)
	}
	return nil
}
