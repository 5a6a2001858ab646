package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/config"
	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/Lumos-Labs-HQ/winegen/internal/logger"
	"github.com/Lumos-Labs-HQ/winegen/internal/metrics"
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// run is one generation: a seeded sampler, a run id and the loggers that
// report on it.
type run struct {
	cfg      *config.Config
	id       string
	sampler  *sampler.Rand
	log      *zap.Logger
	recorder *metrics.Recorder
}

func newRun(cfg *config.Config) (*run, error) {
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Environment,
		ServiceName: "winegen",
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := sampler.New(cfg.Seed)
	id := uuid.NewString()

	return &run{
		cfg:      cfg,
		id:       id,
		sampler:  s,
		log:      logger.GetLogger().With(zap.String("run_id", id), zap.Int64("seed", s.Seed())),
		recorder: metrics.NewRecorder(),
	}, nil
}

func (r *run) seed() int64 {
	return r.sampler.Seed()
}

// execute streams all eight tables into target.
func (r *run) execute(ctx context.Context, target dataset.SinkFactory) (*dataset.Summary, error) {
	defer logger.Sync()

	g, err := dataset.NewGenerator(r.sampler, r.cfg.Bounds, r.cfg.Count)
	if err != nil {
		return nil, err
	}

	color.Cyan("🍷 Generating %d records (seed %d)", r.cfg.Count, r.seed())

	summary, err := dataset.NewPipeline(g, target,
		dataset.WithLogger(r.log),
		dataset.WithObserver(progress{}, r.recorder),
	).Run(ctx)
	if err != nil {
		return nil, err
	}

	r.recorder.RecordRun(r.cfg.Count)
	if r.cfg.MetricsFile != "" {
		if err := r.recorder.WriteTextfile(r.cfg.MetricsFile); err != nil {
			color.Yellow("⚠️  Failed to write metrics file: %v", err)
		} else {
			r.log.Debug("metrics written", zap.String("path", r.cfg.MetricsFile))
		}
	}

	return summary, nil
}

type progress struct{}

func (progress) ObserveStage(table string, rows int, elapsed time.Duration) {
	fmt.Printf("   %s %-16s %8d rows  %s\n", color.GreenString("✓"), table, rows, elapsed.Round(time.Microsecond))
}

func printSummary(summary *dataset.Summary, seed int64) {
	total := 0
	for _, rows := range summary.Rows {
		total += rows
	}
	fmt.Println()
	color.Green("✅ %d tables, %d rows in %s", len(summary.Tables), total, summary.Elapsed.Round(time.Millisecond))
	color.White("   Reproduce with --seed %d --count %d", seed, summary.Count)
}
