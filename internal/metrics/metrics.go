package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects per-run generation metrics in its own registry.
type Recorder struct {
	registry *prometheus.Registry

	RowsGenerated prometheus.CounterVec
	StageDuration prometheus.HistogramVec
	RunRecords    prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		RowsGenerated: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "winegen_rows_generated_total",
				Help: "Rows written per table",
			},
			[]string{"table"},
		),

		StageDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "winegen_stage_duration_seconds",
				Help:    "Time spent generating and writing one table",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms, 4ms, 16ms...
			},
			[]string{"stage"},
		),

		RunRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "winegen_run_records",
			Help: "Record count N of the last run",
		}),
	}
}

// ObserveStage implements dataset.StageObserver.
func (r *Recorder) ObserveStage(table string, rows int, elapsed time.Duration) {
	r.RowsGenerated.WithLabelValues(table).Add(float64(rows))
	r.StageDuration.WithLabelValues(table).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordRun(count int) {
	r.RunRecords.Set(float64(count))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
