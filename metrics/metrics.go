// Package metrics records per-graph solve metrics in a Prometheus
// registry that can be dumped for the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry and the packcolor collectors.
type Recorder struct {
	registry *prometheus.Registry

	solveDuration *prometheus.HistogramVec
	chromatic     *prometheus.GaugeVec
	modelRows     *prometheus.GaugeVec
	modelCols     *prometheus.GaugeVec
	runsTotal     *prometheus.CounterVec
}

// New returns a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "packcolor_solve_duration_seconds",
			Help:    "Wall time of one packing-coloring solve",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12), // 1ms to ~70min
		}, []string{"backend", "status"}),
		chromatic: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "packcolor_chromatic_number",
			Help: "Packing chromatic number found for a graph",
		}, []string{"graph"}),
		modelRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "packcolor_model_rows",
			Help: "Constraints in the packing-coloring model",
		}, []string{"graph"}),
		modelCols: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "packcolor_model_cols",
			Help: "Columns in the packing-coloring model",
		}, []string{"graph"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "packcolor_runs_total",
			Help: "Graphs processed, by outcome",
		}, []string{"status"}),
	}
	r.registry.MustRegister(r.solveDuration, r.chromatic, r.modelRows, r.modelCols, r.runsTotal)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveSolve records one backend run.
func (r *Recorder) ObserveSolve(backend, status string, d time.Duration) {
	r.solveDuration.WithLabelValues(backend, status).Observe(d.Seconds())
}

// SetModel records the model size for graph.
func (r *Recorder) SetModel(graph string, rows, cols int) {
	r.modelRows.WithLabelValues(graph).Set(float64(rows))
	r.modelCols.WithLabelValues(graph).Set(float64(cols))
}

// SetChromatic records the packing chromatic number for graph.
func (r *Recorder) SetChromatic(graph string, n int) {
	r.chromatic.WithLabelValues(graph).Set(float64(n))
}

// CountRun counts one processed graph with outcome status
// ("optimal", "time_limit", "error", "skipped", "cached", ...).
func (r *Recorder) CountRun(status string) {
	r.runsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile dumps every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
