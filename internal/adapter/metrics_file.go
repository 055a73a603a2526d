package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "github.com/mouse-blink/mutmap/internal/model"
)

const metricsNamespace = "mutmap"

// MetricsWriter exports mapping statistics for monitoring systems.
type MetricsWriter interface {
	WriteMetrics(ctx context.Context, path m.Path, summary m.MappingSummary) error
}

// TextfileMetricsWriter writes mapping statistics in the Prometheus text
// exposition format, as read by the node_exporter textfile collector.
type TextfileMetricsWriter struct{}

// NewTextfileMetricsWriter creates a new TextfileMetricsWriter.
func NewTextfileMetricsWriter() *TextfileMetricsWriter {
	return &TextfileMetricsWriter{}
}

// WriteMetrics registers one gauge family per statistic on a private
// registry and writes it to path.
func (w *TextfileMetricsWriter) WriteMetrics(ctx context.Context, path m.Path, summary m.MappingSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "mutants",
		Help:      "Mutants per mapping status.",
	}, []string{"status"})

	byNodeType := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "mapped_mutants",
		Help:      "Mapped mutants per condition node type.",
	}, []string{"node_type"})

	ratio := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "mapping_ratio",
		Help:      "Share of mutants resolved to a condition block.",
	})

	registry := prometheus.NewRegistry()
	for _, collector := range []prometheus.Collector{byStatus, byNodeType, ratio} {
		if err := registry.Register(collector); err != nil {
			return fmt.Errorf("register metric: %w", err)
		}
	}

	for _, count := range summary.StatusCounts {
		byStatus.WithLabelValues(count.Label).Set(float64(count.Count))
	}

	for _, count := range summary.NodeKindCounts {
		byNodeType.WithLabelValues(count.Label).Set(float64(count.Count))
	}

	if summary.Total > 0 {
		ratio.Set(float64(summary.Mapped) / float64(summary.Total))
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	if err := prometheus.WriteToTextfile(string(path), registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
