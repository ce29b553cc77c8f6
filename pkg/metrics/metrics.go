package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_analyses_total",
			Help: "Total number of skill analyses by input source",
		},
		[]string{"source"},
	)

	ExtractionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_extraction_failures_total",
			Help: "Resume text extraction failures by document format",
		},
		[]string{"format"},
	)

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_reports_total",
			Help: "PDF reports requested, by outcome",
		},
		[]string{"status"},
	)

	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillgap_report_duration_seconds",
			Help:    "Time spent rendering a PDF report",
			Buckets: prometheus.DefBuckets,
		},
	)
)
