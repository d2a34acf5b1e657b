package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Analysis metrics
	EventsAnalyzedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zonewatch_events_analyzed_total",
			Help: "Total number of movement events fed through the pipeline",
		},
	)

	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zonewatch_violations_total",
			Help: "Total number of violations detected, by type",
		},
		[]string{"type"},
	)

	IncidentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zonewatch_incidents_total",
			Help: "Total number of per-person incidents produced",
		},
	)

	PersonsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zonewatch_persons_skipped_total",
			Help: "Total number of persons skipped due to malformed events",
		},
	)

	// Augmentation metrics
	AugmentationCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zonewatch_augmentation_calls_total",
			Help: "Total number of augmentation requests, by outcome",
		},
		[]string{"kind", "status"},
	)

	AugmentationTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zonewatch_augmentation_tokens_total",
			Help: "Total tokens consumed by augmentation calls, by direction",
		},
		[]string{"direction"},
	)

	// Pipeline metrics
	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zonewatch_pipeline_duration_seconds",
			Help:    "Duration of full pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
