package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerbuilder_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"status", "route"})
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "careerbuilder_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	SnapshotWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerbuilder_snapshot_writes_total",
		Help: "Snapshot writes by kind (autosave, publish) and result",
	}, []string{"kind", "result"})
	SnapshotDecodeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerbuilder_snapshot_decode_failures_total",
		Help: "Stored snapshots that failed to parse and were treated as no state",
	}, []string{"key"})
	RevisionsPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careerbuilder_revisions_pruned_total",
		Help: "Publish revisions deleted by the prune job",
	})
	PreviewSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "careerbuilder_preview_subscribers",
		Help: "Connected live-preview websocket clients",
	})
	PublishThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careerbuilder_publish_throttled_total",
		Help: "Publish requests rejected by the cooldown",
	})
)
