package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulsetrack",
		Subsystem: "activities",
		Name:      "submissions_total",
		Help:      "Activity submissions by outcome (accepted, rejected, failed).",
	}, []string{"outcome"})
	snapshotCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pulsetrack",
		Subsystem: "activities",
		Name:      "snapshots_delivered_total",
		Help:      "Live-update snapshots delivered through the aggregation pipeline.",
	})
	streamGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pulsetrack",
		Subsystem: "dashboard",
		Name:      "open_streams",
		Help:      "Currently open dashboard event streams.",
	})
)

func init() {
	prometheus.MustRegister(submissionCounter, snapshotCounter, streamGauge)
}

// RecordSubmission counts one activity submission by outcome.
func RecordSubmission(outcome string) {
	submissionCounter.WithLabelValues(outcome).Inc()
}

// RecordSnapshotDelivered counts one live-update snapshot delivery.
func RecordSnapshotDelivered() {
	snapshotCounter.Inc()
}

// StreamOpened bumps the open-stream gauge for the life of one stream.
func StreamOpened() {
	streamGauge.Inc()
}

// StreamClosed is the counterpart of StreamOpened.
func StreamClosed() {
	streamGauge.Dec()
}
