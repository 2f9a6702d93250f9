package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	storeReadFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "surfbuddy",
		Subsystem: "store",
		Name:      "read_failures_total",
		Help:      "Collection reads that fell back to an empty collection.",
	}, []string{"key"})
	storeWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "surfbuddy",
		Subsystem: "store",
		Name:      "writes_total",
		Help:      "Full-collection writes that reached the store.",
	}, []string{"key"})
	sessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "surfbuddy",
		Subsystem: "sessions",
		Name:      "created_total",
		Help:      "Surf sessions created.",
	})
	photoUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "surfbuddy",
		Subsystem: "photos",
		Name:      "uploads_total",
		Help:      "Photo uploads by outcome.",
	}, []string{"status"})
	forecastFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "surfbuddy",
		Subsystem: "forecast",
		Name:      "fallbacks_total",
		Help:      "Forecast requests served with placeholder data.",
	})
)

func init() {
	prometheus.MustRegister(storeReadFailures, storeWrites, sessionsCreated, photoUploads, forecastFallbacks)
}

// RecordStoreReadFailure counts a read that was recovered with an empty collection.
func RecordStoreReadFailure(key string) {
	storeReadFailures.WithLabelValues(key).Inc()
}

// RecordStoreWrite counts a successful full-collection write.
func RecordStoreWrite(key string) {
	storeWrites.WithLabelValues(key).Inc()
}

func RecordSessionCreated() {
	sessionsCreated.Inc()
}

// RecordPhotoUpload counts an upload attempt by outcome.
func RecordPhotoUpload(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	photoUploads.WithLabelValues(status).Inc()
}

func RecordForecastFallback() {
	forecastFallbacks.Inc()
}
