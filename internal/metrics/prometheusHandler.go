package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var chunksExtracted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "chunks_extracted_total",
	Help: "Number of chunks that survived normalization",
})

var blocksDiscarded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blocks_discarded_total",
	Help: "Number of page blocks dropped by the length filter",
})

var embeddingFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "embedding_failures_total",
	Help: "Per-chunk embedding calls that degraded to a null embedding",
})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_request_duration_seconds",
	Help:    "Total time spent processing one uploaded document.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of pipeline stages and external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func AddChunksExtracted(n int) {
	chunksExtracted.Add(float64(n))
}

func AddBlocksDiscarded(n int) {
	blocksDiscarded.Add(float64(n))
}

func IncrementEmbeddingFailures() {
	embeddingFailures.Inc()
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureRequestMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
