package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	PipelineQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "acadex",
			Name:      "pipeline_queries_total",
			Help:      "Total queries processed, by classified intent",
		},
		[]string{"intent"},
	)

	RetrievalScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "acadex",
			Name:      "retrieval_similarity_score",
			Help:      "Similarity scores of retrieved documents",
			Buckets:   []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.75, 1},
		},
	)

	AnswerCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "acadex",
			Name:      "answer_cache_total",
			Help:      "Answer cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	PolishRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "acadex",
			Name:      "polish_requests_total",
			Help:      "Answer polish attempts by outcome",
		},
		[]string{"status"}, // "ok" / "error"
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(PipelineQueriesTotal)
	prometheus.MustRegister(RetrievalScore)
	prometheus.MustRegister(AnswerCacheTotal)
	prometheus.MustRegister(PolishRequestsTotal)
	pipelineMetricsRegistered = true
}
