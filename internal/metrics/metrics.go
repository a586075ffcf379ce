// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and outbound model usage.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "http_request_duration_seconds",
	Help:    "Time spent handling a request, including the remote model call.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"path"})

var llmTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "llm_tokens_total",
	Help: "Tokens reported by the model API, labelled by direction",
}, []string{"kind"})

var llmCostTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "llm_usage_cost_dollars_total",
	Help: "Accumulated model usage cost in USD",
})

var audioSecondsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "transcription_audio_seconds_total",
	Help: "Seconds of audio submitted for transcription",
})

// ObserveRequest records one handled HTTP request.
func ObserveRequest(path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}

// ObserveTokenUsage records reported token usage and its derived cost.
func ObserveTokenUsage(promptTokens, completionTokens int, cost float64) {
	llmTokensTotal.WithLabelValues("input").Add(float64(promptTokens))
	llmTokensTotal.WithLabelValues("output").Add(float64(completionTokens))
	llmCostTotal.Add(cost)
}

// ObserveAudio records the measured duration and cost of one transcription.
func ObserveAudio(seconds, cost float64) {
	audioSecondsTotal.Add(seconds)
	llmCostTotal.Add(cost)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
