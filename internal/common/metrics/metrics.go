package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_requests_total",
			Help: "Total number of fetch client requests by path and status code",
		},
		[]string{"path", "status"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "catalog_fetch_duration_seconds",
			Help: "Duration of fetch client requests in seconds",
		},
		[]string{"path"},
	)

	RepositoryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_repository_outcomes_total",
			Help: "Total number of repository results by operation and outcome kind",
		},
		[]string{"operation", "outcome"},
	)
)
