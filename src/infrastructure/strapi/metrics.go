package strapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "varro_catalogue_fetch_failures_total",
		Help: "Failed catalogue fetch attempts, including the retried ones.",
	})

	pagesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "varro_catalogue_pages_dropped_total",
		Help: "Pages lost to fetch failures while aggregating a collection.",
	}, []string{"collection"})
)
