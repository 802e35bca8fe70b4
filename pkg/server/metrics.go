package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_finder_searches_total",
		Help: "Search requests handled",
	})
	noSorts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_finder_sorts_total",
		Help: "Sort invocations by key",
	}, []string{"key"})
	noFilterSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_finder_filter_saves_total",
		Help: "Saved filter writes",
	})
	noFilterDeletes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_finder_filter_deletes_total",
		Help: "Saved filter deletions",
	})
)
