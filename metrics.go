package quadtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultLabel = "result"

	resultAccepted = "accepted"
	resultRejected = "rejected"
)

var (
	inserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadtree_inserts",
		Help: "The number of points offered to a quadtree, by result.",
	}, []string{
		resultLabel,
	})

	subdivisions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadtree_subdivisions",
		Help: "The number of quadtree nodes that were split into quadrants.",
	})
)

func instrumentInsert(accepted bool) {
	result := resultRejected
	if accepted {
		result = resultAccepted
	}

	inserts.With(prometheus.Labels{
		resultLabel: result,
	}).Inc()
}

func instrumentSubdivision() {
	subdivisions.Inc()
}
