package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flames", Name: "content_reads_total", Help: "Number of content reads served, by collection."},
		[]string{"collection"},
	)
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flames", Name: "submissions_total", Help: "Number of lead-capture submissions, by kind and outcome."},
		[]string{"kind", "outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentReads)
	reg.MustRegister(Submissions)
}
