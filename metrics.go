package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genai_client",
			Name:      "requests_total",
			Help:      "Controller requests dispatched, including retries.",
		},
		[]string{"resource", "op"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genai_client",
			Name:      "request_failures_total",
			Help:      "Controller requests that ended in a server or transport error.",
		},
		[]string{"resource", "op"},
	)
)
