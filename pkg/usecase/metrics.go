package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	directoryMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orgchart",
		Subsystem: "directory",
		Name:      "moves_total",
		Help:      "Total number of move requests broken down by result.",
	}, []string{"result"})

	directoryEmployees = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "orgchart",
		Subsystem: "directory",
		Name:      "employees",
		Help:      "Number of employees returned by the last listing.",
	})
)

const (
	moveResultCommitted       = "committed"
	moveResultNotFound        = "not_found"
	moveResultManagerNotFound = "manager_not_found"
	moveResultSelf            = "self"
	moveResultCycle           = "cycle"
	moveResultError           = "error"
)

func recordMove(result string) {
	if result == "" {
		result = moveResultError
	}
	directoryMoves.WithLabelValues(result).Inc()
}
