package txn

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationsTotal counts manager operations by operation and result
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "girderloads_txn_operations_total",
		Help: "Total transaction manager operations by operation and result",
	}, []string{"operation", "result"})

	// undoDepth tracks the size of the most recently used undo stack
	undoDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "girderloads_txn_undo_depth",
		Help: "Number of transactions on the undo stack",
	})
)

func record(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	operationsTotal.WithLabelValues(operation, result).Inc()
}
