package kvstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opInsert   = "insert"
	opRemove   = "remove"
	opUpdate   = "update"
	opLookup   = "lookup"
	opReset    = "reset"
	opContains = "contains"

	outcomeOK        = "ok"
	outcomeMiss      = "miss"
	outcomeDuplicate = "duplicate"
)

var (
	operations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "kvstore_operations_total",
		Help: "The total number of store operations, by operation and outcome",
	}, []string{"store", "op", "outcome"})

	entries = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "kvstore_entries",
		Help: "The number of key-value pairs currently held",
	}, []string{"store"})
)

// storeMetrics is nil when metrics are off; every method is nil-safe.
type storeMetrics struct {
	name string
}

func (m *storeMetrics) observe(op, outcome string) {
	if m == nil {
		return
	}

	operations.WithLabelValues(m.name, op, outcome).Inc()
}

func (m *storeMetrics) setSize(n int) {
	if m == nil {
		return
	}

	entries.WithLabelValues(m.name).Set(float64(n))
}
