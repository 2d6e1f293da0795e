package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const shardStoreSubsystem = "shardstore"

// ShardStoreMetrics accounts shard record operations. It implements
// shardstore.Metrics over Prometheus counters.
type ShardStoreMetrics struct {
	fetchCounter *prometheus.CounterVec
	storeCounter *prometheus.CounterVec
	payloadBytes prometheus.Counter
}

// NewShardStoreMetrics creates, registers and returns a new
// ShardStoreMetrics instance.
func NewShardStoreMetrics() *ShardStoreMetrics {
	m := &ShardStoreMetrics{
		fetchCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: shardStoreSubsystem,
			Name:      "fetch_total",
			Help:      "Total number of finished record fetch operations.",
		}, []string{"success"}),
		storeCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: shardStoreSubsystem,
			Name:      "store_total",
			Help:      "Total number of finished record store operations.",
		}, []string{"success"}),
		payloadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: shardStoreSubsystem,
			Name:      "payload_bytes_total",
			Help:      "Total number of payload bytes written to disk.",
		}),
	}
	m.register()

	return m
}

func (m *ShardStoreMetrics) register() {
	prometheus.MustRegister(
		m.fetchCounter,
		m.storeCounter,
		m.payloadBytes,
	)
}

// AddFetch implements shardstore.Metrics.
func (m *ShardStoreMetrics) AddFetch(success bool) {
	m.fetchCounter.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// AddStore implements shardstore.Metrics.
func (m *ShardStoreMetrics) AddStore(success bool) {
	m.storeCounter.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// AddPayloadBytes implements shardstore.Metrics.
func (m *ShardStoreMetrics) AddPayloadBytes(n int) {
	m.payloadBytes.Add(float64(n))
}
