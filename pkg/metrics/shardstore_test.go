package metrics

import (
	"testing"

	"github.com/bitym/core/pkg/shardstore"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var _ shardstore.Metrics = (*ShardStoreMetrics)(nil)

func TestShardStoreMetrics(t *testing.T) {
	m := NewShardStoreMetrics()

	m.AddFetch(true)
	m.AddFetch(true)
	m.AddFetch(false)
	m.AddStore(true)
	m.AddPayloadBytes(128)

	require.Equal(t, float64(2), testutil.ToFloat64(m.fetchCounter.WithLabelValues("true")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.fetchCounter.WithLabelValues("false")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.storeCounter.WithLabelValues("true")))
	require.Equal(t, float64(0), testutil.ToFloat64(m.storeCounter.WithLabelValues("false")))
	require.Equal(t, float64(128), testutil.ToFloat64(m.payloadBytes))
}
