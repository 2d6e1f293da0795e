package shardstore

// Metrics collects operation counters of the store. Implementations
// MUST be safe for concurrent use.
type Metrics interface {
	// AddFetch accounts one finished fetch operation.
	AddFetch(success bool)
	// AddStore accounts one finished store operation.
	AddStore(success bool)
	// AddPayloadBytes accounts the size of a written payload.
	AddPayloadBytes(n int)
}

type noopMetrics struct{}

func (noopMetrics) AddFetch(bool) {}

func (noopMetrics) AddStore(bool) {}

func (noopMetrics) AddPayloadBytes(int) {}
