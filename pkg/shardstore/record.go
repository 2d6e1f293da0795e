package shardstore

// Record is the unit of storage: one binary shard plus four mutually
// independent collections of per-peer JSON documents.
type Record struct {
	// Hash is the record key. It is assumed to be filesystem-safe;
	// callers that cannot guarantee this should go through
	// storage.Validated.
	Hash string

	// Shard is the raw binary payload. Nil marks a metadata-only
	// record.
	Shard []byte

	Contracts  map[string]any
	Trees      map[string]any
	Challenges map[string]any
	Meta       map[string]any
}

// categories returns the four document collections in the order of
// layout.Paths.CategoryDirs.
func (r *Record) categories() []map[string]any {
	return []map[string]any{r.Contracts, r.Trees, r.Challenges, r.Meta}
}
