/*
Package shardstore implements the filesystem-backed record storage of a
storage node. Each record holds one binary shard plus four categories
of per-peer JSON metadata and occupies its own directory under the
"shards" subdirectory of the data directory:

	<root>/shards/<key>/contracts/<peerId>      (JSON text)
	<root>/shards/<key>/trees/<peerId>          (JSON text)
	<root>/shards/<key>/challenges/<peerId>     (JSON text)
	<root>/shards/<key>/meta/<peerId>           (JSON text)
	<root>/shards/<key>/shard.data              (raw binary)

Within one Fetch or Store the payload file and the four category
directories are processed concurrently with first-error-wins
aggregation: the call fails with the first error observed, sub-writes
applied before the failure are not rolled back and in-flight siblings
run to completion with their results discarded.

The store performs no locking across calls. A Store racing a Fetch (or
another Store) of the same key may observe partially-updated state;
callers that need per-key exclusivity must serialize externally.
*/
package shardstore
