// Package layout derives the filesystem paths composing the on-disk
// representation of a shard record.
package layout

import "path/filepath"

// Fixed on-disk names. Changing any of them breaks compatibility with
// existing data directories.
const (
	// ShardsDirName is the directory under the data directory root
	// that holds one subdirectory per stored record.
	ShardsDirName = "shards"

	// ContractsDirName holds per-peer storage contracts.
	ContractsDirName = "contracts"
	// TreesDirName holds per-peer audit trees.
	TreesDirName = "trees"
	// ChallengesDirName holds per-peer retrievability challenges.
	ChallengesDirName = "challenges"
	// MetaDirName holds auxiliary per-peer metadata.
	MetaDirName = "meta"

	// PayloadFileName is the name of the raw binary payload file
	// inside a record directory.
	PayloadFileName = "shard.data"
)

// Paths groups the paths composing a single record on disk.
type Paths struct {
	RecordDir     string
	ContractsDir  string
	TreesDir      string
	ChallengesDir string
	MetaDir       string
	PayloadFile   string
}

// Record derives the path set of the record stored under key inside
// the data directory root. The derivation is pure: the key is not
// validated and the filesystem is not touched.
func Record(root, key string) Paths {
	dir := filepath.Join(root, ShardsDirName, key)

	return Paths{
		RecordDir:     dir,
		ContractsDir:  filepath.Join(dir, ContractsDirName),
		TreesDir:      filepath.Join(dir, TreesDirName),
		ChallengesDir: filepath.Join(dir, ChallengesDirName),
		MetaDir:       filepath.Join(dir, MetaDirName),
		PayloadFile:   filepath.Join(dir, PayloadFileName),
	}
}

// CategoryDirs returns the four per-peer category directories in the
// order they are created on first store.
func (p Paths) CategoryDirs() []string {
	return []string{p.ContractsDir, p.TreesDir, p.ChallengesDir, p.MetaDir}
}
