package shardstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitym/core/pkg/shardstore/layout"
)

// Iterate calls f once per record key currently present in the data
// directory, in no particular order. Iteration stops at the first
// error returned by f, which is propagated to the caller.
func (s *Store) Iterate(f func(key string) error) error {
	dir := filepath.Join(s.rootPath, layout.ShardsDirName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read shards directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if err := f(entry.Name()); err != nil {
			return err
		}
	}

	return nil
}
