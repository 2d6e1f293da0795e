package shardstore

import (
	"fmt"
	"path/filepath"

	"github.com/bitym/core/pkg/shardstore/layout"
	"github.com/bitym/core/pkg/util"
)

// Open implements storage.Adapter.
func (s *Store) Open(readOnly bool) error {
	s.readOnly = readOnly
	return nil
}

// Init implements storage.Adapter. It creates the data directory root
// and its shards directory if they are absent.
func (s *Store) Init() error {
	if s.readOnly {
		return nil
	}

	for _, dir := range []string{
		s.rootPath,
		filepath.Join(s.rootPath, layout.ShardsDirName),
	} {
		if err := util.MkdirAllX(dir, s.perm); err != nil {
			return fmt.Errorf("mkdir all for %q: %w", dir, err)
		}
	}

	return nil
}

// Close implements storage.Adapter.
func (s *Store) Close() error {
	return nil
}
