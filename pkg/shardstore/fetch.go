package shardstore

import (
	"fmt"
	"os"

	"github.com/bitym/core/pkg/shardstore/layout"
	"github.com/bitym/core/pkg/shardstore/peerdir"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetch reads the record stored under the given key.
//
// Returns ErrRecordNotFound if the record directory is absent; no
// further I/O happens then. Otherwise the payload file and the four
// category directories are read concurrently; the first failure aborts
// the fetch and no record is returned. A missing payload file is not a
// failure: the returned record has a nil Shard then (metadata-only
// record).
func (s *Store) Fetch(key string) (*Record, error) {
	p := layout.Record(s.rootPath, key)

	if _, err := os.Stat(p.RecordDir); err != nil {
		s.metrics.AddFetch(false)

		if os.IsNotExist(err) {
			return nil, ErrRecordNotFound
		}

		return nil, fmt.Errorf("stat record directory %q: %w", p.RecordDir, err)
	}

	rec := Record{Hash: key}
	cats := []*map[string]any{&rec.Contracts, &rec.Trees, &rec.Challenges, &rec.Meta}

	var eg errgroup.Group

	eg.Go(func() error {
		data, err := os.ReadFile(p.PayloadFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}

			return fmt.Errorf("read payload %q: %w", p.PayloadFile, err)
		}

		rec.Shard = data

		return nil
	})

	for i, dir := range p.CategoryDirs() {
		i, dir := i, dir

		eg.Go(func() error {
			docs, err := peerdir.Read(dir)
			if err != nil {
				return err
			}

			*cats[i] = docs

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		s.metrics.AddFetch(false)
		s.log.Debug("record fetch failed",
			zap.String("hash", key),
			zap.Error(err))

		return nil, err
	}

	s.metrics.AddFetch(true)

	return &rec, nil
}
