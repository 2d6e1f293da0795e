package shardstore

import (
	"fmt"
	"os"

	"github.com/bitym/core/pkg/shardstore/layout"
	"github.com/bitym/core/pkg/shardstore/peerdir"
	"github.com/bitym/core/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store persists the record under its hash.
//
// The record directory skeleton is ensured on every call, so a tree
// damaged by an earlier partial failure heals on the next store. The
// payload file, if the record carries a shard, and the four category
// collections are then written concurrently with no rollback: the
// first failure aborts the call, writes applied before it stay on
// disk.
//
// Category writes are additive. Peer entries present on disk but
// absent from rec are left untouched, and a record without a shard
// does not clear a previously stored payload file.
func (s *Store) Store(rec *Record) error {
	if s.readOnly {
		return ErrReadOnly
	}

	p := layout.Record(s.rootPath, rec.Hash)

	for _, dir := range append([]string{p.RecordDir}, p.CategoryDirs()...) {
		if err := util.MkdirAllX(dir, s.perm); err != nil {
			s.metrics.AddStore(false)

			return fmt.Errorf("mkdir all for %q: %w", dir, err)
		}
	}

	var eg errgroup.Group

	if rec.Shard != nil {
		eg.Go(func() error {
			if err := os.WriteFile(p.PayloadFile, rec.Shard, s.perm); err != nil {
				return fmt.Errorf("write payload %q: %w", p.PayloadFile, err)
			}

			s.metrics.AddPayloadBytes(len(rec.Shard))

			return nil
		})
	}

	cats := rec.categories()

	for i, dir := range p.CategoryDirs() {
		i, dir := i, dir

		eg.Go(func() error {
			return peerdir.Write(dir, cats[i], s.perm)
		})
	}

	if err := eg.Wait(); err != nil {
		s.metrics.AddStore(false)
		s.log.Debug("record store failed",
			zap.String("hash", rec.Hash),
			zap.Error(err))

		return err
	}

	s.metrics.AddStore(true)

	return nil
}
