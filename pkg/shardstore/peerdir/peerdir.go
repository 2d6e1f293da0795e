// Package peerdir maps a filesystem directory onto a collection of
// per-peer JSON documents: one file per peer, the basename is the peer
// identifier, the contents are the JSON encoding of the document.
//
// Peer identifiers are opaque to the codec and never interpreted.
package peerdir

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Read decodes every entry of dir into a peer-to-document map.
// Entries are processed concurrently; the first failure aborts the
// whole read and no partial map is returned.
func Read(dir string) (map[string]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Op: OpEnumerate, Dir: dir, Err: err}
	}

	var (
		mtx sync.Mutex
		eg  errgroup.Group

		docs = make(map[string]any, len(entries))
	)

	for _, entry := range entries {
		name := entry.Name()

		eg.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return &Error{Op: OpRead, Dir: dir, Name: name, Err: err}
			}

			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				return &Error{Op: OpParse, Dir: dir, Name: name, Err: err}
			}

			mtx.Lock()
			docs[name] = doc
			mtx.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Write encodes every document of docs into a file named by its peer
// identifier inside dir, overwriting existing files with the same
// name. Entries are processed concurrently; the first failure aborts
// the whole write, entries written before it remain on disk.
func Write(dir string, docs map[string]any, perm fs.FileMode) error {
	var eg errgroup.Group

	for name, doc := range docs {
		name, doc := name, doc

		eg.Go(func() error {
			data, err := json.Marshal(doc)
			if err != nil {
				return &Error{Op: OpSerialize, Dir: dir, Name: name, Err: err}
			}

			if err := os.WriteFile(filepath.Join(dir, name), data, perm); err != nil {
				return &Error{Op: OpWrite, Dir: dir, Name: name, Err: err}
			}

			return nil
		})
	}

	return eg.Wait()
}
