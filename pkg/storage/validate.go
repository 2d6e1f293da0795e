package storage

import (
	"errors"
	"fmt"

	"github.com/bitym/core/pkg/shardstore"
)

// keyLen is the length of a hex-encoded RIPEMD-160 digest, the record
// key format produced by the contract negotiation layer.
const keyLen = 40

// ErrInvalidKey is returned for keys that are not hex-encoded
// RIPEMD-160 digests.
var ErrInvalidKey = errors.New("invalid record key")

// ErrNilRecord is returned when a nil record is passed to Store.
var ErrNilRecord = errors.New("nil record")

type validated struct {
	Adapter
}

// Validated wraps the adapter with key and record validation so that
// the backend can assume filesystem-safe keys. Lifecycle calls pass
// through unchecked.
func Validated(a Adapter) Adapter {
	return &validated{Adapter: a}
}

func (v *validated) Fetch(key string) (*shardstore.Record, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	return v.Adapter.Fetch(key)
}

func (v *validated) Store(rec *shardstore.Record) error {
	if rec == nil {
		return ErrNilRecord
	}

	if err := checkKey(rec.Hash); err != nil {
		return err
	}

	return v.Adapter.Store(rec)
}

func checkKey(key string) error {
	if len(key) != keyLen {
		return fmt.Errorf("%w: want %d characters, got %d", ErrInvalidKey, keyLen, len(key))
	}

	for i := 0; i < len(key); i++ {
		if c := key[i]; (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: non-hex character at position %d", ErrInvalidKey, i)
		}
	}

	return nil
}
