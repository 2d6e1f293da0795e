package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/bitym/core/pkg/shardstore"
	"github.com/stretchr/testify/require"
)

const testKey = "5e3899e4960e49bbbb9ebbec0844cf12a126c059"

func newTestAdapter(t *testing.T) Adapter {
	s, err := shardstore.New(
		shardstore.WithPath(t.TempDir()),
		shardstore.WithPerm(os.ModePerm),
	)
	require.NoError(t, err)

	a := Validated(s)
	require.NoError(t, a.Open(false))
	require.NoError(t, a.Init())
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	return a
}

func TestValidatedDelegates(t *testing.T) {
	a := newTestAdapter(t)

	require.NoError(t, a.Store(&shardstore.Record{
		Hash:  testKey,
		Shard: []byte("hello"),
	}))

	rec, err := a.Fetch(testKey)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), rec.Shard)
}

func TestValidatedRejectsBadKeys(t *testing.T) {
	a := newTestAdapter(t)

	for _, key := range []string{
		"",
		"abc123",
		strings.Repeat("g", 40),
		strings.ToUpper(testKey),
		testKey + "00",
	} {
		_, err := a.Fetch(key)
		require.ErrorIs(t, err, ErrInvalidKey, key)

		require.ErrorIs(t, a.Store(&shardstore.Record{Hash: key}), ErrInvalidKey, key)
	}

	// nothing must reach the backend
	_, err := a.Fetch(testKey)
	require.ErrorIs(t, err, shardstore.ErrRecordNotFound)
}

func TestValidatedRejectsNilRecord(t *testing.T) {
	a := newTestAdapter(t)

	require.ErrorIs(t, a.Store(nil), ErrNilRecord)
}
