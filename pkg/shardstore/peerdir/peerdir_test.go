package peerdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()

	docs := map[string]any{
		"peer1": map[string]any{"amount": float64(100)},
		"peer2": []any{float64(1), "two", nil},
		"peer3": "bare string",
	}

	require.NoError(t, Write(dir, docs, os.ModePerm))

	actual, err := Read(dir)
	require.NoError(t, err)
	require.Equal(t, docs, actual)
}

func TestReadMissingDir(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, OpEnumerate, dirErr.Op)
}

func TestReadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "peer1"), []byte("{broken"), os.ModePerm))

	_, err := Read(dir)
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, OpParse, dirErr.Op)
	require.Equal(t, "peer1", dirErr.Name)
}

func TestReadAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good"), []byte(`{"a":1}`), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad"), []byte("{broken"), os.ModePerm))

	docs, err := Read(dir)
	require.Error(t, err)
	require.Nil(t, docs)
}

func TestWriteUnserializable(t *testing.T) {
	dir := t.TempDir()

	err := Write(dir, map[string]any{"peer1": make(chan int)}, os.ModePerm)
	require.Error(t, err)

	var dirErr *Error
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, OpSerialize, dirErr.Op)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(dir, map[string]any{"peer1": "old"}, os.ModePerm))
	require.NoError(t, Write(dir, map[string]any{"peer1": "new"}, os.ModePerm))

	docs, err := Read(dir)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"peer1": "new"}, docs)
}

func TestWriteAdditive(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(dir, map[string]any{"peer1": "one"}, os.ModePerm))
	require.NoError(t, Write(dir, map[string]any{"peer2": "two"}, os.ModePerm))

	docs, err := Read(dir)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"peer1": "one", "peer2": "two"}, docs)
}

func TestErrorUnwrap(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
