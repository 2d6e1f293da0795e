package shardstore

import "errors"

// ErrRecordNotFound is returned by Fetch when no record was ever
// stored under the requested key.
var ErrRecordNotFound = errors.New("record not found")

// ErrReadOnly is returned for modifying operations when the store was
// opened in readonly mode.
var ErrReadOnly = errors.New("opened as read-only")
