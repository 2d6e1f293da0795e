package shardstore

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// Store gives access to the shard records of a data directory.
type Store struct {
	cfg

	readOnly bool
}

// Option represents Store's constructor option.
type Option func(*cfg)

type cfg struct {
	rootPath string

	perm fs.FileMode

	log *zap.Logger

	metrics Metrics
}

const (
	defaultPerm = 0o700

	defaultDataDir = ".bitym"
)

func initCfg(c *cfg) {
	*c = cfg{
		perm:    defaultPerm,
		log:     zap.L(),
		metrics: noopMetrics{},
	}
}

// New creates and returns a new Store instance. If no root path option
// is given, the data directory defaults to ".bitym" under the user
// home directory; the lookup happens here once, operations never
// consult the environment.
func New(opts ...Option) (*Store, error) {
	s := new(Store)
	initCfg(&s.cfg)

	for i := range opts {
		opts[i](&s.cfg)
	}

	if s.rootPath == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}

		s.rootPath = filepath.Join(home, defaultDataDir)
	}

	return s, nil
}

// Path returns the root of the data directory.
func (s *Store) Path() string {
	return s.rootPath
}

// WithPath returns option to set the root of the data directory.
func WithPath(p string) Option {
	return func(c *cfg) {
		c.rootPath = p
	}
}

// WithPerm returns option to set the permission bits of created
// directories and files.
func WithPerm(p fs.FileMode) Option {
	return func(c *cfg) {
		c.perm = p
	}
}

// WithLogger returns option to set the component logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}

// WithMetrics returns option to set the operation metrics collector.
func WithMetrics(m Metrics) Option {
	return func(c *cfg) {
		c.metrics = m
	}
}
