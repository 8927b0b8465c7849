package storage

import (
	"errors"

	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
)

var (
	// ErrNotInitialized indicates the snapshot was never populated.
	ErrNotInitialized = errors.New("site configuration snapshot is not initialized")
)

// Storage provides read access to the resolved site configuration.
type Storage interface {
	Get() (siteconfig.Config, error)
}

// Snapshot holds the configuration resolved at startup. It is never
// modified after construction, so readers need no locking.
type Snapshot struct {
	cfg   siteconfig.Config
	ready bool
}

// NewSnapshot stores a deep copy of cfg.
func NewSnapshot(cfg siteconfig.Config) *Snapshot {
	return &Snapshot{
		cfg:   cfg.Clone(),
		ready: true,
	}
}

// Get returns a defensive copy of the stored configuration.
func (s *Snapshot) Get() (siteconfig.Config, error) {
	if s == nil || !s.ready {
		return siteconfig.Config{}, ErrNotInitialized
	}
	return s.cfg.Clone(), nil
}
