package artifact

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotExist is returned by Get when no artifact has been stored under
// the requested name.
var ErrNotExist = errors.New("artifact does not exist")

// Store persists derived artifacts (the summary image). Artifacts have no
// identity beyond their name; Put overwrites any prior version in place.
type Store interface {
	// Put stores data under name, replacing any existing artifact.
	Put(ctx context.Context, name, contentType string, data []byte) error
	// Get returns the artifact bytes, or ErrNotExist.
	Get(ctx context.Context, name string) ([]byte, error)
}

// NewStore creates the artifact store for the configured driver.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Path), nil
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unsupported artifact driver: %s", cfg.Driver)
	}
}
