package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"punchclock/internal/sheet"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store loads and saves a whole sheet.
type Store interface {
	Load(ctx context.Context) (*sheet.Sheet, error)
	Save(ctx context.Context, s *sheet.Sheet) error
	Path() string
	Close() error
}

// Open returns the store for backend at path. An empty path resolves to the
// backend's default location.
func Open(ctx context.Context, backend, path string, logger *zap.Logger) (Store, error) {
	switch backend {
	case BackendJSON, "":
		if path == "" {
			p, err := Locate(JSONFile)
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewFile(path, logger), nil
	case BackendSQLite:
		if path == "" {
			p, err := Locate(SQLiteFile)
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewSQLite(ctx, path, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
