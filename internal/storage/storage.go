package storage

import (
	"context"
	"time"

	"github.com/dshills/goextract/pkg/types"
)

// Store defines the interface for the extraction cache. The cache holds
// phase-1 (per-file) extraction output keyed by path and content hash; batch
// aggregation is always recomputed, so a cache hit and a fresh extraction
// produce byte-identical batch output.
type Store interface {
	// GetResult returns the cached per-file result for path if the stored
	// content hash matches, or ErrNotFound.
	GetResult(ctx context.Context, path string, contentHash [32]byte) (*types.Result, error)

	// PutResult stores (or replaces) the per-file result for entry.Path.
	PutResult(ctx context.Context, entry *FileEntry, result *types.Result) error

	// DeleteResult removes the cached result for a path.
	DeleteResult(ctx context.Context, path string) error

	// CountFiles returns the number of cached files.
	CountFiles(ctx context.Context) (int, error)

	// Close releases the underlying database.
	Close() error
}

// FileEntry is the metadata stored alongside a cached result.
type FileEntry struct {
	Path        string
	ContentHash [32]byte
	SizeBytes   int64
	ModTime     time.Time
}
