package batch

import (
	"context"
	"crypto/sha256"
	"log"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/goextract/internal/extractor"
	"github.com/dshills/goextract/internal/storage"
	"github.com/dshills/goextract/pkg/types"
)

// Runner coordinates the two-phase extraction pipeline:
// collect per-file results, then attach methods to their owning structs.
type Runner struct {
	extractor *extractor.Extractor
	cache     storage.Store
	workers   int
}

// Config contains configuration for the batch runner
type Config struct {
	Workers int           // Number of concurrent workers (default: GOEXTRACT_WORKERS or runtime.NumCPU())
	Cache   storage.Store // Optional phase-1 result cache (nil disables caching)
}

// Warning is a recoverable per-file failure. Warnings belong on the
// diagnostic stream; they never appear in the result document.
type Warning struct {
	File string
	Err  error
}

// DefaultWorkers returns the worker count from GOEXTRACT_WORKERS, falling
// back to the CPU count.
func DefaultWorkers() int {
	if v := os.Getenv("GOEXTRACT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

// New creates a new Runner instance
func New(config *Config) *Runner {
	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Runner{
		extractor: extractor.New(),
		cache:     config.Cache,
		workers:   workers,
	}
}

// outcome is one file's phase-1 result, buffered by argument position so the
// merge is deterministic regardless of scheduling.
type outcome struct {
	result *types.Result
	err    error
}

// Run executes both pipeline phases over the given files. Per-file failures
// are returned as warnings and do not affect other files; the returned error
// is non-nil only on context cancellation.
func (r *Runner) Run(ctx context.Context, paths []string) (*types.Result, []Warning, error) {
	outcomes := make([]outcome, len(paths))

	sem := make(chan struct{}, r.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			result, err := r.collectFile(gctx, path)
			outcomes[i] = outcome{result: result, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Merge in file-argument order.
	combined := types.NewResult()
	warnings := []Warning{}
	for i := range outcomes {
		if outcomes[i].err != nil {
			warnings = append(warnings, Warning{File: paths[i], Err: outcomes[i].err})
			continue
		}
		combined.Append(outcomes[i].result)
	}

	attachMethods(combined)

	return combined, warnings, nil
}

// collectFile runs phase 1 for a single file, consulting the cache when one
// is configured. Cache failures degrade to a fresh extraction; they are never
// fatal to the file or the batch.
func (r *Runner) collectFile(ctx context.Context, path string) (*types.Result, error) {
	if r.cache == nil {
		return r.extractor.ExtractFile(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewReadError(path, err)
	}
	hash := sha256.Sum256(content)

	cached, err := r.cache.GetResult(ctx, path, hash)
	if err == nil {
		return cached, nil
	}
	if err != storage.ErrNotFound {
		log.Printf("cache lookup failed for %s: %v", path, err)
	}

	result, err := r.extractor.ExtractSource(path, content)
	if err != nil {
		return nil, err
	}

	entry := &storage.FileEntry{
		Path:        path,
		ContentHash: hash,
		SizeBytes:   int64(len(content)),
	}
	if info, statErr := os.Stat(path); statErr == nil {
		entry.ModTime = info.ModTime()
	}
	if err := r.cache.PutResult(ctx, entry, result); err != nil {
		log.Printf("cache store failed for %s: %v", path, err)
	}

	return result, nil
}

// attachMethods is phase 2: build the receiver-name to method-names mapping
// from the complete phase-1 output, then fill each struct's method list. A
// method whose receiver type has no struct in the batch is left out; that is
// the documented single-batch resolution limit, not something to guess around.
func attachMethods(result *types.Result) {
	methodsByReceiver := make(map[string][]string)
	for _, fn := range result.Functions {
		if fn.Receiver != "" {
			methodsByReceiver[fn.Receiver] = append(methodsByReceiver[fn.Receiver], fn.Name)
		}
	}

	for i := range result.Structs {
		if methods, ok := methodsByReceiver[result.Structs[i].Name]; ok {
			result.Structs[i].Methods = methods
		}
	}
}
