package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/goextract/internal/batch"
	"github.com/dshills/goextract/internal/mcp"
	"github.com/dshills/goextract/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

const usage = "Usage: goextract <file1.go> [file2.go ...]\n" +
	"       goextract [-cache] <file1.go> [file2.go ...]\n" +
	"       goextract serve\n" +
	"       goextract --version\n"

func main() {
	// Stdout is reserved for the result document (or the MCP protocol in
	// serve mode); everything else goes to stderr.
	log.SetOutput(os.Stderr)

	args := os.Args[1:]

	if len(args) > 0 && args[0] == "--version" {
		fmt.Printf("goextract\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	if len(args) > 0 && args[0] == "serve" {
		runServe()
		return
	}

	os.Exit(runExtract(args))
}

// runExtract runs one batch over the given file arguments and writes the
// combined JSON document to stdout.
func runExtract(args []string) int {
	useCache := false
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-cache" || arg == "--cache" {
			useCache = true
			continue
		}
		paths = append(paths, arg)
	}

	if len(paths) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	var cache storage.Store
	if useCache {
		store, err := openCache()
		if err != nil {
			// The cache is an optimization; a broken cache never fails a batch.
			log.Printf("warning: cache disabled: %v", err)
		} else {
			cache = store
			defer func() { _ = store.Close() }()
		}
	}

	runner := batch.New(&batch.Config{Cache: cache})
	result, warnings, err := runner.Run(context.Background(), paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", w.File, w.Err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON: %v\n", err)
		return 1
	}

	return 0
}

// openCache opens the extraction cache at GOEXTRACT_DB_PATH (or the default
// location under the home directory).
func openCache() (storage.Store, error) {
	dbPath := os.Getenv("GOEXTRACT_DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".goextract")
	}
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return storage.NewSQLiteStore(filepath.Join(dbPath, "cache.db"))
}

// runServe starts the MCP server on stdio and blocks until shutdown.
func runServe() {
	log.Printf("goextract MCP server v%s starting...", version)
	log.Printf("Build Mode: %s, Driver: %s", storage.BuildMode, storage.DriverName)

	dbPath := os.Getenv("GOEXTRACT_DB_PATH")
	if dbPath == "" {
		dbPath = mcp.DefaultDBPath
	}

	server, err := mcp.NewServer(dbPath)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}

	log.Println("Server stopped")
}
