// Package storage provides the SQLite-backed extraction cache.
//
// The cache stores phase-1 (per-file) extraction results keyed by file path
// and SHA-256 content hash. Only phase-1 output is cached: method-to-struct
// attachment depends on the whole batch and is always recomputed, which keeps
// batch output a pure function of its inputs.
//
// Two SQLite drivers are supported, selected at build time exactly like the
// rest of the flags in build_cgo.go and build_purego.go: modernc.org/sqlite
// by default (no CGO), mattn/go-sqlite3 with -tags cgo_sqlite.
package storage
