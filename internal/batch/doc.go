// Package batch aggregates per-file extraction results into the combined
// output document.
//
// Phase 1 (collect) runs the extractor over every file concurrently with a
// bounded worker pool, buffering results by argument position. Phase 2
// (attach) is a pure merge over the complete phase-1 output: it maps receiver
// type names to method names and fills each struct record's method list.
// Because a method may precede its struct, or live in another file of the
// batch, attachment cannot happen during the per-file walk.
//
// Output order is file-argument order, then declaration order within each
// file, independent of goroutine scheduling.
package batch
