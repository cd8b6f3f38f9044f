// Package types defines the record model shared across goextract components.
//
// The three record kinds mirror the output contract exactly:
//
//	FunctionRecord  - functions and methods, with verbatim body text
//	StructRecord    - struct types, with fields, embedded types, and methods
//	InterfaceRecord - interface types, with directly declared method names
//
// Result groups the three collections. The same shape is used for a single
// file's extraction output and for the combined batch document, so the batch
// aggregator is a pure merge over per-file Results:
//
//	combined := types.NewResult()
//	combined.Append(fileResult)
//
// A method appears twice in a combined document by design: once in Functions
// with its receiver set, and once as a name in the owning struct's Methods
// list after aggregation.
//
// ExtractError is the per-file failure type. Read and parse failures are
// recoverable at the batch level; they surface as diagnostics, never in the
// result document.
package types
