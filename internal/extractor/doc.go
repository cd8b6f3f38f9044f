// Package extractor turns a single Go source file into declaration records
// using AST parsing.
//
// The extractor leverages Go's standard library (go/parser, go/ast, go/token)
// so positions are exact byte offsets into the original source, which is what
// makes verbatim body capture possible.
//
// # Basic Usage
//
//	e := extractor.New()
//	result, err := e.ExtractFile("/path/to/file.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, fn := range result.Functions {
//	    fmt.Printf("%s:%d %s\n", fn.File, fn.Line, fn.Name)
//	}
//
// # Failure model
//
// A file either extracts completely or fails with a single *types.ExtractError
// (read or parse stage). Inside a successful extraction nothing fails:
// unresolvable receiver shapes become empty strings, unnamed parameters are
// skipped, and unrecognized embedded types format as best-effort descriptors.
//
// Method records come out with Methods unattached; attaching them to struct
// records is the batch aggregator's job, because a method may live in a
// different file than its owning type.
package extractor
