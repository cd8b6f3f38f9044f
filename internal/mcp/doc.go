// Package mcp exposes goextract over the Model Context Protocol on stdio.
//
// Two tools are registered: extract_declarations runs a batch extraction and
// returns the same JSON document as the CLI (plus a warnings array), and
// get_status reports cache statistics. Stdout carries the protocol, so all
// logging goes to stderr.
package mcp
