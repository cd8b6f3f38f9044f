package types

import (
	"errors"
	"go/token"
)

// FunctionRecord describes a function or method declaration extracted from
// Go source. Methods carry the receiver type name; free functions leave it
// empty and the field is omitted from serialized output.
type FunctionRecord struct {
	Name     string   `json:"name"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	EndLine  int      `json:"end_line"`
	LOC      int      `json:"loc"`
	Body     string   `json:"body"`
	Params   []string `json:"params"`
	Receiver string   `json:"receiver,omitempty"`
	Exported bool     `json:"exported"`
}

// IsMethod returns true if the function is bound to a receiver type.
func (f *FunctionRecord) IsMethod() bool {
	return f.Receiver != ""
}

// StructRecord describes a struct type declaration. Methods is filled during
// batch aggregation, never during per-file extraction.
type StructRecord struct {
	Name     string   `json:"name"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	LOC      int      `json:"loc"`
	Methods  []string `json:"methods"`
	Fields   []string `json:"fields"`
	Embedded []string `json:"embedded"`
	Exported bool     `json:"exported"`
}

// InterfaceRecord describes an interface type declaration. Methods lists only
// directly declared method names; embedded interfaces are not expanded.
type InterfaceRecord struct {
	Name    string   `json:"name"`
	File    string   `json:"file"`
	Line    int      `json:"line"`
	Methods []string `json:"methods"`
}

// Result is the extraction output document. The same shape serves both a
// single file (phase-1 output, also the cache payload) and a whole batch.
// All three collections are always present, possibly empty.
type Result struct {
	Functions  []FunctionRecord  `json:"functions"`
	Structs    []StructRecord    `json:"structs"`
	Interfaces []InterfaceRecord `json:"interfaces"`
}

// NewResult creates an empty Result with all collections initialized, so the
// serialized document carries `[]` rather than `null`.
func NewResult() *Result {
	return &Result{
		Functions:  []FunctionRecord{},
		Structs:    []StructRecord{},
		Interfaces: []InterfaceRecord{},
	}
}

// Append concatenates another result's collections onto this one, preserving
// declaration order within each source.
func (r *Result) Append(other *Result) {
	r.Functions = append(r.Functions, other.Functions...)
	r.Structs = append(r.Structs, other.Structs...)
	r.Interfaces = append(r.Interfaces, other.Interfaces...)
}

// IsExported reports whether an identifier is exported under Go's casing
// convention. The empty name is never exported.
func IsExported(name string) bool {
	return token.IsExported(name)
}

// Validate checks structural invariants of a function record.
func (f *FunctionRecord) Validate() error {
	if f.Name == "" {
		return errors.New("function name is required")
	}
	if f.Line <= 0 || f.EndLine <= 0 {
		return errors.New("line numbers must be positive")
	}
	if f.Line > f.EndLine {
		return errors.New("start line must be before or equal to end line")
	}
	if f.LOC != f.EndLine-f.Line+1 {
		return errors.New("loc must equal end_line - line + 1")
	}
	if f.Exported != IsExported(f.Name) {
		return errors.New("exported flag does not match name casing")
	}
	return nil
}

// Validate checks structural invariants of a struct record.
func (s *StructRecord) Validate() error {
	if s.Name == "" {
		return errors.New("struct name is required")
	}
	if s.Line <= 0 || s.LOC <= 0 {
		return errors.New("line and loc must be positive")
	}
	if s.Methods == nil || s.Fields == nil || s.Embedded == nil {
		return errors.New("collections must be initialized")
	}
	if s.Exported != IsExported(s.Name) {
		return errors.New("exported flag does not match name casing")
	}
	return nil
}

// Validate checks structural invariants of an interface record.
func (i *InterfaceRecord) Validate() error {
	if i.Name == "" {
		return errors.New("interface name is required")
	}
	if i.Line <= 0 {
		return errors.New("line must be positive")
	}
	if i.Methods == nil {
		return errors.New("methods must be initialized")
	}
	return nil
}
