package extractor

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"

	"github.com/dshills/goextract/pkg/types"
)

// Extractor handles AST-based extraction of declarations from Go source files
type Extractor struct {
	fset *token.FileSet
}

// New creates a new Extractor instance
func New() *Extractor {
	return &Extractor{
		fset: token.NewFileSet(),
	}
}

// ExtractFile reads and extracts a single Go source file.
func (e *Extractor) ExtractFile(filePath string) (*types.Result, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, types.NewReadError(filePath, err)
	}
	return e.ExtractSource(filePath, content)
}

// ExtractSource extracts declarations from already-loaded source bytes.
// The file path is used for record attribution and error messages.
func (e *Extractor) ExtractSource(filePath string, src []byte) (*types.Result, error) {
	file, err := parser.ParseFile(e.fset, filePath, src, parser.ParseComments)
	if err != nil {
		// A partial AST may exist, but the contract is all-or-nothing per
		// file: report the first syntax error and skip the file.
		if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
			first := list[0]
			return nil, types.NewParseError(filePath, first.Pos.Line, first.Pos.Column, first.Msg, err)
		}
		return nil, types.NewParseError(filePath, 0, 0, err.Error(), err)
	}

	visitor := &declVisitor{
		fset:   e.fset,
		path:   filePath,
		src:    src,
		result: types.NewResult(),
	}
	ast.Inspect(file, visitor.visit)

	return visitor.result, nil
}

// declVisitor walks the syntax tree once, dispatching each declaration node
// to the matching extractor.
type declVisitor struct {
	fset   *token.FileSet
	path   string
	src    []byte
	result *types.Result
}

// visit is called for each AST node during traversal
func (v *declVisitor) visit(node ast.Node) bool {
	if node == nil {
		return false
	}

	switch n := node.(type) {
	case *ast.FuncDecl:
		v.result.Functions = append(v.result.Functions, v.extractFunction(n))
	case *ast.GenDecl:
		if n.Tok != token.TYPE {
			return true
		}
		for _, spec := range n.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			switch t := ts.Type.(type) {
			case *ast.StructType:
				v.result.Structs = append(v.result.Structs, v.extractStruct(ts, t))
			case *ast.InterfaceType:
				v.result.Interfaces = append(v.result.Interfaces, v.extractInterface(ts, t))
			}
		}
	}

	return true
}

// extractFunction builds a record from a function or method declaration
func (v *declVisitor) extractFunction(fn *ast.FuncDecl) types.FunctionRecord {
	start := v.fset.Position(fn.Pos())
	end := v.fset.Position(fn.End())

	// Verbatim body text from the original source bytes, braces included.
	// Re-serializing the AST would lose comments and formatting.
	body := ""
	if fn.Body != nil {
		bodyStart := v.fset.Position(fn.Body.Pos()).Offset
		bodyEnd := v.fset.Position(fn.Body.End()).Offset
		if bodyStart >= 0 && bodyEnd <= len(v.src) && bodyStart <= bodyEnd {
			body = string(v.src[bodyStart:bodyEnd])
		}
	}

	receiver := ""
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		receiver = ReceiverName(fn.Recv.List[0].Type)
	}

	name := fn.Name.Name
	return types.FunctionRecord{
		Name:     name,
		File:     v.path,
		Line:     start.Line,
		EndLine:  end.Line,
		LOC:      end.Line - start.Line + 1,
		Body:     body,
		Params:   paramNames(fn.Type.Params),
		Receiver: receiver,
		Exported: types.IsExported(name),
	}
}

// paramNames collects parameter names in declaration order. A group like
// (a, b int) contributes one entry per name; unnamed parameters are skipped.
func paramNames(fields *ast.FieldList) []string {
	params := []string{}
	if fields == nil {
		return params
	}
	for _, field := range fields.List {
		for _, name := range field.Names {
			params = append(params, name.Name)
		}
	}
	return params
}

// extractStruct builds a record from a struct type declaration. A member with
// explicit names contributes fields; a bare type member is an embedded entry.
// Methods stays empty here and is filled by the batch aggregator.
func (v *declVisitor) extractStruct(ts *ast.TypeSpec, st *ast.StructType) types.StructRecord {
	start := v.fset.Position(ts.Pos())
	end := v.fset.Position(st.End())

	fields := []string{}
	embedded := []string{}
	if st.Fields != nil {
		for _, field := range st.Fields.List {
			if len(field.Names) == 0 {
				embedded = append(embedded, TypeLabel(field.Type))
				continue
			}
			for _, name := range field.Names {
				fields = append(fields, name.Name)
			}
		}
	}

	name := ts.Name.Name
	return types.StructRecord{
		Name:     name,
		File:     v.path,
		Line:     start.Line,
		LOC:      end.Line - start.Line + 1,
		Methods:  []string{},
		Fields:   fields,
		Embedded: embedded,
		Exported: types.IsExported(name),
	}
}

// extractInterface builds a record from an interface type declaration.
// Embedded interface entries carry no name and are skipped, not expanded.
func (v *declVisitor) extractInterface(ts *ast.TypeSpec, it *ast.InterfaceType) types.InterfaceRecord {
	start := v.fset.Position(ts.Pos())

	methods := []string{}
	if it.Methods != nil {
		for _, method := range it.Methods.List {
			for _, name := range method.Names {
				methods = append(methods, name.Name)
			}
		}
	}

	return types.InterfaceRecord{
		Name:    ts.Name.Name,
		File:    v.path,
		Line:    start.Line,
		Methods: methods,
	}
}
