package extractor

import (
	"fmt"
	"go/ast"
	"strings"
)

// ReceiverName reduces a receiver type expression to the plain type name a
// method binds to. Pointer markers and generic type parameters are dropped so
// `func (c *Cache[K, V]) Get(...)` resolves to "Cache". Shapes that cannot
// name a local type resolve to the empty string rather than failing.
func ReceiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return ReceiverName(t.X)
	case *ast.IndexExpr:
		return ReceiverName(t.X)
	case *ast.IndexListExpr:
		return ReceiverName(t.X)
	default:
		return ""
	}
}

// TypeLabel formats a type expression as a display string, used for embedded
// struct members. Unlike receiver resolution it keeps pointer markers and
// generic parameters. Unrecognized shapes format as a best-effort descriptor;
// this never fails.
func TypeLabel(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + TypeLabel(t.X)
	case *ast.SelectorExpr:
		return TypeLabel(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + TypeLabel(t.Elt)
	case *ast.MapType:
		return "map[" + TypeLabel(t.Key) + "]" + TypeLabel(t.Value)
	case *ast.ChanType:
		return "chan " + TypeLabel(t.Value)
	case *ast.FuncType:
		return "func(...)"
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.IndexExpr:
		return TypeLabel(t.X) + "[" + TypeLabel(t.Index) + "]"
	case *ast.IndexListExpr:
		parts := make([]string, 0, len(t.Indices))
		for _, idx := range t.Indices {
			parts = append(parts, TypeLabel(idx))
		}
		return TypeLabel(t.X) + "[" + strings.Join(parts, ", ") + "]"
	case *ast.Ellipsis:
		return "..." + TypeLabel(t.Elt)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
