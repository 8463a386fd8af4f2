package controllers

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every exported handler method must carry a swag block so `swag init`
// documents the whole API.
func TestHandlersCarryRouteAnnotations(t *testing.T) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	require.NoError(t, err)
	require.Contains(t, pkgs, "controllers")

	handlers := 0
	for name, file := range pkgs["controllers"].Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || !fn.Name.IsExported() || !isHandler(fn) {
				continue
			}
			handlers++
			doc := ""
			if fn.Doc != nil {
				doc = fn.Doc.Text()
			}
			assert.Contains(t, doc, "@Router", "%s: %s has no @Router annotation", name, fn.Name.Name)
			assert.Contains(t, doc, "@Summary", "%s: %s has no @Summary annotation", name, fn.Name.Name)
		}
	}
	assert.NotZero(t, handlers)
}

// isHandler reports whether fn has the fiber handler shape func(*fiber.Ctx) error.
func isHandler(fn *ast.FuncDecl) bool {
	params := fn.Type.Params.List
	if len(params) != 1 || fn.Type.Results == nil || len(fn.Type.Results.List) != 1 {
		return false
	}
	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "Ctx"
}
