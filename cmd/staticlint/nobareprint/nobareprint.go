package nobareprint

import (
	"go/ast"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is a static analysis tool that reports calls to fmt.Print,
// fmt.Printf, and fmt.Println. All user-facing output must go through a
// view's injected writer and diagnostics through the logger, so nothing in
// the client writes to stdout implicitly.
var Analyzer = &analysis.Analyzer{
	Name: "nobareprint",
	Doc:  "prohibits bare fmt.Print/Printf/Println calls that write to stdout implicitly",
	Run:  run,
}

var barePrinters = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		// Exclude go-build cache files
		filename := pass.Fset.File(file.Pos()).Name()
		if isGoBuildCacheFile(filename) || strings.HasSuffix(filename, "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || !barePrinters[sel.Sel.Name] {
				return true
			}

			ident, ok := sel.X.(*ast.Ident)
			if ok && ident.Name == "fmt" {
				pass.Reportf(call.Pos(), "avoid bare fmt.%s, write to an explicit writer or the logger", sel.Sel.Name)
			}

			return true
		})
	}
	return nil, nil
}

func isGoBuildCacheFile(path string) bool {
	path = filepath.ToSlash(path)
	return strings.Contains(path, "/go-build/") || strings.Contains(path, `\go-build\`)
}
