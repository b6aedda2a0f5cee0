// Package python extracts Python dependencies.
//
// Source files are parsed into a real syntax tree (tree-sitter) and all
// import/import-from statements are walked; top-level module names become
// package dependencies unless they belong to the standard library. A sibling
// requirements.txt, when present, contributes additional package
// dependencies.
package python

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/airseal/airseal/pkg/deps"
	"github.com/airseal/airseal/pkg/errors"
)

// Extractor implements deps.Extractor for Python source files.
type Extractor struct{}

// NewExtractor creates a Python extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.Python }
func (e *Extractor) Extensions() []string    { return []string{".py"} }

// Extract parses content into a syntax tree and collects imported modules.
// A tree whose root contains syntax errors is treated as a parse failure.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil || tree == nil {
		return nil, errors.Wrap(errors.ErrCodeParseError, err, "parsing %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New(errors.ErrCodeParseError, "syntax error in %s", path)
	}

	set := deps.NewSet()
	walk(root, func(n *sitter.Node) {
		switch n.Type() {
		case "import_statement":
			for _, name := range importedModules(n, content) {
				addModule(set, name)
			}
		case "import_from_statement":
			if name := importFromModule(n, content); name != "" {
				addModule(set, name)
			}
		}
	})

	parseRequirements(set, path, opts)
	return set, nil
}

// addModule records the top-level module name as a package dependency,
// skipping standard-library modules.
func addModule(set *deps.Set, module string) {
	top := module
	if i := strings.Index(top, "."); i >= 0 {
		top = top[:i]
	}
	if top == "" || IsStdlib(top) {
		return
	}
	set.Add(deps.Dependency{
		Kind:     deps.KindPackage,
		Name:     top,
		Language: deps.Python,
	})
}

// importedModules collects module names from "import a, b.c, d as e".
func importedModules(node *sitter.Node, source []byte) []string {
	var names []string
	var collect func(n *sitter.Node)
	collect = func(n *sitter.Node) {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			switch child.Type() {
			case "dotted_name":
				names = append(names, text(child, source))
			case "aliased_import", "dotted_as_names":
				collect(child)
			}
		}
	}
	collect(node)
	return names
}

// importFromModule returns the module of "from X import ...".
// Relative imports ("from . import x") have no dotted_name and yield "".
func importFromModule(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "dotted_name" {
			return text(child, source)
		}
		if child.Type() == "relative_import" {
			return ""
		}
	}
	return ""
}

func text(n *sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}

// walk applies visitor to every node of the tree rooted at node.
func walk(node *sitter.Node, visitor func(*sitter.Node)) {
	visitor(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), visitor)
	}
}
