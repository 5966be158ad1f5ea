package parser

import "github.com/prettyyaml/yamlfmt/ast"

// Parse parses src (already BOM-stripped by the caller) as a stream of YAML
// documents and returns the lossless Root node (spec.md §6.1's `parse`).
func Parse(src string) (ast.Node, error) {
	p := New(src)
	root, err := p.ParseDocument()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, fail(p.pos, "unexpected trailing input")
	}
	return root, nil
}
