package printer

import (
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/doc"
)

// ctx carries the options needed by the recursive visitor. The tree has no
// visitor-dispatch hook of its own (unlike a typed AST with one Go type per
// node shape), so this is a plain recursive-descent printer keyed on
// ast.Kind.
type ctx struct {
	opts Options
}

// Print walks root (an ast.Root) and returns the layout document describing
// its formatted rendering. The caller (package yamlfmt's Format) hands this
// to doc.Render.
func Print(root ast.Node, opts Options) doc.Doc {
	c := &ctx{opts: opts}
	r, ok := ast.AsRoot(root)
	if !ok {
		return doc.Nil
	}
	docs := r.Documents()
	parts := make([]doc.Doc, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, c.printDocument(d))
	}
	if len(parts) == 0 {
		return doc.Nil
	}
	return doc.Concat(doc.Join(doc.HardLine, parts), doc.HardLine)
}

func (c *ctx) printDocument(n ast.Node) doc.Doc {
	if c.isIgnored(n) {
		return doc.Text(strings.TrimRight(n.Text(), "\n"))
	}
	d, ok := ast.AsDocument(n)
	if !ok {
		return doc.Nil
	}
	var parts []doc.Doc
	for _, dir := range d.Directives() {
		parts = append(parts, c.printDirective(dir), doc.HardLine)
	}
	if _, ok := d.DirectivesEnd(); ok {
		parts = append(parts, doc.Text("---"), doc.HardLine)
	}
	if body, ok := d.Body(); ok {
		parts = append(parts, c.printBlock(body))
	} else if len(parts) > 0 {
		parts = parts[:len(parts)-1]
	}
	if _, ok := d.DocumentEnd(); ok {
		if len(parts) > 0 {
			parts = append(parts, doc.HardLine)
		}
		parts = append(parts, doc.Text("..."))
	}
	return doc.Concat(parts...)
}

func (c *ctx) printDirective(n ast.Node) doc.Doc {
	return doc.Text(strings.TrimRight(n.Text(), " \t"))
}

// printBlock renders an ast.Block: optional properties, then its content.
func (c *ctx) printBlock(n ast.Node) doc.Doc {
	b, ok := ast.AsBlock(n)
	if !ok {
		return doc.Nil
	}
	props, hasProps := b.Properties()
	content, hasContent := b.Content()
	if !hasProps {
		if !hasContent {
			return doc.Nil
		}
		return c.printNode(content)
	}
	propsDoc := c.printProperties(props)
	if !hasContent {
		return propsDoc
	}
	sep := doc.Space
	if separatorHasNewline(b.Tree, props) {
		sep = doc.HardLine
	}
	return doc.Concat(propsDoc, sep, c.printNode(content))
}

// separatorHasNewline reports whether the trivia between props and the next
// structural sibling in parent's children contains a newline, used to decide
// whether properties and their value stay on one line or break (spec.md
// §4.5 "Property / collection layout").
func separatorHasNewline(parent *ast.Tree, props ast.Node) bool {
	children := ast.Children(parent)
	idx := ast.IndexOf(parent, props)
	if idx < 0 {
		return false
	}
	for i := idx + 1; i < len(children); i++ {
		c := children[i]
		if c.Kind() == ast.Whitespace {
			return strings.ContainsAny(c.Text(), "\n\r")
		}
		if c.Kind() != ast.Comment {
			return false
		}
	}
	return false
}

// printNode dispatches on the structural kind of a block/flow content node.
func (c *ctx) printNode(n ast.Node) doc.Doc {
	switch n.Kind() {
	case ast.BlockSeq:
		s, _ := ast.AsBlockSeq(n)
		return c.printBlockSeq(s, false)
	case ast.BlockMap:
		m, _ := ast.AsBlockMap(n)
		return c.printBlockMap(m)
	case ast.BlockScalar:
		s, _ := ast.AsBlockScalar(n)
		return c.printBlockScalar(s)
	case ast.Flow:
		return c.printFlow(n)
	case ast.FlowSeq:
		return c.printFlowSeq(n)
	case ast.FlowMap:
		return c.printFlowMap(n)
	case ast.Alias:
		a, _ := ast.AsAlias(n)
		return c.printAlias(a)
	case ast.DoubleQuotedScalar, ast.SingleQuotedScalar:
		return c.printQuotedScalar(n.(*ast.Token))
	case ast.PlainScalar:
		return c.printPlainScalar(n.(*ast.Token))
	case ast.Block:
		return c.printBlock(n)
	default:
		return doc.Text(n.Text())
	}
}

func (c *ctx) printProperties(n ast.Node) doc.Doc {
	p, ok := ast.AsProperties(n)
	if !ok {
		return doc.Nil
	}
	var parts []doc.Doc
	if anchor, ok := p.Anchor(); ok {
		parts = append(parts, doc.Text(anchor.Text()))
	}
	if tag, ok := p.Tag(); ok {
		if len(parts) > 0 {
			parts = append(parts, doc.Space)
		}
		parts = append(parts, doc.Text(tag.Text()))
	}
	return doc.Concat(parts...)
}

func (c *ctx) printAlias(a ast.Alias) doc.Doc {
	return doc.Text("*" + firstChildText(a, ast.AnchorName))
}

func (c *ctx) printFlow(n ast.Node) doc.Doc {
	for _, ch := range ast.NonTrivia(n) {
		return c.printNode(ch)
	}
	return doc.Nil
}

func firstChildText(n ast.Node, kind ast.Kind) string {
	if c, ok := ast.FirstChild(n, kind); ok {
		return c.Text()
	}
	return ""
}

// isIgnored implements the "ignore" directive (spec.md §4.5): n is skipped
// (emitted verbatim) iff a comment attached directly to n - before its first
// structural child - has text that, after stripping '#' and leading
// whitespace, starts with the configured ignore directive followed by
// end-of-input or ASCII whitespace. printBlockMapEntry/printBlockSeqEntry
// apply the same check to individual entries. Only comments among n's own
// children are examined; a comment on the line above an entry or document is
// a child of the enclosing collection or root, so it does not mark n ignored.
func (c *ctx) isIgnored(n ast.Node) bool {
	for _, child := range ast.Children(n) {
		if !child.Kind().IsTrivia() {
			return false
		}
		if child.Kind() == ast.Comment && c.matchesIgnoreDirective(child.Text()) {
			return true
		}
	}
	return false
}

func (c *ctx) matchesIgnoreDirective(text string) bool {
	t := strings.TrimPrefix(text, "#")
	t = strings.TrimLeft(t, " \t")
	directive := c.opts.IgnoreCommentDirective
	if !strings.HasPrefix(t, directive) {
		return false
	}
	rest := t[len(directive):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

func trimLineRight(s string, enabled bool) string {
	if !enabled {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, "\r")
		l = strings.TrimRight(l, " \t")
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}
