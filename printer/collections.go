package printer

import (
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/doc"
)

// dashWidth returns the number of columns a sequence dash occupies before
// its item, per the DashSpacing option.
func (c *ctx) dashWidth() int {
	if c.opts.DashSpacing == Indent {
		return c.opts.IndentWidth
	}
	return 2
}

// printBlockSeq renders a block sequence. asMapValue is true when this
// sequence is itself the value of a block-map entry, which conditionally
// applies extra nesting per IndentBlockSequenceInMap.
func (c *ctx) printBlockSeq(s ast.BlockSeq, asMapValue bool) doc.Doc {
	entries := s.Entries()
	parts := make([]doc.Doc, 0, len(entries)*2)
	for i, e := range entries {
		if i > 0 {
			parts = append(parts, doc.HardLine)
		}
		parts = append(parts, c.printBlockSeqEntry(e))
	}
	body := doc.Concat(parts...)
	if asMapValue && c.opts.IndentBlockSequenceInMap {
		return doc.Nest(c.opts.IndentWidth, doc.Concat(doc.HardLine, body))
	}
	return body
}

func (c *ctx) printBlockSeqEntry(n ast.Node) doc.Doc {
	if c.isIgnored(n) {
		return doc.Text(trimLineRight(strings.TrimRight(n.Text(), "\n"), c.opts.TrimTrailingWhitespaces))
	}
	e, ok := ast.AsBlockSeqEntry(n)
	if !ok {
		return doc.Nil
	}
	val, ok := e.Value()
	if !ok {
		return doc.Text("-")
	}
	dashWidth := c.dashWidth()
	prefix := "-" + strings.Repeat(" ", dashWidth-1)
	return doc.Concat(doc.Text(prefix), doc.Nest(dashWidth, c.printNode(val)))
}

// printBlockMap renders a block map.
func (c *ctx) printBlockMap(m ast.BlockMap) doc.Doc {
	entries := m.Entries()
	parts := make([]doc.Doc, 0, len(entries)*2)
	for i, e := range entries {
		if i > 0 {
			parts = append(parts, doc.HardLine)
		}
		parts = append(parts, c.printBlockMapEntry(e))
	}
	return doc.Concat(parts...)
}

func (c *ctx) printBlockMapEntry(n ast.Node) doc.Doc {
	if c.isIgnored(n) {
		return doc.Text(trimLineRight(strings.TrimRight(n.Text(), "\n"), c.opts.TrimTrailingWhitespaces))
	}
	e, ok := ast.AsBlockMapEntry(n)
	if !ok {
		return doc.Nil
	}
	keyWrap, hasKey := e.Key()
	var keyDoc doc.Doc
	if hasKey {
		if k, ok := blockMapKeyContent(keyWrap); ok {
			keyDoc = c.printNode(k)
		}
	}
	valWrap, hasVal := e.Value()
	canOmitQuestion := !e.Explicit() || c.canOmitQuestionMark(n, keyWrap)
	if !canOmitQuestion {
		head := doc.Concat(doc.Text("?"), doc.Space, keyDoc)
		if !hasVal {
			return head
		}
		valDoc := c.printBlockMapValue(valWrap, false)
		return doc.Concat(head, doc.HardLine, doc.Text(":"), doc.Space, valDoc)
	}
	if !hasVal {
		return doc.Concat(keyDoc, doc.Text(":"))
	}
	valContent, hasValContent := blockMapValueContent(valWrap)
	if !hasValContent {
		return doc.Concat(keyDoc, doc.Text(":"))
	}
	isSeqValue := false
	if b, ok := ast.AsBlock(valContent); ok {
		if content, ok := b.Content(); ok {
			_, hasProps := b.Properties()
			isSeqValue = content.Kind() == ast.BlockSeq && !hasProps
		}
	}
	sep := doc.Space
	if nodeSpansLines(valContent) || hasNewlineSeparatorBefore(n, valWrap) {
		sep = doc.HardLine
	}
	if isSeqValue {
		seqTree, _ := ast.AsBlock(valContent)
		content, _ := seqTree.Content()
		seq, _ := ast.AsBlockSeq(content)
		valDoc := c.printBlockSeq(seq, true)
		if c.opts.IndentBlockSequenceInMap {
			return doc.Concat(keyDoc, doc.Text(":"), valDoc)
		}
		return doc.Concat(keyDoc, doc.Text(":"), doc.HardLine, valDoc)
	}
	valDoc := c.printBlockMapValue(valWrap, true)
	if sep.Kind() == doc.KindHardLine {
		return doc.Concat(keyDoc, doc.Text(":"), doc.Nest(c.opts.IndentWidth, doc.Concat(doc.HardLine, valDoc)))
	}
	return doc.Concat(keyDoc, doc.Text(":"), doc.Space, valDoc)
}

func (c *ctx) printBlockMapValue(valWrap ast.Node, _ bool) doc.Doc {
	content, ok := blockMapValueContent(valWrap)
	if !ok {
		return doc.Nil
	}
	return c.printNode(content)
}

func blockMapKeyContent(keyWrap ast.Node) (ast.Node, bool) {
	children := ast.NonTrivia(keyWrap)
	if len(children) == 0 {
		return nil, false
	}
	return children[0], true
}

func blockMapValueContent(valWrap ast.Node) (ast.Node, bool) {
	children := ast.NonTrivia(valWrap)
	if len(children) == 0 {
		return nil, false
	}
	return children[0], true
}

// nodeSpansLines reports whether n's source text contains a line break,
// meaning the printer should force a hard line before it rather than try to
// flatten it onto the key's line.
func nodeSpansLines(n ast.Node) bool {
	return strings.ContainsAny(n.Text(), "\n\r")
}

func hasNewlineSeparatorBefore(parent ast.Node, child ast.Node) bool {
	idx := ast.IndexOf(parent, child)
	if idx < 0 {
		return false
	}
	return ast.HasNewlineBefore(parent, idx)
}

// canOmitQuestionMark implements spec.md §4.5's question-mark omission rule:
// a "?" is dropped iff the key's parent is a flow-map-entry OR its sibling is
// a flow-map-value or block-map-value, AND the key contains no comments, AND
// no comment appears between key and colon, AND no flow scalar in the key
// contains a line break, AND no alias appears in the key.
func (c *ctx) canOmitQuestionMark(entry ast.Node, keyWrap ast.Node) bool {
	if entry.Kind() == ast.BlockMapEntry {
		if _, ok := ast.FirstChild(entry, ast.BlockMapValue); !ok {
			return false
		}
	}
	if len(ast.Comments(keyWrap)) > 0 {
		return false
	}
	if containsAlias(keyWrap) {
		return false
	}
	if containsMultilineFlowScalar(keyWrap) {
		return false
	}
	children := ast.Children(entry)
	idx := ast.IndexOf(entry, keyWrap)
	for i := idx + 1; i < len(children); i++ {
		if children[i].Kind() == ast.Comment {
			return false
		}
		if children[i].Kind() == ast.Colon {
			break
		}
	}
	return true
}

func containsAlias(n ast.Node) bool {
	if n.Kind() == ast.Alias {
		return true
	}
	for _, c := range ast.Children(n) {
		if containsAlias(c) {
			return true
		}
	}
	return false
}

func containsMultilineFlowScalar(n ast.Node) bool {
	switch n.Kind() {
	case ast.PlainScalar, ast.DoubleQuotedScalar, ast.SingleQuotedScalar:
		return strings.ContainsAny(n.Text(), "\n\r")
	}
	for _, c := range ast.Children(n) {
		if containsMultilineFlowScalar(c) {
			return true
		}
	}
	return false
}
