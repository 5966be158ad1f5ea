package printer

import (
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/doc"
)

func (c *ctx) printFlowSeq(n ast.Node) doc.Doc {
	s, ok := ast.AsFlowSeq(n)
	if !ok {
		return doc.Nil
	}
	open, _ := s.Open()
	closeTok, _ := s.Close()
	entriesWrap, _ := s.Entries()
	entryNodes := ast.AllChildren(entriesWrap, ast.FlowSeqEntry)
	entryDocs := make([]doc.Doc, 0, len(entryNodes))
	for _, e := range entryNodes {
		entryDocs = append(entryDocs, c.printFlowEntryContent(e))
	}
	openNL := hasNewlineBetween(n, open, entriesWrap)
	forceFlat := c.opts.flowSeqPreferSingleLine() && !openNL
	return c.printFlowCollection(open, closeTok, entryDocs, c.opts.BracketSpacing, forceFlat, openNL)
}

func (c *ctx) printFlowMap(n ast.Node) doc.Doc {
	m, ok := ast.AsFlowMap(n)
	if !ok {
		return doc.Nil
	}
	open, _ := m.Open()
	closeTok, _ := m.Close()
	entriesWrap, _ := m.Entries()
	entryNodes := ast.AllChildren(entriesWrap, ast.FlowMapEntry)
	entryDocs := make([]doc.Doc, 0, len(entryNodes))
	for _, e := range entryNodes {
		entryDocs = append(entryDocs, c.printFlowMapEntry(e))
	}
	openNL := hasNewlineBetween(n, open, entriesWrap)
	forceFlat := c.opts.flowMapPreferSingleLine() && !openNL
	return c.printFlowCollection(open, closeTok, entryDocs, c.opts.BraceSpacing, forceFlat, openNL)
}

// printFlowCollection lays out a bracketed/braced entry list per spec.md
// §4.5's "Flow collections" rules: LineOrSpace/LineOrNil padding governed by
// the spacing option, "," + LineOrSpace between entries, an optional
// trailing comma in broken mode, and an unconditional HardLine in place of
// the opening pad when the source already had a line break there (preserved
// user intent overrides both the fit computation and prefer-single-line).
func (c *ctx) printFlowCollection(openTok, closeTok ast.Node, entryDocs []doc.Doc, spacing, forceFlat, openHadNewline bool) doc.Doc {
	open := doc.Text(openTok.Text())
	closeDoc := doc.Text(closeTok.Text())
	if len(entryDocs) == 0 {
		return doc.Concat(open, closeDoc)
	}
	if forceFlat {
		pad := doc.Nil
		if spacing {
			pad = doc.Space
		}
		joined := doc.Join(doc.Concat(doc.Text(","), doc.Space), entryDocs)
		return doc.Concat(open, pad, joined, pad, closeDoc)
	}
	edgeSep := doc.LineOrSpace
	if !spacing {
		edgeSep = doc.LineOrNil
	}
	openSep := edgeSep
	if openHadNewline {
		openSep = doc.HardLine
	}
	joined := doc.Join(doc.Concat(doc.Text(","), doc.LineOrSpace), entryDocs)
	trailing := doc.Nil
	if c.opts.TrailingComma {
		trailing = doc.FlatOrBreak(doc.Nil, doc.Text(","))
	}
	inner := doc.Nest(c.opts.IndentWidth, doc.Concat(openSep, joined, trailing))
	return doc.Group(doc.Concat(open, inner, edgeSep, closeDoc))
}

func (c *ctx) printFlowEntryContent(n ast.Node) doc.Doc {
	for _, ch := range ast.NonTrivia(n) {
		return c.printNode(ch)
	}
	return doc.Nil
}

func (c *ctx) printFlowMapEntry(n ast.Node) doc.Doc {
	e, ok := ast.AsFlowMapEntry(n)
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
	omit := !e.Explicit() || c.canOmitQuestionMark(n, keyWrap)
	if !omit {
		head := doc.Concat(doc.Text("?"), doc.Space, keyDoc)
		if !hasVal {
			return head
		}
		valDoc := c.printFlowMapValue(valWrap)
		return doc.Concat(head, doc.Text(":"), doc.Space, valDoc)
	}
	if !hasVal {
		return keyDoc
	}
	valDoc := c.printFlowMapValue(valWrap)
	return doc.Concat(keyDoc, doc.Text(":"), doc.Space, valDoc)
}

func (c *ctx) printFlowMapValue(valWrap ast.Node) doc.Doc {
	for _, ch := range ast.NonTrivia(valWrap) {
		return c.printNode(ch)
	}
	return doc.Nil
}

// hasNewlineBetween reports whether the trivia between a and b (direct
// siblings under parent) contains a line break.
func hasNewlineBetween(parent ast.Node, a, b ast.Node) bool {
	children := ast.Children(parent)
	ai, bi := ast.IndexOf(parent, a), ast.IndexOf(parent, b)
	if ai < 0 || bi < 0 || ai > bi {
		return false
	}
	for i := ai + 1; i < bi; i++ {
		if children[i].Kind() == ast.Whitespace && strings.ContainsAny(children[i].Text(), "\n\r") {
			return true
		}
	}
	return false
}
