package ast

import "strings"

// Node is either a Token (leaf, carrying exact source text) or a Tree
// (interior, carrying an ordered list of children). Both satisfy Node so
// callers can walk the tree generically without a type switch at every step.
type Node interface {
	Kind() Kind
	// Text returns the node's exact source text, reconstructed by
	// concatenating every descendant token's text in depth-first order.
	// For a Token this is simply its own text.
	Text() string
}

// Token is a leaf: a kind plus the exact slice of source text it covers.
// Tokens are immutable and hold no reference to siblings or parents (the
// green-tree design): position is implied by depth-first concatenation
// order, never stored.
type Token struct {
	kind Kind
	text string
}

// NewToken constructs a leaf token. It is exported for the parser package
// and for tests that build trees by hand.
func NewToken(kind Kind, text string) *Token { return &Token{kind: kind, text: text} }

func (t *Token) Kind() Kind    { return t.kind }
func (t *Token) Text() string  { return t.text }
func (t *Token) String() string { return t.text }

// Tree is an interior node: a kind plus an ordered list of children (tokens
// and/or nested trees). Children include trivia (whitespace, comments)
// exactly where they occurred in the source, which is what makes
// concatenation lossless.
type Tree struct {
	kind     Kind
	children []Node
}

// NewTree constructs an interior node from already-built children. Callers
// (the parser's grammar productions) must accumulate every child - including
// trivia - before calling this, since no child can be attached afterwards.
func NewTree(kind Kind, children ...Node) *Tree {
	return &Tree{kind: kind, children: children}
}

func (n *Tree) Kind() Kind        { return n.kind }
func (n *Tree) Children() []Node {
	if n == nil {
		return nil
	}
	return n.children
}

func (n *Tree) Text() string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Token:
		b.WriteString(v.text)
	case *Tree:
		for _, c := range v.children {
			writeText(b, c)
		}
	}
}

// Children returns n's children if n is an interior node (a *Tree or one of
// the typed wrappers around one), or nil if n is a token (a leaf has no children).
func Children(n Node) []Node {
	if t, ok := n.(interface{ Children() []Node }); ok {
		return t.Children()
	}
	return nil
}

// FirstChild returns the first direct child of n with the given kind, and
// whether one was found. It never errors on a missing optional child -
// callers treat "not found" as "this grammar-optional piece is absent",
// which keeps accessors robust over partial/error-recovered trees.
func FirstChild(n Node, kind Kind) (Node, bool) {
	for _, c := range Children(n) {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// AllChildren returns every direct child of n with the given kind, in order.
func AllChildren(n Node, kind Kind) []Node {
	var out []Node
	for _, c := range Children(n) {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// NonTrivia returns n's direct children excluding whitespace and comment
// tokens - the "structural" children a caller usually wants to dispatch on.
func NonTrivia(n Node) []Node {
	var out []Node
	for _, c := range Children(n) {
		if !c.Kind().IsTrivia() {
			out = append(out, c)
		}
	}
	return out
}

// Comments returns every comment token directly attached to n, in order.
func Comments(n Node) []*Token {
	var out []*Token
	for _, c := range Children(n) {
		if c.Kind() == Comment {
			out = append(out, c.(*Token))
		}
	}
	return out
}

// HasNewlineBefore reports whether the nearest whitespace token before
// childIdx, looking back past any comments, contains a line break (false if a
// structural child comes first) - used by the printer to decide
// between "space" and "hard line" when a source separator already picked one.
func HasNewlineBefore(n Node, childIdx int) bool {
	children := Children(n)
	if childIdx <= 0 || childIdx > len(children) {
		return false
	}
	for i := childIdx - 1; i >= 0; i-- {
		c := children[i]
		if c.Kind() == Whitespace {
			return strings.ContainsAny(c.Text(), "\n\r")
		}
		if c.Kind() != Comment {
			return false
		}
	}
	return false
}

// IndexOf returns the index of child within n's children, or -1.
func IndexOf(n Node, child Node) int {
	for i, c := range Children(n) {
		if c == child {
			return i
		}
	}
	return -1
}
