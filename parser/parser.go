// Package parser implements the YAML 1.2 concrete-syntax grammar described
// in spec.md §4.3, producing the lossless tree defined in package ast. It is
// a hand-written recursive-descent parser: each production is a method that
// either succeeds (consuming input, returning an ast.Node) or fails, leaving
// the input position and State exactly as a caller's checkpoint/restore
// expects. There is no separate tokenize-then-parse pass - tokens are cut
// directly from the source as each production recognizes them, which is what
// keeps every byte, including whitespace and comments, attached to the tree.
package parser

import (
	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/charclass"
)

// Parser holds the immutable source text, the current byte offset into it,
// and the threaded State record (spec.md §3.3).
type Parser struct {
	src   string
	pos   int
	state State
}

// New returns a parser positioned at the start of src.
func New(src string) *Parser {
	return &Parser{src: src, state: NewState()}
}

// checkpoint captures enough to restore the parser to its current position
// on a failed, backtracking attempt.
type checkpoint struct {
	pos   int
	state State
}

func (p *Parser) mark() checkpoint {
	return checkpoint{pos: p.pos, state: p.state}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.state = c.state
}

func (p *Parser) eof() bool { return p.pos >= len(p.src) }

func (p *Parser) peek() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *Parser) peekAt(offset int) (byte, bool) {
	if p.pos+offset >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos+offset], true
}

func (p *Parser) rest() string { return p.src[p.pos:] }

// ParseDocument is the top-level entry point: Root = (trivia | document)*
// until end of input (spec.md §4.3 "Documents and root").
func (p *Parser) ParseDocument() (ast.Node, error) {
	var children []ast.Node
	for !p.eof() {
		if tk, ok := p.tryStatefulTrivia(); ok {
			children = append(children, tk)
			continue
		}
		doc, err := p.parseOneDocument()
		if err != nil {
			if isHard(err) {
				return nil, err
			}
			return nil, err
		}
		children = append(children, doc)
	}
	return ast.NewTree(ast.Root, children...), nil
}

// --- trivia -----------------------------------------------------------

// tryStatefulTrivia consumes one contiguous run of whitespace or one comment
// token, updating Indent/LastWSHasNL when the whitespace contains a newline.
// Used at block boundaries, where trivia is meaningful to indentation.
func (p *Parser) tryStatefulTrivia() (ast.Node, bool) {
	start := p.pos
	if c, ok := p.peek(); ok && c == '#' {
		return p.consumeComment(), true
	}
	n := 0
	for {
		c, ok := p.peekAt(n)
		if !ok || !charclass.IsWhitespace(c) {
			break
		}
		n++
	}
	if n == 0 {
		return nil, false
	}
	text := p.src[start : start+n]
	p.pos += n
	hasNL := false
	col := p.state.Indent
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			hasNL = true
			col = 0
		case '\r':
			// counted as part of the newline; column reset happens on '\n'.
		default:
			col++
		}
	}
	if hasNL {
		p.state.Indent = col
		p.state.LastWSHasNL = true
	} else {
		p.state.LastWSHasNL = false
	}
	return ast.NewToken(ast.Whitespace, text), true
}

// tryStatelessTrivia consumes whitespace/comments without touching Indent or
// LastWSHasNL - used inside flow contexts, where line breaks do not carry
// block-indentation meaning.
func (p *Parser) tryStatelessTrivia() (ast.Node, bool) {
	start := p.pos
	if c, ok := p.peek(); ok && c == '#' {
		return p.consumeComment(), true
	}
	n := 0
	for {
		c, ok := p.peekAt(n)
		if !ok || !charclass.IsWhitespace(c) {
			break
		}
		n++
	}
	if n == 0 {
		return nil, false
	}
	text := p.src[start : start+n]
	p.pos += n
	return ast.NewToken(ast.Whitespace, text), true
}

func (p *Parser) consumeComment() ast.Node {
	start := p.pos
	for !p.eof() {
		c, _ := p.peek()
		if c == '\n' || c == '\r' {
			break
		}
		p.pos++
	}
	return ast.NewToken(ast.Comment, p.src[start:p.pos])
}

// triviaRun collects a maximal run of trivia tokens using the given single-
// token trivia function, used wherever the grammar allows "trivia*".
func (p *Parser) triviaRun(one func() (ast.Node, bool)) []ast.Node {
	var out []ast.Node
	for {
		tk, ok := one()
		if !ok {
			break
		}
		out = append(out, tk)
	}
	return out
}

func (p *Parser) statefulTriviaRun() []ast.Node { return p.triviaRun(p.tryStatefulTrivia) }
func (p *Parser) statelessTriviaRun() []ast.Node { return p.triviaRun(p.tryStatelessTrivia) }

// --- single-byte / literal helpers -------------------------------------

func (p *Parser) consumeByte(kind ast.Kind, b byte) (ast.Node, bool) {
	c, ok := p.peek()
	if !ok || c != b {
		return nil, false
	}
	p.pos++
	return ast.NewToken(kind, string(b)), true
}

func (p *Parser) consumeLiteral(kind ast.Kind, lit string) (ast.Node, bool) {
	if len(p.src)-p.pos < len(lit) || p.src[p.pos:p.pos+len(lit)] != lit {
		return nil, false
	}
	p.pos += len(lit)
	return ast.NewToken(kind, lit), true
}

func appendNonNil(nodes []ast.Node, n ast.Node) []ast.Node {
	if n == nil {
		return nodes
	}
	return append(nodes, n)
}
