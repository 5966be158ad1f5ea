package parser

import (
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/charclass"
)

// parseDoubleQuoted = '"' (any-non-backslash-quote | '\' any-char)* '"'.
func (p *Parser) parseDoubleQuoted() (ast.Node, error) {
	start := p.pos
	if c, ok := p.peek(); !ok || c != '"' {
		return nil, fail(start, "expected '\"'")
	}
	p.pos++
	for {
		c, ok := p.peek()
		if !ok {
			return nil, cut(p.pos, "unterminated double-quoted scalar")
		}
		if c == '"' {
			p.pos++
			return ast.NewToken(ast.DoubleQuotedScalar, p.src[start:p.pos]), nil
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return nil, cut(p.pos, "unterminated escape in double-quoted scalar")
			}
			p.pos++
			continue
		}
		p.pos++
	}
}

// parseSingleQuoted = "'" (any-non-quote | "''")* "'".
func (p *Parser) parseSingleQuoted() (ast.Node, error) {
	start := p.pos
	if c, ok := p.peek(); !ok || c != '\'' {
		return nil, fail(start, "expected \"'\"")
	}
	p.pos++
	for {
		c, ok := p.peek()
		if !ok {
			return nil, cut(p.pos, "unterminated single-quoted scalar")
		}
		if c == '\'' {
			p.pos++
			if c2, ok := p.peek(); ok && c2 == '\'' {
				p.pos++
				continue
			}
			return ast.NewToken(ast.SingleQuotedScalar, p.src[start:p.pos]), nil
		}
		p.pos++
	}
}

// parsePlainScalar implements spec.md §4.3's "Plain scalars" production.
// The first character must not be an indicator, except that '-', ':', '?'
// are allowed when not immediately followed by whitespace or (in flow
// contexts) a flow indicator. Scanning then proceeds character-by-character
// until the first ambiguity: a colon followed by whitespace (or, in flow
// context, a flow indicator) ends the scalar; a '#' preceded by whitespace
// starts a comment; flow indicators end the scalar in flow contexts.
//
// In BlockOut context the scalar may continue onto further lines: a
// continuation line is accepted only when its indent is strictly greater
// than the scalar's starting indent (or equal, if the whitespace that led
// into it began with a newline), relaxed at document top. A line starting
// "---" or "..." always ends the scalar.
func (p *Parser) parsePlainScalar() (ast.Node, error) {
	start := p.pos
	if !p.plainScalarFirstOK() {
		return nil, fail(start, "not a plain scalar")
	}
	startIndent := p.state.Indent
	multiline := p.state.Ctx == BlockIn || p.state.Ctx == BlockOut
	var lineEnds []int // byte offsets (relative to start) where a logical line break in the scalar occurs

	p.consumePlainLineBody()
	for multiline {
		cp := p.mark()
		trivia := p.statefulTriviaRun()
		if len(trivia) == 0 {
			p.restore(cp)
			break
		}
		if !p.plainScalarContinuationIndentOK(startIndent) {
			p.restore(cp)
			break
		}
		if p.atDocumentMarker() {
			p.restore(cp)
			break
		}
		if !p.plainScalarFirstOK() {
			p.restore(cp)
			break
		}
		lineEnds = append(lineEnds, cp.pos-start)
		p.consumePlainLineBody()
	}
	text := strings.TrimRight(p.src[start:p.pos], " \t")
	p.pos = start + len(text)
	_ = lineEnds
	return ast.NewToken(ast.PlainScalar, text), nil
}

func (p *Parser) atDocumentMarker() bool {
	return p.state.Indent == 0 && (strings.HasPrefix(p.rest(), "---") || strings.HasPrefix(p.rest(), "..."))
}

func (p *Parser) plainScalarContinuationIndentOK(startIndent int) bool {
	if p.state.DocumentTop {
		return true
	}
	if p.state.LastWSHasNL {
		return p.state.Indent >= startIndent
	}
	return p.state.Indent > startIndent
}

func (p *Parser) plainScalarFirstOK() bool {
	c, ok := p.peek()
	if !ok {
		return false
	}
	if c == '-' || c == ':' || c == '?' {
		next, hasNext := p.peekAt(1)
		if !hasNext {
			return true
		}
		if charclass.IsWhitespace(next) {
			return false
		}
		if p.state.Ctx.InFlow() && charclass.IsFlowIndicator(next) {
			return false
		}
		return true
	}
	if charclass.IsIndicator(c) {
		return false
	}
	return true
}

// consumePlainLineBody consumes characters of one physical line of a plain
// scalar, stopping at the first character that would end it.
func (p *Parser) consumePlainLineBody() {
	for {
		c, ok := p.peek()
		if !ok || c == '\n' || c == '\r' {
			return
		}
		if c == ':' {
			next, hasNext := p.peekAt(1)
			if !hasNext || charclass.IsWhitespace(next) {
				return
			}
			if p.state.Ctx.InFlow() && charclass.IsFlowIndicator(next) {
				return
			}
		}
		if c == '#' {
			if p.pos == 0 || charclass.IsWhitespace(p.src[p.pos-1]) {
				return
			}
		}
		if p.state.Ctx.InFlow() && charclass.IsFlowIndicator(c) {
			return
		}
		p.pos++
	}
}
