package parser

import (
	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/charclass"
)

// parseDirective = "%" (yaml_directive | tag_directive | reserved_directive).
func (p *Parser) parseDirective() (ast.Node, error) {
	percent, ok := p.consumeByte(ast.Percent, '%')
	if !ok {
		return nil, fail(p.pos, "expected '%'")
	}
	body, err := p.firstOf(p.parseYAMLDirective, p.parseTagDirective, p.parseReservedDirective)
	if err != nil {
		return nil, err
	}
	return ast.NewTree(ast.Directive, percent, body), nil
}

func (p *Parser) parseDirectiveName() (ast.Node, error) {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || charclass.IsWhitespace(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, fail(start, "expected directive name")
	}
	return ast.NewToken(ast.DirectiveName, p.src[start:p.pos]), nil
}

func (p *Parser) parseYAMLDirective() (ast.Node, error) {
	cp := p.mark()
	name, err := p.parseDirectiveName()
	if err != nil || name.Text() != "YAML" {
		p.restore(cp)
		return nil, fail(p.pos, "not a YAML directive")
	}
	children := []ast.Node{name}
	children = append(children, p.statelessTriviaRun()...)
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || charclass.IsWhitespace(c) {
			break
		}
		if !(c == '.' || (c >= '0' && c <= '9')) {
			return nil, cut(p.pos, "malformed YAML version")
		}
		p.pos++
	}
	if p.pos == start {
		return nil, cut(p.pos, "missing YAML version")
	}
	children = append(children, ast.NewToken(ast.YAMLVersion, p.src[start:p.pos]))
	return ast.NewTree(ast.YAMLDirective, children...), nil
}

func (p *Parser) parseTagDirective() (ast.Node, error) {
	cp := p.mark()
	name, err := p.parseDirectiveName()
	if err != nil || name.Text() != "TAG" {
		p.restore(cp)
		return nil, fail(p.pos, "not a TAG directive")
	}
	children := []ast.Node{name}
	children = append(children, p.statelessTriviaRun()...)
	handle, err := p.parseTagHandle()
	if err != nil {
		return nil, cut(p.pos, "invalid tag handle in %%TAG directive")
	}
	children = append(children, handle)
	children = append(children, p.statelessTriviaRun()...)
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || charclass.IsWhitespace(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, cut(p.pos, "missing tag prefix in %%TAG directive")
	}
	children = append(children, ast.NewToken(ast.TagPrefix, p.src[start:p.pos]))
	return ast.NewTree(ast.TagDirective, children...), nil
}

// parseReservedDirective preserves any other directive verbatim - its
// parameter grammar is not validated, only stored.
func (p *Parser) parseReservedDirective() (ast.Node, error) {
	name, err := p.parseDirectiveName()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{name}
	for {
		cp := p.mark()
		sep := p.statelessTriviaRun()
		start := p.pos
		for {
			c, ok := p.peek()
			if !ok || charclass.IsWhitespace(c) {
				break
			}
			p.pos++
		}
		if p.pos == start {
			p.restore(cp)
			break
		}
		children = append(children, sep...)
		children = append(children, ast.NewToken(ast.DirectiveParam, p.src[start:p.pos]))
	}
	return ast.NewTree(ast.ReservedDirective, children...), nil
}

// parseOneDocument implements the four document shapes from spec.md §4.3,
// tried in order:
//  1. one-or-more directives, "---", optional top-level block, optional "...".
//  2. a bare "...".
//  3. ("---" trivia)? top-level-block (trivia "...")? - "---" may be omitted
//     only if the previous document ended with "...".
//  4. "---" (trivia "...")?.
func (p *Parser) parseOneDocument() (ast.Node, error) {
	return p.firstOf(
		p.parseDocumentWithDirectives,
		p.parseBareDocumentEnd,
		p.parseDocumentWithOptionalHeader,
		p.parseHeaderOnlyDocument,
	)
}

func (p *Parser) parseDocumentWithDirectives() (ast.Node, error) {
	first, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	for {
		cp := p.mark()
		trivia := p.statefulTriviaRun()
		d, err := p.parseDirective()
		if err != nil {
			p.restore(cp)
			break
		}
		children = append(children, trivia...)
		children = append(children, d)
	}
	cp := p.mark()
	children = append(children, p.statefulTriviaRun()...)
	marker, ok := p.consumeLiteral(ast.DirectivesEnd, "---")
	if !ok {
		p.restore(cp)
		return nil, cut(p.pos, "expected '---' after directives")
	}
	children = append(children, marker)
	return p.finishDocumentBody(children), nil
}

func (p *Parser) parseBareDocumentEnd() (ast.Node, error) {
	marker, ok := p.consumeLiteral(ast.DocumentEnd, "...")
	if !ok {
		return nil, fail(p.pos, "expected '...'")
	}
	p.state.PrevDocumentFinished = true
	return ast.NewTree(ast.Document, marker), nil
}

func (p *Parser) parseDocumentWithOptionalHeader() (ast.Node, error) {
	var children []ast.Node
	if marker, ok := p.consumeLiteral(ast.DirectivesEnd, "---"); ok {
		children = append(children, marker)
	} else if !p.state.PrevDocumentFinished {
		return nil, fail(p.pos, "expected '---'")
	}
	return p.finishDocumentBody(children), nil
}

func (p *Parser) parseHeaderOnlyDocument() (ast.Node, error) {
	marker, ok := p.consumeLiteral(ast.DirectivesEnd, "---")
	if !ok {
		return nil, fail(p.pos, "expected '---'")
	}
	children := []ast.Node{marker}
	cp := p.mark()
	trivia := p.statefulTriviaRun()
	if end, ok := p.consumeLiteral(ast.DocumentEnd, "..."); ok {
		children = append(children, trivia...)
		children = append(children, end)
		p.state.PrevDocumentFinished = true
	} else {
		p.restore(cp)
		p.state.PrevDocumentFinished = false
	}
	return ast.NewTree(ast.Document, children...), nil
}

// finishDocumentBody parses the optional top-level block and optional "..."
// shared by the directive-prefixed and bare-marker document shapes.
func (p *Parser) finishDocumentBody(children []ast.Node) ast.Node {
	p.state.PrevDocumentFinished = false
	cp := p.mark()
	trivia := p.statefulTriviaRun()
	if !p.atDocumentMarker() && !p.eof() {
		if body, err := p.atDocumentTop(true, p.withContext(BlockIn, p.parseBlock))(); err == nil {
			children = append(children, trivia...)
			children = append(children, body)
		} else {
			p.restore(cp)
		}
	} else {
		p.restore(cp)
	}

	cp2 := p.mark()
	trailingTrivia := p.statefulTriviaRun()
	if end, ok := p.consumeLiteral(ast.DocumentEnd, "..."); ok {
		children = append(children, trailingTrivia...)
		children = append(children, end)
		p.state.PrevDocumentFinished = true
	} else {
		p.restore(cp2)
	}
	return ast.NewTree(ast.Document, children...)
}
