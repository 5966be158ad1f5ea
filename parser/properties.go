package parser

import (
	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/charclass"
)

// parseAnchorName = one or more characters that are neither flow-indicators
// nor ASCII whitespace.
func (p *Parser) parseAnchorName() (ast.Node, error) {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || charclass.IsWhitespace(c) || charclass.IsFlowIndicator(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, fail(start, "expected anchor or alias name")
	}
	return ast.NewToken(ast.AnchorName, p.src[start:p.pos]), nil
}

// parseAnchorProperty = "&" anchor_name (hard fail if the name is missing -
// "&" unambiguously starts an anchor, so anything else here is malformed).
func (p *Parser) parseAnchorProperty() (ast.Node, error) {
	amp, ok := p.consumeByte(ast.Ampersand, '&')
	if !ok {
		return nil, fail(p.pos, "expected '&'")
	}
	name, err := p.parseAnchorName()
	if err != nil {
		return nil, cut(p.pos, "missing anchor name after '&'")
	}
	return ast.NewTree(ast.AnchorProperty, amp, name), nil
}

// parseAlias = "*" anchor_name (hard fail if the name is missing).
func (p *Parser) parseAlias() (ast.Node, error) {
	star, ok := p.consumeByte(ast.Asterisk, '*')
	if !ok {
		return nil, fail(p.pos, "expected '*'")
	}
	name, err := p.parseAnchorName()
	if err != nil {
		return nil, cut(p.pos, "missing anchor name after '*'")
	}
	return ast.NewTree(ast.Alias, star, name), nil
}

// parseTagHandle = "!" word-chars "!" (named) | "!!" (secondary) | "!" (primary).
func (p *Parser) parseTagHandle() (ast.Node, error) {
	start := p.pos
	bang, ok := p.consumeByte(ast.Bang, '!')
	if !ok {
		return nil, fail(start, "expected '!'")
	}
	if c, ok := p.peek(); ok && c == '!' {
		p.pos++
		return ast.NewTree(ast.TagHandle, ast.NewToken(ast.SecondaryTagHandle, p.src[start:p.pos])), nil
	}
	wordStart := p.pos
	for {
		c, ok := p.peek()
		if !ok || !charclass.IsWordChar(c) {
			break
		}
		p.pos++
	}
	if p.pos > wordStart {
		if c, ok := p.peek(); ok && c == '!' {
			p.pos++
			return ast.NewTree(ast.TagHandle, ast.NewToken(ast.NamedTagHandle, p.src[start:p.pos])), nil
		}
		p.pos = wordStart
	}
	return ast.NewTree(ast.TagHandle, ast.NewToken(ast.PrimaryTagHandle, bang.Text())), nil
}

// parseShorthandTag = tag_handle tag_char+.
func (p *Parser) parseShorthandTag() (ast.Node, error) {
	handle, err := p.parseTagHandle()
	if err != nil {
		return nil, err
	}
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || !charclass.IsTagChar(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, fail(start, "expected tag suffix")
	}
	suffix := ast.NewToken(ast.TagChar, p.src[start:p.pos])
	return ast.NewTree(ast.ShorthandTagHandle, handle, suffix), nil
}

// parseVerbatimTag = "!<" url_char+ ">".
func (p *Parser) parseVerbatimTag() (ast.Node, error) {
	start := p.pos
	open, ok := p.consumeLiteral(ast.Bang, "!<")
	if !ok {
		return nil, fail(start, "expected '!<'")
	}
	bodyStart := p.pos
	for {
		c, ok := p.peek()
		if !ok || !charclass.IsURLChar(c) {
			break
		}
		p.pos++
	}
	if p.pos == bodyStart {
		return nil, cut(p.pos, "invalid verbatim tag: empty URI")
	}
	body := p.src[bodyStart:p.pos]
	close, ok := p.consumeByte(ast.GreaterThan, '>')
	if !ok {
		return nil, cut(p.pos, "invalid verbatim tag: missing '>'")
	}
	return ast.NewTree(ast.VerbatimTag, open, ast.NewToken(ast.TagChar, body), close), nil
}

func (p *Parser) parseNonSpecificTag() (ast.Node, error) {
	bang, ok := p.consumeByte(ast.Bang, '!')
	if !ok {
		return nil, fail(p.pos, "expected '!'")
	}
	if c, ok := p.peek(); ok && (charclass.IsWordChar(c) || c == '!' || c == '<') {
		return nil, fail(p.pos, "not a non-specific tag")
	}
	return ast.NewTree(ast.NonSpecificTag, bang), nil
}

// parseTagProperty = verbatim_tag | shorthand_tag | non_specific_tag.
func (p *Parser) parseTagProperty() (ast.Node, error) {
	n, err := p.firstOf(p.parseVerbatimTag, p.parseShorthandTag, p.parseNonSpecificTag)
	if err != nil {
		return nil, err
	}
	return ast.NewTree(ast.TagProperty, n), nil
}

// parseProperties = (anchor_property (sep tag_property)?) |
//                   (tag_property (sep anchor_property)?).
// The separator peeks past horizontal whitespace but refuses to consume a
// following "&" or "!" that starts a distinct neighbouring construct -
// concretely, that means a second property of the *same* family never
// attaches: "&a &b" is one anchor followed by a second, separate anchor, not
// one properties group.
func (p *Parser) parseProperties() (ast.Node, error) {
	anchorFirst := func() (ast.Node, error) {
		anchor, err := p.parseAnchorProperty()
		if err != nil {
			return nil, err
		}
		children := []ast.Node{anchor}
		if sep, tag, ok := p.trySeparatedSecondProperty('!'); ok {
			children = append(children, sep...)
			children = append(children, tag)
		}
		return ast.NewTree(ast.Properties, children...), nil
	}
	tagFirst := func() (ast.Node, error) {
		tag, err := p.parseTagProperty()
		if err != nil {
			return nil, err
		}
		children := []ast.Node{tag}
		if sep, anchor, ok := p.trySeparatedSecondProperty('&'); ok {
			children = append(children, sep...)
			children = append(children, anchor)
		}
		return ast.NewTree(ast.Properties, children...), nil
	}
	return p.firstOf(anchorFirst, tagFirst)
}

// trySeparatedSecondProperty peeks past inline whitespace for a second
// property introduced by leadByte ('&' or '!'), returning the trivia
// consumed and the parsed property node.
func (p *Parser) trySeparatedSecondProperty(leadByte byte) ([]ast.Node, ast.Node, bool) {
	cp := p.mark()
	sep := p.statelessTriviaRun()
	c, ok := p.peek()
	if !ok || c != leadByte {
		p.restore(cp)
		return nil, nil, false
	}
	var n ast.Node
	var err error
	if leadByte == '&' {
		n, err = p.parseAnchorProperty()
	} else {
		n, err = p.parseTagProperty()
	}
	if err != nil {
		p.restore(cp)
		return nil, nil, false
	}
	return sep, n, true
}
