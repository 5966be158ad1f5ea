package parser

import (
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
)

// parseBlock = (properties trivia)?
//              ( block_sequence (require-deeper-indent, BlockIn)
//              | block_map      (require-deeper-indent, BlockOut)
//              | block_scalar )
//            | flow (require-deeper-indent, context = FlowOut)
//            | properties-only.
func (p *Parser) parseBlock() (ast.Node, error) {
	var props ast.Node
	var propsTrivia []ast.Node
	if n, err := p.parseProperties(); err == nil {
		props = n
		cp := p.mark()
		trivia := p.statefulTriviaRun()
		if len(trivia) == 0 || p.eof() || p.atPropertiesOnlyBoundary() {
			p.restore(cp)
		} else {
			propsTrivia = trivia
		}
	}

	collection := func() (ast.Node, error) {
		seq := p.requireDeeperIndent(p.withContext(BlockIn, p.parseBlockSeq))
		m := p.requireDeeperIndent(p.withContext(BlockOut, p.parseBlockMap))
		return p.firstOf(seq, m, p.parseBlockScalar)
	}
	if n, err := collection(); err == nil {
		return p.assembleBlock(props, propsTrivia, n), nil
	}

	flowAttempt := p.requireDeeperIndent(p.withContext(FlowOut, p.parseFlow))
	if n, err := flowAttempt(); err == nil {
		return p.assembleBlock(props, propsTrivia, n), nil
	}

	if props != nil {
		return p.assembleBlock(props, propsTrivia, nil), nil
	}
	return nil, fail(p.pos, "expected block content")
}

func (p *Parser) assembleBlock(props ast.Node, propsTrivia []ast.Node, content ast.Node) ast.Node {
	var children []ast.Node
	if props != nil {
		children = append(children, props)
		children = append(children, propsTrivia...)
	}
	if content != nil {
		children = append(children, content)
	}
	return ast.NewTree(ast.Block, children...)
}

// atPropertiesOnlyBoundary reports whether the current position looks like
// the start of a sibling structural token rather than the start of this
// block's own content - used to decide whether the trivia just consumed
// after properties belongs to this block (a real separator) or to an outer
// construct (meaning properties stand alone with no value).
func (p *Parser) atPropertiesOnlyBoundary() bool {
	return p.eof()
}

// parseBlockSeq = block_seq_entry (trivia-with-same-indent block_seq_entry)*.
func (p *Parser) parseBlockSeq() (ast.Node, error) {
	first, err := p.verifyIndent(p.trackIndent(p.parseBlockSeqEntry))()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	for {
		cp := p.mark()
		trivia := p.statefulTriviaRun()
		entry, err := p.verifyIndent(p.trackIndent(p.parseBlockSeqEntry))()
		if err != nil {
			p.restore(cp)
			break
		}
		children = append(children, trivia...)
		children = append(children, entry)
	}
	return ast.NewTree(ast.BlockSeq, children...), nil
}

// parseBlockSeqEntry = "-" (compact-collection | trivia-and-deeper-indent block | empty).
func (p *Parser) parseBlockSeqEntry() (ast.Node, error) {
	c, ok := p.peek()
	if !ok || c != '-' {
		return nil, fail(p.pos, "expected '-'")
	}
	if next, hasNext := p.peekAt(1); hasNext && !isBlockSeqSpacer(next) {
		return nil, fail(p.pos, "not a sequence entry dash")
	}
	dash, _ := p.consumeByte(ast.Minus, '-')
	children := []ast.Node{dash}

	if compact, ok := p.tryCompactCollection(); ok {
		children = append(children, compact)
		return ast.NewTree(ast.BlockSeqEntry, children...), nil
	}

	cp := p.mark()
	trivia := p.statefulTriviaRun()
	value, err := p.storePrevIndent(p.parseBlock)()
	if err != nil {
		p.restore(cp)
		return ast.NewTree(ast.BlockSeqEntry, children...), nil
	}
	children = append(children, trivia...)
	children = append(children, value)
	return ast.NewTree(ast.BlockSeqEntry, children...), nil
}

func isBlockSeqSpacer(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// tryCompactCollection implements the compact-collection trick: when a "-"
// or "?" is immediately followed by one or more spaces and then a nested
// sequence dash or map key, the child collection's effective indent is
// current_indent + len(spaces) + 1, i.e. it aligns with the first character
// after the indicator.
func (p *Parser) tryCompactCollection() (ast.Node, bool) {
	cp := p.mark()
	spaceStart := p.pos
	for {
		c, ok := p.peek()
		if !ok || c != ' ' {
			break
		}
		p.pos++
	}
	spaceLen := p.pos - spaceStart
	if spaceLen == 0 {
		p.restore(cp)
		return nil, false
	}
	c, ok := p.peek()
	if !ok || (c != '-' && c != '?' && !isImplicitMapKeyStart(c)) {
		p.restore(cp)
		return nil, false
	}
	if c == '-' {
		if next, hasNext := p.peekAt(1); hasNext && !isBlockSeqSpacer(next) {
			p.restore(cp)
			return nil, false
		}
	}
	childIndent := p.state.Indent + spaceLen + 1
	savedIndent := p.state.Indent
	savedPrev := p.state.PrevIndent
	p.state.Indent = childIndent
	p.state.PrevIndent = savedIndent - spaceLen
	attempt := func() (ast.Node, error) {
		seq := p.trackIndent(p.parseBlockSeq)
		m := p.trackIndent(p.parseBlockMap)
		return p.firstOf(seq, m)
	}
	n, err := attempt()
	if err != nil {
		p.state.Indent = savedIndent
		p.state.PrevIndent = savedPrev
		p.restore(cp)
		return nil, false
	}
	return ast.NewTree(ast.Block, n), true
}

func isImplicitMapKeyStart(c byte) bool {
	// A bare scalar, quote, or flow opener may start an implicit map key.
	return c != '\n' && c != '\r' && c != '#'
}

// parseBlockMap = entry (trivia-with-same-indent entry)*.
func (p *Parser) parseBlockMap() (ast.Node, error) {
	entry := func() (ast.Node, error) {
		return p.firstOf(p.parseBlockMapExplicitEntry, p.parseBlockMapImplicitEntry)
	}
	first, err := p.verifyIndent(p.trackIndent(entry))()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	for {
		cp := p.mark()
		trivia := p.statefulTriviaRun()
		next, err := p.verifyIndent(p.trackIndent(entry))()
		if err != nil {
			p.restore(cp)
			break
		}
		children = append(children, trivia...)
		children = append(children, next)
	}
	return ast.NewTree(ast.BlockMap, children...), nil
}

// parseBlockMapExplicitEntry = "?" key (trivia ":" (compact-collection | trivia+value)?)?.
func (p *Parser) parseBlockMapExplicitEntry() (ast.Node, error) {
	q, ok := p.consumeByte(ast.Question, '?')
	if !ok {
		return nil, fail(p.pos, "expected '?'")
	}
	var keyChildren []ast.Node
	cp := p.mark()
	trivia := p.statefulTriviaRun()
	if key, err := p.storePrevIndent(p.withContext(BlockKey, p.parseBlock))(); err == nil {
		keyChildren = append(keyChildren, trivia...)
		keyChildren = append(keyChildren, key)
	} else {
		p.restore(cp)
	}
	keyNode := ast.NewTree(ast.BlockMapKey, keyChildren...)
	children := []ast.Node{q, keyNode}

	cp2 := p.mark()
	sepTrivia := p.statefulTriviaRun()
	colon, ok := p.consumeByte(ast.Colon, ':')
	if !ok {
		p.restore(cp2)
		return ast.NewTree(ast.BlockMapEntry, children...), nil
	}
	children = append(children, sepTrivia...)
	children = append(children, colon)

	if compact, ok := p.tryCompactCollection(); ok {
		children = append(children, ast.NewTree(ast.BlockMapValue, compact))
		return ast.NewTree(ast.BlockMapEntry, children...), nil
	}

	cp3 := p.mark()
	valTrivia := p.statefulTriviaRun()
	if val, err := p.storePrevIndent(p.parseBlock)(); err == nil {
		children = append(children, valTrivia...)
		children = append(children, ast.NewTree(ast.BlockMapValue, val))
	} else {
		p.restore(cp3)
	}
	return ast.NewTree(ast.BlockMapEntry, children...), nil
}

// parseBlockMapImplicitEntry = (flow-as-key space?)? ":" (trivia value)?.
func (p *Parser) parseBlockMapImplicitEntry() (ast.Node, error) {
	var keyChildren []ast.Node
	if flow, err := p.storePrevIndent(p.withContext(BlockKey, p.parseFlow))(); err == nil {
		keyChildren = append(keyChildren, flow)
	}
	keyNode := ast.NewTree(ast.BlockMapKey, keyChildren...)

	cp := p.mark()
	sepTrivia := p.statelessTriviaRun()
	colon, ok := p.consumeByte(ast.Colon, ':')
	if !ok {
		p.restore(cp)
		return nil, fail(p.pos, "expected ':'")
	}
	children := []ast.Node{keyNode}
	children = append(children, sepTrivia...)
	children = append(children, colon)

	if compact, ok := p.tryCompactCollection(); ok {
		children = append(children, ast.NewTree(ast.BlockMapValue, compact))
		return ast.NewTree(ast.BlockMapEntry, children...), nil
	}

	cp2 := p.mark()
	valTrivia := p.statefulTriviaRun()
	if val, err := p.storePrevIndent(p.parseBlock)(); err == nil {
		children = append(children, valTrivia...)
		children = append(children, ast.NewTree(ast.BlockMapValue, val))
	} else {
		p.restore(cp2)
	}
	return ast.NewTree(ast.BlockMapEntry, children...), nil
}

// --- block scalars ------------------------------------------------------

// parseBlockScalar = ("|" | ">") header trivia text.
// Header variants: indent-indicator then optional chomping, or chomping then
// optional indent-indicator. Indent-indicator is a digit 1-9 raising the
// effective content indent to base_indent+d; chomping is "+" (keep) or "-"
// (strip), default clip.
func (p *Parser) parseBlockScalar() (ast.Node, error) {
	var style ast.Node
	if b, ok := p.consumeByte(ast.Bar, '|'); ok {
		style = b
	} else if g, ok := p.consumeByte(ast.GreaterThan, '>'); ok {
		style = g
	} else {
		return nil, fail(p.pos, "expected '|' or '>'")
	}
	children := []ast.Node{style}

	baseIndent := p.state.Indent
	explicitIndent := -1
	var indentNode, chompNode ast.Node

	tryIndentIndicator := func() bool {
		c, ok := p.peek()
		if !ok || c < '1' || c > '9' {
			return false
		}
		explicitIndent = int(c - '0')
		tk, _ := p.consumeByte(ast.IndentIndicator, c)
		indentNode = tk
		return true
	}
	tryChomping := func() bool {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return false
		}
		var tk ast.Node
		if c == '+' {
			tk, _ = p.consumeByte(ast.Plus, '+')
		} else {
			tk, _ = p.consumeByte(ast.Minus, '-')
		}
		chompNode = ast.NewTree(ast.ChompingIndicator, tk)
		return true
	}
	if tryIndentIndicator() {
		tryChomping()
	} else if tryChomping() {
		tryIndentIndicator()
	}
	if c, ok := p.peek(); ok && c != '\n' && c != '\r' && c != '#' {
		return nil, cut(p.pos, "invalid block scalar header")
	}
	if indentNode != nil {
		children = append(children, indentNode)
	}
	if chompNode != nil {
		children = append(children, chompNode)
	}

	children = append(children, p.consumeBlockScalarHeaderTrailer()...)

	bodyStart := p.pos
	contentIndent := explicitIndent
	if contentIndent > 0 {
		contentIndent = baseIndent + explicitIndent
	} else {
		contentIndent = -1 // determined from first non-empty line
	}
	p.consumeBlockScalarBody(baseIndent, &contentIndent)
	text := p.src[bodyStart:p.pos]
	children = append(children, ast.NewToken(ast.BlockScalarText, text))
	return ast.NewTree(ast.BlockScalar, children...), nil
}

// consumeBlockScalarHeaderTrailer consumes the header line's trailing inline
// whitespace and optional comment, then exactly one line break, resetting
// Indent the same way tryStatefulTrivia does. Unlike tryStatefulTrivia, it
// stops there instead of continuing to gobble whitespace: the first content
// line's own leading indentation belongs inside BlockScalarText, not in a
// sibling trivia token, or the printer can't tell how far to un-indent it.
func (p *Parser) consumeBlockScalarHeaderTrailer() []ast.Node {
	var out []ast.Node
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || (c != ' ' && c != '\t') {
			break
		}
		p.pos++
	}
	if p.pos > start {
		out = append(out, ast.NewToken(ast.Whitespace, p.src[start:p.pos]))
	}
	if c, ok := p.peek(); ok && c == '#' {
		out = append(out, p.consumeComment())
	}
	lineStart := p.pos
	if c, ok := p.peek(); ok && (c == '\n' || c == '\r') {
		p.pos++
		if c == '\r' {
			if n, ok := p.peek(); ok && n == '\n' {
				p.pos++
			}
		}
		p.state.Indent = 0
		p.state.LastWSHasNL = true
	}
	if p.pos > lineStart {
		out = append(out, ast.NewToken(ast.Whitespace, p.src[lineStart:p.pos]))
	}
	return out
}

// consumeBlockScalarBody accepts lines whose leading whitespace indent is >=
// the effective content indent and whose body is non-empty, stopping before
// a line that begins "---" or "..." at column zero, or whose indent falls
// below the content indent. If contentIndent is unset (-1), it is derived
// from the first non-empty line's leading whitespace.
func (p *Parser) consumeBlockScalarBody(baseIndent int, contentIndent *int) {
	for !p.eof() {
		lineStart := p.pos
		indent := 0
		for {
			c, ok := p.peek()
			if !ok || c != ' ' {
				break
			}
			p.pos++
			indent++
		}
		c, ok := p.peek()
		isBlank := !ok || c == '\n' || c == '\r'
		if isBlank {
			// blank or EOF-terminated line: always part of the scalar body
			// (chomping trims trailing blank lines later, in the printer).
			p.consumeToEOL()
			continue
		}
		if *contentIndent < 0 {
			if indent <= baseIndent && !p.state.DocumentTop {
				p.pos = lineStart
				return
			}
			*contentIndent = indent
		}
		if indent < *contentIndent {
			p.pos = lineStart
			return
		}
		if indent == 0 && (strings.HasPrefix(p.rest(), "---") || strings.HasPrefix(p.rest(), "...")) {
			p.pos = lineStart
			return
		}
		p.consumeToEOL()
	}
}

func (p *Parser) consumeToEOL() {
	for {
		c, ok := p.peek()
		if !ok {
			return
		}
		p.pos++
		if c == '\n' {
			p.state.Indent = 0
			return
		}
		if c == '\r' {
			if n, ok := p.peek(); ok && n == '\n' {
				p.pos++
			}
			p.state.Indent = 0
			return
		}
	}
}
