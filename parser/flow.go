package parser

import "github.com/prettyyaml/yamlfmt/ast"

// parseFlowContent dispatches on the first character: '"' double-quoted,
// '\'' single-quoted, '[' flow sequence, '{' flow map, otherwise plain.
func (p *Parser) parseFlowContent() (ast.Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fail(p.pos, "expected flow content")
	}
	switch c {
	case '"':
		return p.parseDoubleQuoted()
	case '\'':
		return p.parseSingleQuoted()
	case '[':
		return p.parseFlowSeq()
	case '{':
		return p.parseFlowMap()
	default:
		return p.parsePlainScalar()
	}
}

// parseFlow = alias | properties (sep flow_content)? | flow_content.
func (p *Parser) parseFlow() (ast.Node, error) {
	return p.firstOf(p.parseAlias, p.parsePropertiesThenContent, p.parseFlowContent)
}

func (p *Parser) parsePropertiesThenContent() (ast.Node, error) {
	props, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{props}
	cp := p.mark()
	sep := p.statelessTriviaRun()
	if content, err := p.parseFlowContent(); err == nil {
		children = append(children, sep...)
		children = append(children, content)
	} else {
		p.restore(cp)
	}
	return ast.NewTree(ast.Flow, children...), nil
}

// enterFlow maps the current context into flow according to YAML's
// context-propagation rules on entering a flow collection.
func enterFlow(ctx Context) Context {
	switch ctx {
	case BlockKey, FlowKey:
		return FlowKey
	default:
		return FlowIn
	}
}

// parseFlowSeq = "[" trivia* flow_seq_entries "]".
func (p *Parser) parseFlowSeq() (ast.Node, error) {
	open, ok := p.consumeByte(ast.LBracket, '[')
	if !ok {
		return nil, fail(p.pos, "expected '['")
	}
	children := []ast.Node{open}
	children = append(children, p.statelessTriviaRun()...)
	entries, err := p.withContext(enterFlow(p.state.Ctx), p.parseFlowSeqEntries)()
	if err != nil {
		return nil, err
	}
	children = append(children, entries)
	close, ok := p.consumeByte(ast.RBracket, ']')
	if !ok {
		return nil, cut(p.pos, "expected ']'")
	}
	children = append(children, close)
	return ast.NewTree(ast.FlowSeq, children...), nil
}

// parseFlowMap = "{" trivia* flow_map_entries "}".
func (p *Parser) parseFlowMap() (ast.Node, error) {
	open, ok := p.consumeByte(ast.LBrace, '{')
	if !ok {
		return nil, fail(p.pos, "expected '{'")
	}
	children := []ast.Node{open}
	children = append(children, p.statelessTriviaRun()...)
	ctx := enterFlow(p.state.Ctx)
	if p.state.Ctx == BlockKey {
		ctx = FlowKey
	}
	entries, err := p.withContext(ctx, p.parseFlowMapEntries)()
	if err != nil {
		return nil, err
	}
	children = append(children, entries)
	close, ok := p.consumeByte(ast.RBrace, '}')
	if !ok {
		return nil, cut(p.pos, "expected '}'")
	}
	children = append(children, close)
	return ast.NewTree(ast.FlowMap, children...), nil
}

func (p *Parser) atFlowCloser() bool {
	c, ok := p.peek()
	return ok && (c == ']' || c == '}')
}

// parseFlowSeqEntries folds a list of (entry trivia ("," | lookahead(closer)))
// alternating with pure-trivia runs.
func (p *Parser) parseFlowSeqEntries() (ast.Node, error) {
	var children []ast.Node
	for {
		if p.atFlowCloser() || p.eof() {
			break
		}
		entry, err := p.parseFlowSeqEntry()
		if err != nil {
			break
		}
		children = append(children, entry)
		children = append(children, p.statelessTriviaRun()...)
		if comma, ok := p.consumeByte(ast.Comma, ','); ok {
			children = append(children, comma)
			children = append(children, p.statelessTriviaRun()...)
			continue
		}
		break
	}
	return ast.NewTree(ast.FlowSeqEntries, children...), nil
}

// parseFlowSeqEntry = flow (not followed by trivia ":") | flow_pair.
func (p *Parser) parseFlowSeqEntry() (ast.Node, error) {
	plain := func() (ast.Node, error) {
		flow, err := p.parseFlow()
		if err != nil {
			return nil, err
		}
		cp := p.mark()
		p.statelessTriviaRun()
		if c, ok := p.peek(); ok && c == ':' {
			p.restore(cp)
			return nil, fail(p.pos, "looks like a pair, not a plain entry")
		}
		p.restore(cp)
		return ast.NewTree(ast.FlowSeqEntry, flow), nil
	}
	pair := func() (ast.Node, error) {
		fp, err := p.parseFlowPair()
		if err != nil {
			return nil, err
		}
		return ast.NewTree(ast.FlowSeqEntry, fp), nil
	}
	return p.firstOf(plain, pair)
}

// parseFlowPair = (question-mark-key | implicit flow key) ":" flow?.
func (p *Parser) parseFlowPair() (ast.Node, error) {
	var children []ast.Node
	if q, ok := p.consumeByte(ast.Question, '?'); ok {
		children = append(children, q)
		cp := p.mark()
		sep := p.statelessTriviaRun()
		if key, err := p.withContext(p.keyContext(), p.parseFlow)(); err == nil {
			children = append(children, sep...)
			children = append(children, key)
		} else {
			p.restore(cp)
		}
	} else {
		key, err := p.withContext(p.keyContext(), p.parseFlow)()
		if err != nil {
			return nil, err
		}
		children = append(children, key)
	}
	children = append(children, p.statelessTriviaRun()...)
	colon, ok := p.consumeByte(ast.Colon, ':')
	if !ok {
		return nil, fail(p.pos, "expected ':' in flow pair")
	}
	children = append(children, colon)
	cp := p.mark()
	sep := p.statelessTriviaRun()
	if val, err := p.parseFlow(); err == nil {
		children = append(children, sep...)
		children = append(children, val)
	} else {
		p.restore(cp)
	}
	return ast.NewTree(ast.FlowPair, children...), nil
}

func (p *Parser) keyContext() Context {
	if p.state.Ctx == BlockKey {
		return FlowKey
	}
	return FlowKey
}

// parseFlowMapEntries mirrors parseFlowSeqEntries for map entries.
func (p *Parser) parseFlowMapEntries() (ast.Node, error) {
	var children []ast.Node
	for {
		if p.atFlowCloser() || p.eof() {
			break
		}
		entry, err := p.parseFlowMapEntry()
		if err != nil {
			break
		}
		children = append(children, entry)
		children = append(children, p.statelessTriviaRun()...)
		if comma, ok := p.consumeByte(ast.Comma, ','); ok {
			children = append(children, comma)
			children = append(children, p.statelessTriviaRun()...)
			continue
		}
		break
	}
	return ast.NewTree(ast.FlowMapEntries, children...), nil
}

// parseFlowMapEntry = optional key, trivia, ":", optional trivia+value, or a
// bare key without a colon.
func (p *Parser) parseFlowMapEntry() (ast.Node, error) {
	key, err := p.parseFlowMapKey()
	if err != nil {
		return nil, err
	}
	children := []ast.Node{key}
	cp := p.mark()
	sep := p.statelessTriviaRun()
	colon, ok := p.consumeByte(ast.Colon, ':')
	if !ok {
		p.restore(cp)
		return ast.NewTree(ast.FlowMapEntry, children...), nil
	}
	children = append(children, sep...)
	children = append(children, colon)
	cp2 := p.mark()
	valSep := p.statelessTriviaRun()
	if val, err := p.parseFlowMapValue(); err == nil {
		children = append(children, valSep...)
		children = append(children, val)
	} else {
		p.restore(cp2)
	}
	return ast.NewTree(ast.FlowMapEntry, children...), nil
}

// parseFlowMapKey = flow | "?" (trivia flow)?.
func (p *Parser) parseFlowMapKey() (ast.Node, error) {
	explicit := func() (ast.Node, error) {
		q, ok := p.consumeByte(ast.Question, '?')
		if !ok {
			return nil, fail(p.pos, "expected '?'")
		}
		children := []ast.Node{q}
		cp := p.mark()
		sep := p.statelessTriviaRun()
		if key, err := p.withContext(p.keyContext(), p.parseFlow)(); err == nil {
			children = append(children, sep...)
			children = append(children, key)
		} else {
			p.restore(cp)
		}
		return ast.NewTree(ast.FlowMapKey, children...), nil
	}
	implicit := func() (ast.Node, error) {
		flow, err := p.withContext(p.keyContext(), p.parseFlow)()
		if err != nil {
			return nil, err
		}
		return ast.NewTree(ast.FlowMapKey, flow), nil
	}
	return p.firstOf(explicit, implicit)
}

func (p *Parser) parseFlowMapValue() (ast.Node, error) {
	flow, err := p.parseFlow()
	if err != nil {
		return nil, err
	}
	return ast.NewTree(ast.FlowMapValue, flow), nil
}
