package parser

import "github.com/prettyyaml/yamlfmt/ast"

// parseFunc is the shape every grammar production is expressed in: run
// against the parser's current position/state, return a tree/token or an
// error. The wrappers below implement spec.md §4.2's indent
// combinators by running a parseFunc and adjusting success/failure based on
// how p.state.Indent moved while it ran.

type parseFunc func() (ast.Node, error)

// trackIndent marks the indent active on success as "opened", so a later
// verifyIndent that lands on the same indent value backtracks to the outer
// rule instead of hard-failing.
func (p *Parser) trackIndent(f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		n, err := f()
		if err == nil {
			p.state.trackIndent(p.state.Indent)
		}
		return n, err
	}
}

// verifyIndent runs f, then classifies what happened to p.state.Indent:
// unchanged (or input now empty) succeeds outright; changed to an indent
// that was never tracked is a hard failure (the input is malformed, not
// merely a different branch); changed to a tracked indent closes that
// indent and backtracks, letting an outer rule at the smaller indent
// continue.
func (p *Parser) verifyIndent(f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		before := p.state.Indent
		n, err := f()
		if err != nil {
			return n, err
		}
		if p.state.Indent == before || p.eof() {
			return n, nil
		}
		if !p.state.indentTracked(p.state.Indent) {
			return nil, cut(p.pos, "unexpected indentation")
		}
		p.state.untrackIndent(before)
		return nil, fail(p.pos, "dedent")
	}
}

// requireDeeperIndent backtracks (without running f) if we are not at
// document top, the preceding whitespace contained a newline, and the
// enclosing construct's indent is not strictly smaller than the current
// one - i.e. block content must nest strictly under its owner.
func (p *Parser) requireDeeperIndent(f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		if !p.state.DocumentTop && p.state.LastWSHasNL &&
			p.state.PrevIndent != noPrevIndent && p.state.PrevIndent >= p.state.Indent {
			return nil, fail(p.pos, "expected deeper indentation")
		}
		return f()
	}
}

// storePrevIndent snapshots PrevIndent, sets it to the current Indent for
// the duration of f, and restores it afterward regardless of outcome -
// compact collections and nested block constructs use this to remember
// "the indent my parent opened at" across their own indent changes.
func (p *Parser) storePrevIndent(f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		prev := p.state.PrevIndent
		p.state.PrevIndent = p.state.Indent
		n, err := f()
		p.state.PrevIndent = prev
		return n, err
	}
}

// withContext runs f with Ctx temporarily set to ctx, restoring the prior
// context afterward. Entering a flow collection or a block value are the
// two places the grammar pushes a new context.
func (p *Parser) withContext(ctx Context, f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		prev := p.state.Ctx
		p.state.Ctx = ctx
		n, err := f()
		p.state.Ctx = prev
		return n, err
	}
}

// atDocumentTop runs f with DocumentTop temporarily set to v.
func (p *Parser) atDocumentTop(v bool, f parseFunc) parseFunc {
	return func() (ast.Node, error) {
		prev := p.state.DocumentTop
		p.state.DocumentTop = v
		n, err := f()
		p.state.DocumentTop = prev
		return n, err
	}
}

// attempt runs f from a checkpoint and restores position/state on any
// backtracking failure (not on a hard cut, which must keep propagating so an
// outer ordered-choice does not mistakenly try its next branch).
func (p *Parser) attempt(f parseFunc) (ast.Node, error) {
	cp := p.mark()
	n, err := f()
	if err != nil && !isHard(err) {
		p.restore(cp)
	}
	return n, err
}

// firstOf tries each alternative in order, returning the first success.
// A hard failure from any alternative aborts the whole ordered choice
// immediately, per the cut-vs-backtrack discipline in spec.md §4.2.
func (p *Parser) firstOf(alts ...parseFunc) (ast.Node, error) {
	var lastErr error
	for _, alt := range alts {
		n, err := p.attempt(alt)
		if err == nil {
			return n, nil
		}
		if isHard(err) {
			return nil, err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fail(p.pos, "no alternative matched")
	}
	return nil, lastErr
}
