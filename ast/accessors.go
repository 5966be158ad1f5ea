package ast

// The typed wrappers below give call sites readable accessors for the node
// shapes named in spec.md §3.1, instead of forcing every caller in the
// printer to re-derive "the key is my second non-trivia child" by hand. Each
// wraps a *Tree of the matching Kind; constructing one over a mismatched Tree
// is a programmer error, not a runtime one - these are accessors, not a
// validating layer.

// Document wraps a Kind Document node: optional directives, an optional
// "---" marker, an optional top-level block, and an optional "...".
type Document struct{ *Tree }

func AsDocument(n Node) (Document, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != Document {
		return Document{}, false
	}
	return Document{t}, true
}

func (d Document) Directives() []Node { return AllChildren(d, Directive) }

func (d Document) DirectivesEnd() (Node, bool) { return FirstChild(d, DirectivesEnd) }

func (d Document) Body() (Node, bool) { return FirstChild(d, Block) }

func (d Document) DocumentEnd() (Node, bool) { return FirstChild(d, DocumentEnd) }

// Root wraps the Kind Root node: the sequence of documents (and leading/
// trailing trivia) that make up an entire input.
type Root struct{ *Tree }

func AsRoot(n Node) (Root, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != Root {
		return Root{}, false
	}
	return Root{t}, true
}

func (r Root) Documents() []Node { return AllChildren(r, Document) }

// Block wraps a Kind Block node: optional properties, then exactly one of a
// block sequence, block map, block scalar, or flow node.
type Block struct{ *Tree }

func AsBlock(n Node) (Block, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != Block {
		return Block{}, false
	}
	return Block{t}, true
}

func (b Block) Properties() (Node, bool) { return FirstChild(b, Properties) }

// Content returns the single structural (non-properties, non-trivia) child:
// the sequence/map/scalar/flow this block actually is.
func (b Block) Content() (Node, bool) {
	for _, c := range NonTrivia(b) {
		if c.Kind() != Properties {
			return c, true
		}
	}
	return nil, false
}

// BlockSeq wraps a Kind BlockSeq node: one or more BlockSeqEntry children.
type BlockSeq struct{ *Tree }

func AsBlockSeq(n Node) (BlockSeq, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != BlockSeq {
		return BlockSeq{}, false
	}
	return BlockSeq{t}, true
}

func (s BlockSeq) Entries() []Node { return AllChildren(s, BlockSeqEntry) }

// BlockSeqEntry wraps a Kind BlockSeqEntry node: the `-` token plus an
// optional nested block (absent for `- ` with nothing following).
type BlockSeqEntry struct{ *Tree }

func AsBlockSeqEntry(n Node) (BlockSeqEntry, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != BlockSeqEntry {
		return BlockSeqEntry{}, false
	}
	return BlockSeqEntry{t}, true
}

func (e BlockSeqEntry) Dash() (Node, bool) { return FirstChild(e, Minus) }
func (e BlockSeqEntry) Value() (Node, bool) {
	children := NonTrivia(e)
	if len(children) < 2 {
		return nil, false
	}
	return children[1], true
}

// BlockMap wraps a Kind BlockMap node: one or more BlockMapEntry children.
type BlockMap struct{ *Tree }

func AsBlockMap(n Node) (BlockMap, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != BlockMap {
		return BlockMap{}, false
	}
	return BlockMap{t}, true
}

func (m BlockMap) Entries() []Node { return AllChildren(m, BlockMapEntry) }

// BlockMapEntry wraps a Kind BlockMapEntry node: an optional `?`, a key, a
// `:`, and an optional value.
type BlockMapEntry struct{ *Tree }

func AsBlockMapEntry(n Node) (BlockMapEntry, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != BlockMapEntry {
		return BlockMapEntry{}, false
	}
	return BlockMapEntry{t}, true
}

func (e BlockMapEntry) Explicit() bool {
	_, ok := FirstChild(e, Question)
	return ok
}

func (e BlockMapEntry) Key() (Node, bool) { return FirstChild(e, BlockMapKey) }
func (e BlockMapEntry) Colon() (Node, bool) { return FirstChild(e, Colon) }
func (e BlockMapEntry) Value() (Node, bool) { return FirstChild(e, BlockMapValue) }

// BlockScalar wraps a Kind BlockScalar node: `|`/`>`, header tokens, and one
// BlockScalarText token holding the verbatim body.
type BlockScalar struct{ *Tree }

func AsBlockScalar(n Node) (BlockScalar, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != BlockScalar {
		return BlockScalar{}, false
	}
	return BlockScalar{t}, true
}

func (s BlockScalar) Style() (Node, bool) {
	if n, ok := FirstChild(s, Bar); ok {
		return n, true
	}
	return FirstChild(s, GreaterThan)
}

func (s BlockScalar) IndentIndicator() (Node, bool) { return FirstChild(s, IndentIndicator) }
func (s BlockScalar) Chomping() (Node, bool)        { return FirstChild(s, ChompingIndicator) }
func (s BlockScalar) Text() string {
	if tk, ok := FirstChild(s, BlockScalarText); ok {
		return tk.Text()
	}
	return ""
}

// Properties wraps a Kind Properties node: an anchor and/or a tag, in either
// order.
type Properties struct{ *Tree }

func AsProperties(n Node) (Properties, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != Properties {
		return Properties{}, false
	}
	return Properties{t}, true
}

func (p Properties) Anchor() (Node, bool) { return FirstChild(p, AnchorProperty) }
func (p Properties) Tag() (Node, bool)    { return FirstChild(p, TagProperty) }

// FlowSeq wraps a Kind FlowSeq node: `[`, entries, `]`.
type FlowSeq struct{ *Tree }

func AsFlowSeq(n Node) (FlowSeq, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != FlowSeq {
		return FlowSeq{}, false
	}
	return FlowSeq{t}, true
}

func (s FlowSeq) Open() (Node, bool)  { return FirstChild(s, LBracket) }
func (s FlowSeq) Close() (Node, bool) { return FirstChild(s, RBracket) }
func (s FlowSeq) Entries() (Node, bool) { return FirstChild(s, FlowSeqEntries) }

// FlowMap wraps a Kind FlowMap node: `{`, entries, `}`.
type FlowMap struct{ *Tree }

func AsFlowMap(n Node) (FlowMap, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != FlowMap {
		return FlowMap{}, false
	}
	return FlowMap{t}, true
}

func (m FlowMap) Open() (Node, bool)    { return FirstChild(m, LBrace) }
func (m FlowMap) Close() (Node, bool)   { return FirstChild(m, RBrace) }
func (m FlowMap) Entries() (Node, bool) { return FirstChild(m, FlowMapEntries) }

// FlowMapEntry wraps a Kind FlowMapEntry node, mirroring BlockMapEntry.
type FlowMapEntry struct{ *Tree }

func AsFlowMapEntry(n Node) (FlowMapEntry, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != FlowMapEntry {
		return FlowMapEntry{}, false
	}
	return FlowMapEntry{t}, true
}

func (e FlowMapEntry) Explicit() bool {
	_, ok := FirstChild(e, Question)
	return ok
}
func (e FlowMapEntry) Key() (Node, bool)   { return FirstChild(e, FlowMapKey) }
func (e FlowMapEntry) Colon() (Node, bool) { return FirstChild(e, Colon) }
func (e FlowMapEntry) Value() (Node, bool) { return FirstChild(e, FlowMapValue) }

// Alias wraps a Kind Alias node: `*` plus an anchor-name token.
type Alias struct{ *Tree }

func AsAlias(n Node) (Alias, bool) {
	t, ok := n.(*Tree)
	if !ok || t.kind != Alias {
		return Alias{}, false
	}
	return Alias{t}, true
}

func (a Alias) Name() (Node, bool) { return FirstChild(a, AnchorName) }
