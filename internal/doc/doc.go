// Package doc implements the small layout-document algebra described in
// spec.md §3.4 and the Wadler/Lindig-style rendering engine specified as its
// external collaborator in §6.3. No example repo in the reference corpus
// ships a standalone, importable generic document-layout renderer (the
// closest analogues are purpose-built line builders embedded in their own
// formatter packages, not libraries), so this renderer is built directly on
// the standard library - see DESIGN.md for that justification.
package doc

// Kind discriminates the Doc sum type's variants.
type Kind int

const (
	KindNil Kind = iota
	KindSpace
	KindHardLine
	KindEmptyLine
	KindLineOrSpace
	KindLineOrNil
	KindFlatOrBreak
	KindText
	KindList
	KindNest
	KindGroup
)

// Doc is an immutable layout document node.
type Doc struct {
	kind     Kind
	text     string
	n        int    // Nest indent width
	children []Doc  // List elements, or the single child of Nest/Group
	flat     *Doc   // FlatOrBreak flat alternative
	brk      *Doc   // FlatOrBreak break alternative
}

var (
	Nil       = Doc{kind: KindNil}
	Space     = Doc{kind: KindSpace}
	HardLine  = Doc{kind: KindHardLine}
	EmptyLine = Doc{kind: KindEmptyLine}
	LineOrSpace = Doc{kind: KindLineOrSpace}
	LineOrNil   = Doc{kind: KindLineOrNil}
)

// Kind reports d's variant, for callers that need to branch on shape (e.g.
// the printer deciding whether a computed separator forces a break).
func (d Doc) Kind() Kind { return d.kind }

func Text(s string) Doc { return Doc{kind: KindText, text: s} }

func List(children ...Doc) Doc { return Doc{kind: KindList, children: children} }

func Nest(n int, child Doc) Doc { return Doc{kind: KindNest, n: n, children: []Doc{child}} }

func Group(child Doc) Doc { return Doc{kind: KindGroup, children: []Doc{child}} }

func FlatOrBreak(flat, brk Doc) Doc { return Doc{kind: KindFlatOrBreak, flat: &flat, brk: &brk} }

// Concat is List with any Nil children dropped, for callers building a list
// incrementally and conditionally.
func Concat(parts ...Doc) Doc {
	out := make([]Doc, 0, len(parts))
	for _, p := range parts {
		if p.kind == KindNil || (p.kind == KindList && len(p.children) == 0) {
			continue
		}
		out = append(out, p)
	}
	return Doc{kind: KindList, children: out}
}

// Join interposes sep between each element of docs.
func Join(sep Doc, docs []Doc) Doc {
	if len(docs) == 0 {
		return Nil
	}
	out := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return Doc{kind: KindList, children: out}
}
