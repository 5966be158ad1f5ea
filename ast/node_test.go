package ast

import "testing"

func TestTextConcatenatesDepthFirst(t *testing.T) {
	tree := NewTree(BlockMap,
		NewTree(BlockMapEntry,
			NewTree(BlockMapKey, NewToken(PlainScalar, "a")),
			NewToken(Colon, ":"),
			NewToken(Whitespace, " "),
			NewTree(BlockMapValue, NewToken(PlainScalar, "1")),
		),
	)
	if got, want := tree.Text(), "a: 1"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestNonTriviaSkipsWhitespaceAndComments(t *testing.T) {
	tree := NewTree(BlockSeq,
		NewToken(Whitespace, "  "),
		NewToken(Comment, "# hi"),
		NewTree(BlockSeqEntry, NewToken(Minus, "-")),
	)
	got := NonTrivia(tree)
	if len(got) != 1 || got[0].Kind() != BlockSeqEntry {
		t.Fatalf("NonTrivia() = %v, want single BlockSeqEntry", got)
	}
}

func TestHasNewlineBefore(t *testing.T) {
	a := NewToken(PlainScalar, "a")
	ws := NewToken(Whitespace, "\n  ")
	b := NewToken(PlainScalar, "b")
	tree := NewTree(BlockMap, a, ws, b)
	if !HasNewlineBefore(tree, 2) {
		t.Fatalf("expected newline before index 2")
	}
	if HasNewlineBefore(tree, 0) {
		t.Fatalf("index 0 has no predecessor")
	}
}

func TestAsBlockMapEntryAccessors(t *testing.T) {
	key := NewTree(BlockMapKey, NewToken(PlainScalar, "a"))
	val := NewTree(BlockMapValue, NewToken(PlainScalar, "1"))
	entry := NewTree(BlockMapEntry, key, NewToken(Colon, ":"), val)

	e, ok := AsBlockMapEntry(entry)
	if !ok {
		t.Fatalf("AsBlockMapEntry failed")
	}
	if e.Explicit() {
		t.Fatalf("entry has no '?' token, should not be explicit")
	}
	k, ok := e.Key()
	if !ok || k.Text() != "a" {
		t.Fatalf("Key() = %v, %v", k, ok)
	}
	v, ok := e.Value()
	if !ok || v.Text() != "1" {
		t.Fatalf("Value() = %v, %v", v, ok)
	}
}

func TestIndexOf(t *testing.T) {
	a := NewToken(PlainScalar, "a")
	b := NewToken(PlainScalar, "b")
	tree := NewTree(BlockMap, a, b)
	if IndexOf(tree, b) != 1 {
		t.Fatalf("IndexOf(b) = %d, want 1", IndexOf(tree, b))
	}
	if IndexOf(tree, NewToken(PlainScalar, "c")) != -1 {
		t.Fatalf("expected -1 for non-member node")
	}
}
