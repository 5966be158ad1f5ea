package parser

import "testing"

// losslessness is the core invariant of the whole tree design (spec.md §3):
// concatenating every token's text in depth-first order must reproduce the
// exact input, for any input that parses at all.
func TestParseIsLossless(t *testing.T) {
	cases := []string{
		"a: 1\n",
		"a: 1\nb: 2\n",
		"[1, 2, 3]\n",
		"{a: 1, b: 2}\n",
		"- 1\n- 2\n- 3\n",
		"a:\n  - 1\n  - 2\n",
		"a: \"hello\"\nb: 'world'\n",
		"a: |\n  line one\n  line two\n",
		"a: >\n  folded\n  text\n",
		"---\na: 1\n...\n",
		"# a comment\na: 1 # trailing\n",
		"key: &anchor value\nref: *anchor\n",
		"%YAML 1.2\n---\na: 1\n",
		"a: ? complex\n  : value\n",
	}
	for _, src := range cases {
		root, err := Parse(src)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", src, err)
			continue
		}
		if got := root.Text(); got != src {
			t.Errorf("Parse(%q).Text() = %q, want exact round trip", src, got)
		}
	}
}

func TestParseRejectsUnexpectedTrailingInput(t *testing.T) {
	_, err := Parse("a: 1\n]\n")
	if err == nil {
		t.Fatalf("expected error for unbalanced trailing input")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	root, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if root.Text() != "" {
		t.Fatalf("Text() = %q, want empty", root.Text())
	}
}
