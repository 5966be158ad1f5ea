package yamlfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/printer"
)

func TestFormatSimpleMapping(t *testing.T) {
	got, err := Format([]byte("a: 1\n"), printer.DefaultOptions())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if string(got) != "a: 1\n" {
		t.Fatalf("Format() = %q, want %q", got, "a: 1\n")
	}
}

func TestFormatStripsBOM(t *testing.T) {
	src := append([]byte(bom), []byte("a: 1\n")...)
	got, err := Format(src, printer.DefaultOptions())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if strings.Contains(string(got), bom) {
		t.Fatalf("Format() kept BOM: %q", got)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	sources := []string{
		"a: 1\nb: 2\n",
		"[1, 2, 3]\n",
		"{a: 1, b: 2}\n",
		"- 1\n- 2\n- 3\n",
		"a:\n  - 1\n  - 2\n",
		"a: \"hello\"\nb: 'world'\n",
		"a: |\n  line one\n  line two\n",
	}
	opts := printer.DefaultOptions()
	for _, src := range sources {
		once, err := Format([]byte(src), opts)
		if err != nil {
			t.Errorf("Format(%q) error: %v", src, err)
			continue
		}
		twice, err := Format(once, opts)
		if err != nil {
			t.Errorf("Format(Format(%q)) error: %v", src, err)
			continue
		}
		if string(once) != string(twice) {
			t.Errorf("Format not idempotent for %q:\nfirst:  %q\nsecond: %q", src, once, twice)
		}
	}
}

// TestFormatBlockScalarPreservesPerLineIndent guards the seed scenario from
// spec.md §8 (case 8): each content line's own indentation must survive
// un-mangled so that stripping the block indent from every line lands on the
// same text, not a growing stagger.
func TestFormatBlockScalarPreservesPerLineIndent(t *testing.T) {
	got, err := Format([]byte("|\n  line1\n  line2\n"), printer.DefaultOptions())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if want := "|\n  line1\n  line2\n"; string(got) != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

// TestFormatPreservesNonTriviaStructure checks the round-trip law from
// spec.md §8: parse(format(s)) and parse(s) must carry the same non-trivia
// token kinds in the same shape. cmp.Diff gives a readable tree diff instead
// of a single "not equal" failure when that law breaks.
func TestFormatPreservesNonTriviaStructure(t *testing.T) {
	sources := []string{
		"a: 1\nb: 2\n",
		"[1, 2, 3]\n",
		"{a: 1, b: 2}\n",
		"a:\n  - 1\n  - 2\n",
		"a: \"hello\"\nb: \"world\"\n",
		"|\n  line1\n  line2\n",
	}
	opts := printer.DefaultOptions()
	for _, src := range sources {
		before, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", src, err)
		}
		formatted, err := Format([]byte(src), opts)
		if err != nil {
			t.Fatalf("Format(%q) error: %v", src, err)
		}
		after, err := Parse(formatted)
		if err != nil {
			t.Fatalf("Parse(Format(%q)) error: %v", src, err)
		}
		if diff := cmp.Diff(nonTriviaKinds(before), nonTriviaKinds(after)); diff != "" {
			t.Errorf("non-trivia structure changed for %q (-before +after):\n%s", src, diff)
		}
	}
}

func nonTriviaKinds(n ast.Node) []ast.Kind {
	kinds := []ast.Kind{n.Kind()}
	for _, c := range ast.NonTrivia(n) {
		kinds = append(kinds, nonTriviaKinds(c)...)
	}
	return kinds
}

func TestFormatRejectsInvalidOptions(t *testing.T) {
	opts := printer.DefaultOptions()
	opts.PrintWidth = 0
	if _, err := Format([]byte("a: 1\n"), opts); err == nil {
		t.Fatalf("expected validation error for PrintWidth=0")
	}
}

func TestFormatReturnsSyntaxErrorOnBadInput(t *testing.T) {
	_, err := Format([]byte("a: 1\n]\n"), printer.DefaultOptions())
	if err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}
