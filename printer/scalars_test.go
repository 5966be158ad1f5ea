package printer

import (
	"testing"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/doc"
)

func render(d doc.Doc) string {
	return doc.Render(d, doc.Options{PrintWidth: 80, IndentWidth: 2, LineBreak: "\n"})
}

func TestPrintQuotedScalarPreferDouble(t *testing.T) {
	c := &ctx{opts: DefaultOptions()}
	tok := ast.NewToken(ast.SingleQuotedScalar, "'it''s fine'")
	got := render(c.printNode(tok))
	if want := `"it's fine"`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintQuotedScalarPreferSingle(t *testing.T) {
	o := DefaultOptions()
	o.Quotes = PreferSingle
	c := &ctx{opts: o}
	tok := ast.NewToken(ast.DoubleQuotedScalar, `"plain text"`)
	got := render(c.printNode(tok))
	if want := "'plain text'"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintQuotedScalarControlCharForcesDouble(t *testing.T) {
	o := DefaultOptions()
	o.Quotes = PreferSingle
	c := &ctx{opts: o}
	tok := ast.NewToken(ast.DoubleQuotedScalar, `"bad\x01char"`)
	got := render(c.printNode(tok))
	if want := `"bad\x01char"`;len(got) < 2 || got[0] != '"' {
		t.Fatalf("got %q, want a double-quoted scalar (control char forces double quotes, not %q)", got, want)
	}
}

func TestPrintPlainScalarSingleLine(t *testing.T) {
	c := &ctx{opts: DefaultOptions()}
	tok := ast.NewToken(ast.PlainScalar, "hello")
	got := render(c.printNode(tok))
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestTrimTrailingZero(t *testing.T) {
	o := DefaultOptions()
	o.TrimTrailingZero = true
	c := &ctx{opts: o}
	cases := map[string]string{
		"1.500": "1.5",
		"2.00":  "2",
		"3.14":  "3.14",
		"42":    "42",
	}
	for in, want := range cases {
		got := c.maybeTrimTrailingZero(in)
		if got != want {
			t.Errorf("maybeTrimTrailingZero(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDoubleQuoteEscapeRoundTrip(t *testing.T) {
	value := "line\twith\ttabs and \"quotes\" and \\backslash\\"
	encoded := encodeDoubleQuoted(value)
	decoded := decodeDoubleQuoted(encoded[1 : len(encoded)-1])
	if decoded != value {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, value)
	}
}
