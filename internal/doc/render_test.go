package doc

import "testing"

func opts(width int) Options {
	return Options{PrintWidth: width, IndentWidth: 2, LineBreak: "\n"}
}

func TestRenderGroupFitsFlat(t *testing.T) {
	d := Group(Concat(Text("["), LineOrNil, Text("1,"), LineOrSpace, Text("2"), LineOrNil, Text("]")))
	got := Render(d, opts(80))
	want := "[1, 2]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderGroupBreaksWhenTooWide(t *testing.T) {
	d := Group(Concat(
		Text("["),
		Nest(2, Concat(LineOrNil,
			Text("1,"), LineOrSpace,
			Text("2,"), LineOrSpace,
			Text("3"))),
		LineOrNil,
		Text("]"),
	))
	got := Render(d, opts(5))
	want := "[\n  1,\n  2,\n  3\n]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderHardLineAlwaysBreaks(t *testing.T) {
	d := Group(Concat(Text("a"), HardLine, Text("b")))
	got := Render(d, opts(80))
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyLineInsertsBlankLine(t *testing.T) {
	d := Concat(Text("a"), EmptyLine, Text("b"))
	got := Render(d, opts(80))
	want := "a\n\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderFlatOrBreak(t *testing.T) {
	trailing := FlatOrBreak(Nil, Text(","))
	flat := Group(Concat(Text("["), Text("1"), trailing, Text("]")))
	got := Render(flat, opts(80))
	if got != "[1]" {
		t.Fatalf("flat: got %q", got)
	}
	broken := Nest(2, Concat(HardLine, Text("1"), trailing))
	got = Render(broken, opts(80))
	want := "\n  1,"
	if got != want {
		t.Fatalf("broken: got %q, want %q", got, want)
	}
}

func TestRenderCRLF(t *testing.T) {
	o := Options{PrintWidth: 80, IndentWidth: 2, LineBreak: "\r\n"}
	got := Render(Concat(Text("a"), HardLine, Text("b")), o)
	if got != "a\r\nb" {
		t.Fatalf("got %q", got)
	}
}
