package errors

import (
	"strings"
	"testing"
)

func TestSyntaxErrorAccessors(t *testing.T) {
	src := "a: [1, 2\n"
	err := NewSyntaxError(src, "unexpected end of flow sequence", 8)

	if got := err.Input(); got != src {
		t.Fatalf("Input() = %q, want %q", got, src)
	}
	if got := err.Message(); got != "unexpected end of flow sequence" {
		t.Fatalf("Message() = %q", got)
	}
	if got := err.Offset(); got != 8 {
		t.Fatalf("Offset() = %d, want 8", got)
	}
	if frame := err.CodeFrame(); !strings.Contains(frame, "a: [1, 2") {
		t.Fatalf("CodeFrame() = %q, want it to contain the source line", frame)
	}
}

func TestSyntaxErrorStringCombinesAllParts(t *testing.T) {
	old := Colored
	Colored = false
	defer func() { Colored = old }()

	err := NewSyntaxError("a: [1, 2\n", "unexpected end of flow sequence", 8)
	msg := err.Error()
	if !strings.Contains(msg, err.Message()) {
		t.Fatalf("Error() %q does not contain Message() %q", msg, err.Message())
	}
	if !strings.Contains(msg, err.CodeFrame()) {
		t.Fatalf("Error() %q does not contain CodeFrame()", msg)
	}
}
