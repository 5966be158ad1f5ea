// Package errors wraps parse failures as SyntaxError, mirroring the
// teacher's errors package: a msg/offset pair formatted through
// golang.org/x/xerrors for stack-trace support under "%+v", with a rendered
// source code frame (package internal/highlight) standing in for the
// teacher's colorized token dump.
package errors

import (
	"fmt"

	"github.com/fatih/color"
	"golang.org/x/xerrors"

	"github.com/prettyyaml/yamlfmt/internal/highlight"
)

// Colored controls whether SyntaxError.Error() ANSI-colors its code frame.
var Colored = true

// WithSourceCode controls whether SyntaxError.Error() includes a code frame
// at all, or just the bare message.
var WithSourceCode = true

// SyntaxError reports a malformed document: a message plus the exact byte
// offset into the source where parsing failed.
type SyntaxError struct {
	msg    string
	src    string
	offset int
	frame  xerrors.Frame
}

// NewSyntaxError constructs a SyntaxError for msg at offset into src.
func NewSyntaxError(src, msg string, offset int) *SyntaxError {
	return &SyntaxError{msg: msg, src: src, offset: offset, frame: xerrors.Caller(1)}
}

func (e *SyntaxError) Offset() int { return e.offset }

// Input returns the original source the parser was given, unmodified.
func (e *SyntaxError) Input() string { return e.src }

// Message returns the bare failure message, without position or code frame.
func (e *SyntaxError) Message() string { return e.msg }

// CodeFrame renders the source line the failure occurred on, with a caret
// under the offending column, via internal/highlight.
func (e *SyntaxError) CodeFrame() string {
	return highlight.Frame(e.src, e.offset, Colored)
}

func (e *SyntaxError) Error() string {
	line, col := lineCol(e.src, e.offset)
	msg := fmt.Sprintf("syntax error: [%d:%d] %s", line, col, e.msg)
	if Colored {
		msg = colorRed(msg)
	}
	if !WithSourceCode {
		return msg
	}
	return fmt.Sprintf("%s\n%s", msg, e.CodeFrame())
}

// FormatError implements xerrors.Formatter, printing a caller stack frame
// under "%+v".
func (e *SyntaxError) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}

func (e *SyntaxError) Format(f fmt.State, verb rune) {
	xerrors.FormatError(e, f, verb)
}

func lineCol(src string, offset int) (line, col int) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

func colorRed(s string) string {
	return color.New(color.FgHiRed).Sprint(s)
}
