// Package highlight renders a source code frame around a byte offset, the
// way package errors' SyntaxError presents where a document failed to
// parse. It is adapted from the teacher's token-colorizing printer: that
// version walked a doubly-linked mutable token chain and recolored tokens by
// type; this one has no token chain to walk (the lossless tree carries no
// position data), so it works directly off the raw source text and a byte
// offset, and only highlights the error line rather than every token kind.
package highlight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Frame renders up to three lines of context before and after the line
// containing offset, a caret line pointing at the exact column, and (when
// colored) bold white line numbers with the error line and caret in red, matching the
// teacher's PrintErrorToken layout.
func Frame(src string, offset int, colored bool) string {
	line, col, lineStart, lineEnd := locate(src, offset)
	lines := strings.Split(src, "\n")
	lineIdx := line - 1
	minLine := line - 3
	if minLine < 1 {
		minLine = 1
	}
	maxLine := line + 3
	if maxLine > len(lines) {
		maxLine = len(lines)
	}

	lineNumFmt := func(n int) string {
		marker := "  "
		if n == line {
			marker = "> "
		}
		text := fmt.Sprintf("%s%2d | ", marker, n)
		if colored {
			return color.New(color.Bold, color.FgHiWhite).Sprint(text)
		}
		return text
	}

	var b strings.Builder
	for n := minLine; n <= maxLine; n++ {
		text := lines[n-1]
		if n == line && colored {
			text = color.New(color.FgHiRed).Sprint(text)
		}
		fmt.Fprintf(&b, "%s%s\n", lineNumFmt(n), text)
		if n == line {
			prefix := len(fmt.Sprintf("  %2d | ", n))
			caret := strings.Repeat(" ", prefix+col-1) + "^"
			if colored {
				caret = color.New(color.Bold, color.FgHiRed).Sprint(caret)
			}
			b.WriteString(caret)
			b.WriteByte('\n')
		}
	}
	_ = lineIdx
	_ = lineStart
	_ = lineEnd
	return strings.TrimRight(b.String(), "\n")
}

// locate converts a byte offset into a 1-based line/column pair plus the
// offsets bounding that line.
func locate(src string, offset int) (line, col, lineStart, lineEnd int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	lineStart = 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd = strings.IndexByte(src[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += lineStart
	}
	col = offset - lineStart + 1
	return line, col, lineStart, lineEnd
}
