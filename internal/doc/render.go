package doc

import "strings"

// Options configures the rendering engine per spec.md §6.3.
type Options struct {
	PrintWidth  int
	IndentWidth int
	LineBreak   string // "\n" or "\r\n"
}

type mode int

const (
	flatMode mode = iota
	breakMode
)

type item struct {
	indent int
	mode   mode
	d      Doc
}

// Render renders d to text under opts, implementing the classic Wadler/
// Lindig group-fitting algorithm: a Group is rendered flat if its content
// fits within PrintWidth from the current column (considering what follows
// it up to the next guaranteed line break), otherwise broken.
func Render(d Doc, opts Options) string {
	var out strings.Builder
	col := 0
	stack := []item{{indent: 0, mode: breakMode, d: d}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch it.d.kind {
		case KindNil:
		case KindText:
			out.WriteString(it.d.text)
			col += len([]rune(it.d.text))
		case KindSpace:
			out.WriteByte(' ')
			col++
		case KindList:
			for i := len(it.d.children) - 1; i >= 0; i-- {
				stack = append(stack, item{it.indent, it.mode, it.d.children[i]})
			}
		case KindNest:
			stack = append(stack, item{it.indent + it.d.n, it.mode, it.d.children[0]})
		case KindGroup:
			child := it.d.children[0]
			candidate := item{it.indent, flatMode, child}
			if it.mode == flatMode || fits(opts.PrintWidth-col, candidate, stack) {
				stack = append(stack, candidate)
			} else {
				stack = append(stack, item{it.indent, breakMode, child})
			}
		case KindFlatOrBreak:
			if it.mode == flatMode {
				stack = append(stack, item{it.indent, it.mode, *it.d.flat})
			} else {
				stack = append(stack, item{it.indent, it.mode, *it.d.brk})
			}
		case KindLineOrSpace:
			if it.mode == flatMode {
				out.WriteByte(' ')
				col++
			} else {
				writeBreak(&out, opts, it.indent)
				col = it.indent
			}
		case KindLineOrNil:
			if it.mode == breakMode {
				writeBreak(&out, opts, it.indent)
				col = it.indent
			}
		case KindHardLine:
			writeBreak(&out, opts, it.indent)
			col = it.indent
		case KindEmptyLine:
			writeBreak(&out, opts, 0)
			writeBreak(&out, opts, it.indent)
			col = it.indent
		}
	}
	return out.String()
}

func writeBreak(out *strings.Builder, opts Options, indent int) {
	lb := opts.LineBreak
	if lb == "" {
		lb = "\n"
	}
	out.WriteString(lb)
	if indent > 0 {
		out.WriteString(strings.Repeat(" ", indent))
	}
}

// fits reports whether rendering first flat, followed by whatever is next on
// rest (in rest's own modes), stays within w columns up to the next
// guaranteed line break (a hard line, an empty line, or a line-or-* that
// actually breaks because its enclosing group already chose break mode).
func fits(w int, first item, rest []item) bool {
	work := make([]item, 0, len(rest)+1)
	work = append(work, rest...)
	work = append(work, first)
	for w >= 0 {
		if len(work) == 0 {
			return true
		}
		it := work[len(work)-1]
		work = work[:len(work)-1]
		switch it.d.kind {
		case KindNil:
		case KindText:
			w -= len([]rune(it.d.text))
		case KindSpace:
			w--
		case KindList:
			for i := len(it.d.children) - 1; i >= 0; i-- {
				work = append(work, item{it.indent, it.mode, it.d.children[i]})
			}
		case KindNest:
			work = append(work, item{it.indent + it.d.n, it.mode, it.d.children[0]})
		case KindGroup:
			work = append(work, item{it.indent, flatMode, it.d.children[0]})
		case KindFlatOrBreak:
			if it.mode == flatMode {
				work = append(work, item{it.indent, it.mode, *it.d.flat})
			} else {
				work = append(work, item{it.indent, it.mode, *it.d.brk})
			}
		case KindLineOrSpace:
			if it.mode == flatMode {
				w--
			} else {
				return true
			}
		case KindLineOrNil:
			if it.mode == breakMode {
				return true
			}
		case KindHardLine, KindEmptyLine:
			return true
		}
	}
	return false
}
