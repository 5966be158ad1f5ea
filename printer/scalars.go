package printer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prettyyaml/yamlfmt/ast"
	"github.com/prettyyaml/yamlfmt/internal/doc"
)

// printQuotedScalar applies the quote-rewriting policy table from spec.md
// §4.6. Multi-line quoted scalars are passed through verbatim (besides
// trailing-whitespace trimming): rewriting their quote style would require
// reproducing YAML's line-folding rules exactly, which buys little for the
// rare multi-line quoted scalar in practice.
func (c *ctx) printQuotedScalar(tok *ast.Token) doc.Doc {
	raw := tok.Text()
	isDouble := tok.Kind() == ast.DoubleQuotedScalar
	if strings.ContainsAny(raw, "\n\r") {
		return doc.Text(trimLineRight(raw, c.opts.TrimTrailingWhitespaces))
	}
	inner := raw[1 : len(raw)-1]
	var value string
	if isDouble {
		value = decodeDoubleQuoted(inner)
	} else {
		value = decodeSingleQuoted(inner)
	}
	useDouble := isDouble
	switch c.opts.Quotes {
	case ForceDouble, PreferDouble:
		useDouble = true
	case ForceSingle, PreferSingle:
		useDouble = false
	}
	if !useDouble && needsDoubleOnly(value) {
		useDouble = true
	}
	if useDouble {
		return doc.Text(encodeDoubleQuoted(value))
	}
	return doc.Text(encodeSingleQuoted(value))
}

// needsDoubleOnly reports whether value contains a character that a
// single-quoted scalar cannot represent (single-quoted allows only '' as an
// escape; every other control character requires a double-quoted \x/\u
// escape).
func needsDoubleOnly(value string) bool {
	for _, r := range value {
		if r == '\t' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func decodeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "''", "'")
}

func encodeSingleQuoted(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func decodeDoubleQuoted(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i := 0; i < len(r); i++ {
		if r[i] != '\\' || i == len(r)-1 {
			b.WriteRune(r[i])
			continue
		}
		i++
		switch r[i] {
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteRune('\a')
		case 'b':
			b.WriteRune('\b')
		case 't', '\t':
			b.WriteRune('\t')
		case 'n':
			b.WriteRune('\n')
		case 'v':
			b.WriteRune('\v')
		case 'f':
			b.WriteRune('\f')
		case 'r':
			b.WriteRune('\r')
		case 'e':
			b.WriteRune(0x1b)
		case ' ':
			b.WriteRune(' ')
		case '"':
			b.WriteRune('"')
		case '/':
			b.WriteRune('/')
		case '\\':
			b.WriteRune('\\')
		case 'N':
			b.WriteRune(0x85)
		case '_':
			b.WriteRune(0xA0)
		case 'L':
			b.WriteRune(0x2028)
		case 'P':
			b.WriteRune(0x2029)
		case 'x':
			if i+2 < len(r) {
				if v, err := strconv.ParseInt(string(r[i+1:i+3]), 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 2
				}
			}
		case 'u':
			if i+4 < len(r) {
				if v, err := strconv.ParseInt(string(r[i+1:i+5]), 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
				}
			}
		case 'U':
			if i+8 < len(r) {
				if v, err := strconv.ParseInt(string(r[i+1:i+9]), 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 8
				}
			}
		default:
			b.WriteRune(r[i])
		}
	}
	return b.String()
}

func encodeDoubleQuoted(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case 0x1b:
			b.WriteString(`\e`)
		case 0x85:
			b.WriteString(`\N`)
		case 0xA0:
			b.WriteString(`\_`)
		case 0x2028:
			b.WriteString(`\L`)
		case 0x2029:
			b.WriteString(`\P`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// printPlainScalar reflows a plain scalar per its source line breaks: a
// single break folds to a breakable space, a run of blank lines folds to one
// preserved empty line, matching YAML's plain-scalar folding rule (spec.md
// §3.2 "Block Scalar").
func (c *ctx) printPlainScalar(tok *ast.Token) doc.Doc {
	raw := tok.Text()
	if !strings.ContainsAny(raw, "\n\r") {
		return doc.Text(c.maybeTrimTrailingZero(raw))
	}
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	var parts []doc.Doc
	blank := 0
	first := true
	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			blank++
			continue
		}
		if !first {
			if blank > 0 {
				parts = append(parts, doc.EmptyLine)
			} else {
				parts = append(parts, doc.LineOrSpace)
			}
		}
		parts = append(parts, doc.Text(trimmed))
		first = false
		blank = 0
	}
	return doc.Group(doc.Concat(parts...))
}

var floatPattern = regexp.MustCompile(`^[+-]?(\d+\.\d+|\.\d+)([eE][+-]?\d+)?$`)

func (c *ctx) maybeTrimTrailingZero(s string) string {
	if !c.opts.TrimTrailingZero || !floatPattern.MatchString(s) {
		return s
	}
	dot := strings.IndexByte(s, '.')
	exp := s[len(s):]
	mantissa := s
	if e := strings.IndexAny(s, "eE"); e >= 0 {
		mantissa, exp = s[:e], s[e:]
	}
	mantissa = strings.TrimRight(mantissa, "0")
	mantissa = strings.TrimSuffix(mantissa, ".")
	if strings.IndexByte(mantissa, '.') < 0 && dot >= 0 {
		// an all-zero fractional part collapses to the bare integer part
	}
	return mantissa + exp
}

// printBlockScalar re-derives and re-emits a literal/folded block scalar's
// body, per spec.md §4.5 "Block scalars" and the content-indent derivation
// rule supplemented from the original implementation: with no explicit
// indent indicator, content indent is the smallest leading whitespace width
// among the non-empty body lines.
func (c *ctx) printBlockScalar(s ast.BlockScalar) doc.Doc {
	styleTok, _ := s.Style()
	header := styleTok.Text()
	indicatorTok, hasIndicator := s.IndentIndicator()
	chompTok, hasChomp := s.Chomping()
	chomp := ""
	if hasChomp {
		chomp = chompTok.Text()
	}
	body := s.Text()
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	content, trailingBlanks := splitTrailingBlankLines(lines)
	indent := 0
	if hasIndicator {
		indent, _ = strconv.Atoi(indicatorTok.Text())
	} else {
		indent = detectBlockIndent(content)
	}
	contentLines := make([]string, len(content))
	for i, l := range content {
		if len(l) >= indent {
			contentLines[i] = l[indent:]
		}
		if c.opts.TrimTrailingWhitespaces {
			contentLines[i] = strings.TrimRight(contentLines[i], " \t")
		}
	}
	if hasIndicator {
		header += indicatorTok.Text()
	}
	header += chomp

	var parts []doc.Doc
	for i, l := range contentLines {
		if i > 0 {
			parts = append(parts, doc.HardLine)
		}
		parts = append(parts, doc.Text(l))
	}
	if chomp == "+" {
		for range trailingBlanks {
			parts = append(parts, doc.HardLine, doc.Nil)
		}
	}
	return doc.Concat(doc.Text(header), doc.Nest(c.opts.IndentWidth, doc.Concat(doc.HardLine, doc.Concat(parts...))))
}

// splitTrailingBlankLines removes a trailing run of blank lines from lines
// (an artifact of how the body was split on "\n") and reports how many were
// removed, so chomping can decide whether to restore them.
func splitTrailingBlankLines(lines []string) ([]string, int) {
	end := len(lines)
	for end > 0 && strings.TrimRight(lines[end-1], " \t\r") == "" {
		end--
	}
	return lines[:end], len(lines) - end
}

func detectBlockIndent(lines []string) int {
	best := -1
	for _, l := range lines {
		if strings.TrimRight(l, " \t\r") == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if best == -1 || n < best {
			best = n
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
