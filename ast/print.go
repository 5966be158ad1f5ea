package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes a markdown-bulleted tree dump of n to w, one line per node and
// one per leaf token, indented by depth. It exists for debugging and tests,
// not for production output - the printer package builds formatted YAML, not
// this.
func Dump(w io.Writer, n Node) error {
	return dump(w, 0, n)
}

func dump(w io.Writer, depth int, n Node) error {
	indent := strings.Repeat("    ", depth)
	switch v := n.(type) {
	case *Token:
		quoted := strconv.Quote(v.text)
		_, err := fmt.Fprintf(w, "%s- *%s* `%s`\n", indent, v.kind, quoted[1:len(quoted)-1])
		return err
	case *Tree:
		if _, err := fmt.Fprintf(w, "%s- *%s*\n", indent, v.kind); err != nil {
			return err
		}
		for _, c := range v.children {
			if err := dump(w, depth+1, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sdump is Dump rendered to a string, for tests that want to assert against a
// tree shape instead of formatted output.
func Sdump(n Node) string {
	var b strings.Builder
	_ = Dump(&b, n)
	return b.String()
}
