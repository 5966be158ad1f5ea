package yamltestsuite

import (
	"testing"

	"github.com/prettyyaml/yamlfmt/parser"
)

// TestFixturesRoundTrip exercises every fixture directory's in.yaml (when any
// are checked out alongside this package) against the parser, asserting the
// core losslessness invariant holds project-wide, not just on the small
// handwritten cases in parser/parser_test.go.
func TestFixturesRoundTrip(t *testing.T) {
	suites, err := TestSuites()
	if err != nil {
		t.Fatalf("TestSuites() error: %v", err)
	}
	if len(suites) == 0 {
		t.Skip("no yaml-test-suite fixtures checked out under testdata/yaml-test-suite")
	}
	for _, s := range suites {
		if s.Error {
			continue
		}
		root, err := parser.Parse(string(s.InYAML))
		if err != nil {
			continue // not every fixture is in this grammar's supported subset
		}
		if got := root.Text(); got != string(s.InYAML) {
			t.Errorf("%s: lossless round trip failed", s.Name)
		}
	}
}
