package types

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestBuiltinTableShape snapshots the rendered form of every builtin,
// catching accidental reordering or renaming of the fixed sequence that
// TestNewStoreBuiltinCount's count check alone would not.
func TestBuiltinTableShape(t *testing.T) {
	s := NewStore()

	rendered := make([]string, 0, s.Count())
	for i := 0; i < s.Count(); i++ {
		rendered = append(rendered, s.Render(TypeID(i)))
	}

	snaps.MatchSnapshot(t, "builtin_table", rendered)
}

func TestRegexMatchObjectShape(t *testing.T) {
	s := NewStore()

	re, err := s.NewRegExp(`(?<word>\w+)\s(?<num>\d+)`, "")
	if err != nil {
		t.Fatalf("NewRegExp: %v", err)
	}
	operand := s.NewConstantType(NewStringConstant("item 42"))
	result := s.ExecRegExp(re, operand, NullSpan)

	snaps.MatchSnapshot(t, "regex_match_object", s.Render(result))
}
