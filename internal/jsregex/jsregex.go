// Package jsregex compiles and executes JavaScript-syntax regular
// expressions on behalf of the type store's constant partial-evaluator.
//
// Go's standard library regexp package is RE2-based and cannot express the
// JS regex features this language surface needs -- native `(?<name>...)`
// named groups, backreferences, and lookaround -- and silently mis-parses
// or rejects them. This package is built on
// github.com/dlclark/regexp2, a backtracking, .NET-syntax engine that
// supports all of those natively and is already part of this corpus's
// dependency graph.
package jsregex

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// SupportedFlags are flag characters that change match semantics and are
// fully honored by Regex.Exec.
const SupportedFlags = "imsuv"

// UnsupportedButRecognizedFlags are flag characters that are parsed without
// error but force a compiled Regex into symbolic-only evaluation, because
// they depend on state or produce output this store does not model
// (stateful iteration for 'g'/'y', substring index tables for 'd').
const UnsupportedButRecognizedFlags = "dgy"

// Regex is a compiled JavaScript-syntax regular expression plus the
// bookkeeping the store's partial-evaluator needs: the canonical source
// text, the total group count (capturing groups + 1, per JS's
// `RegExp.exec` result shape), the name-to-index map for named groups, and
// whether any recognized-but-unsupported flag was present.
type Regex struct {
	source            string
	re                *regexp2.Regexp
	groupCount        int
	namedGroupIndices map[string]int
	flagsUnsupported  bool
}

// Compile parses pattern under flags (a string of flag characters, possibly
// empty) and builds a Regex. An unrecognized flag character fails the
// compile with an *UnknownFlagError rather than a panic; a malformed
// pattern fails with a wrapped regexp2 error. A caller that treats an
// unknown flag differently from a parse failure can tell them apart with a
// type assertion on *UnknownFlagError.
func Compile(pattern, flags string) (*Regex, error) {
	source := canonicalSource(pattern, flags)

	var opts regexp2.RegexOptions
	flagsUnsupported := false

	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u', 'v':
			opts |= regexp2.Unicode
		case 'd', 'g', 'y':
			flagsUnsupported = true
		default:
			return nil, &UnknownFlagError{Flag: f}
		}
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression %q: %w", pattern, err)
	}

	groupNames := re.GetGroupNames()
	namedGroupIndices := make(map[string]int)
	groupCount := 1 // implicit whole-match group
	for _, name := range groupNames {
		if name == "0" {
			continue
		}
		num := re.GroupNumberFromName(name)
		if num+1 > groupCount {
			groupCount = num + 1
		}
		if _, isPositional := isAllDigits(name); !isPositional {
			namedGroupIndices[name] = num
		}
	}

	return &Regex{
		source:            source,
		re:                re,
		groupCount:        groupCount,
		namedGroupIndices: namedGroupIndices,
		flagsUnsupported:  flagsUnsupported,
	}, nil
}

// UnknownFlagError is the fatal condition raised by an unrecognized regex
// flag character (spec.md §4.5: "any other -> fatal condition").
type UnknownFlagError struct {
	Flag rune
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown regular expression flag: %q", e.Flag)
}

func isAllDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func canonicalSource(pattern, flags string) string {
	return "/" + pattern + "/" + flags
}

// Source returns the canonical `/pattern/flags` serialization.
func (r *Regex) Source() string { return r.source }

// FlagsUnsupported reports whether a recognized-but-unsupported flag
// ('d', 'g', or 'y') was present at compile time, forcing symbolic-only
// evaluation.
func (r *Regex) FlagsUnsupported() bool { return r.flagsUnsupported }

// GroupCount returns the total number of groups, including the implicit
// whole-match group at index 0 (i.e. capturing groups + 1).
func (r *Regex) GroupCount() int { return r.groupCount }

// NamedGroupIndices returns the name -> positional index map for named
// capturing groups.
func (r *Regex) NamedGroupIndices() map[string]int {
	return r.namedGroupIndices
}

// Match is the result of a successful Exec: the overall match start offset
// and one Group per positional capture (index 0 is the whole match).
type Match struct {
	Start  int
	Groups []Group // len == GroupCount()
}

// Group is a single (possibly unmatched) capturing group result.
type Group struct {
	Matched bool
	Value   string
}

// NamedGroup returns the Group for a named capture, if that name exists.
func (m *Match) NamedGroup(r *Regex, name string) (Group, bool) {
	idx, ok := r.namedGroupIndices[name]
	if !ok || idx >= len(m.Groups) {
		return Group{}, false
	}
	return m.Groups[idx], true
}

// Exec runs the regex against s and returns the first match, following Go
// net convention: (match, found).
func (r *Regex) Exec(s string) (*Match, bool) {
	m, err := r.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, false
	}

	groups := make([]Group, r.groupCount)
	groups[0] = Group{Matched: true, Value: m.String()}

	for i := 1; i < r.groupCount; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			groups[i] = Group{Matched: false}
			continue
		}
		groups[i] = Group{Matched: true, Value: g.String()}
	}

	return &Match{Start: m.Index, Groups: groups}, true
}

// DeserializeSource splits a canonical `/pattern/flags` string back into
// its pattern and flags parts, per spec.md §6: "splittable on the rightmost
// '/'". Deserializing a previously valid source is expected to always
// succeed; callers treat a failure here as fatal.
func DeserializeSource(source string) (pattern, flags string, err error) {
	if len(source) < 2 || source[0] != '/' {
		return "", "", fmt.Errorf("malformed regex source: %q", source)
	}
	rest := source[1:]
	idx := strings.LastIndexByte(rest, '/')
	if idx < 0 {
		return "", "", fmt.Errorf("malformed regex source: %q", source)
	}
	return rest[:idx], rest[idx+1:], nil
}
