package types

import (
	"sort"
	"strconv"

	"github.com/tsforge/tscore/internal/jsregex"
)

// NewRegExp compiles pattern under flags and wraps it as a SpecialObject
// type, or returns an error for a malformed pattern or an unrecognized
// flag character. Constant folding against the compiled regex happens
// later, when it is actually called against an operand -- see
// ExecRegExp.
func (s *Store) NewRegExp(pattern, flags string) (TypeID, error) {
	re, err := jsregex.Compile(pattern, flags)
	if err != nil {
		return 0, err
	}
	return s.Register(SpecialObjectType{Kind: SpecialRegularExpression, RegExp: re}), nil
}

// RegExpOf returns the compiled pattern behind a SpecialRegularExpression
// type, if t is one.
func (s *Store) RegExpOf(t TypeID) (*jsregex.Regex, bool) {
	obj, ok := s.Get(t).(SpecialObjectType)
	if !ok || obj.Kind != SpecialRegularExpression {
		return nil, false
	}
	return obj.RegExp, true
}

// ExecRegExp evaluates `regexpType.exec(operandType)`. When the regex's
// flags are fully supported and operand is a known constant string, it
// runs the match concretely and returns a precise result-object type
// (concrete evaluation); otherwise it returns a symbolic result shaped
// like `RegExpExecArray | null` with string-typed group slots (symbolic
// evaluation). at is used as the source position for every synthesized
// property.
func (s *Store) ExecRegExp(regexpType, operand TypeID, at Span) TypeID {
	re, ok := s.RegExpOf(regexpType)
	if !ok {
		return TypeNull
	}

	if !re.FlagsUnsupported() {
		if c, ok := s.Get(operand).(ConstantTypeDescriptor); ok && c.Value.Kind == ConstantString {
			return s.execConstantRegExp(re, c.Value.Str, operand, at)
		}
	}
	return s.execSymbolicRegExp(re, at)
}

func (s *Store) execConstantRegExp(re *jsregex.Regex, pattern string, patternType TypeID, at Span) TypeID {
	match, found := re.Exec(pattern)
	if !found {
		return TypeNull
	}

	b := NewObjectBuilder()
	b.Property("input", patternType, at)
	b.Property("index", s.NewConstantType(NewNumberConstant(float64(match.Start))), at)

	for idx, g := range match.Groups {
		var v TypeID
		if g.Matched {
			v = s.NewConstantType(NewStringConstant(g.Value))
		} else {
			v = s.NewConstantType(UndefinedConstant)
		}
		b.Computed(NewNamePropertyKey(strconv.Itoa(idx)), v, at)
	}

	groupsBuilder := NewObjectBuilder()
	for _, name := range namedGroupsInOrder(re) {
		g := match.Groups[re.NamedGroupIndices()[name]]
		var v TypeID
		if g.Matched {
			v = s.NewConstantType(NewStringConstant(g.Value))
		} else {
			v = s.NewConstantType(UndefinedConstant)
		}
		groupsBuilder.Property(name, v, at)
	}
	groups := s.NewAnonymousInterfaceType(groupsBuilder, TypeNull, true)
	b.Property("groups", groups, at)
	b.Property("length", s.NewConstantType(NewNumberConstant(float64(re.GroupCount()))), at)

	return s.NewAnonymousInterfaceType(b, TypeArray, true)
}

func (s *Store) execSymbolicRegExp(re *jsregex.Regex, at Span) TypeID {
	b := NewObjectBuilder()
	b.Property("input", TypeString, at)
	b.Property("index", TypeNumber, at)

	for idx := 0; idx < re.GroupCount(); idx++ {
		b.Computed(NewNamePropertyKey(strconv.Itoa(idx)), TypeString, at)
	}

	groupsBuilder := NewObjectBuilder()
	for _, name := range namedGroupsInOrder(re) {
		groupsBuilder.Property(name, TypeString, at)
	}
	groups := s.NewAnonymousInterfaceType(groupsBuilder, TypeNull, true)
	b.Property("groups", groups, at)
	b.Property("length", s.NewConstantType(NewNumberConstant(float64(re.GroupCount()))), at)

	return s.NewOrType(s.NewAnonymousInterfaceType(b, TypeArray, true), TypeNull)
}

// namedGroupsInOrder returns re's named groups sorted by group index, so
// the `groups` object's properties come out in a stable order.
func namedGroupsInOrder(re *jsregex.Regex) []string {
	indices := re.NamedGroupIndices()
	names := make([]string, 0, len(indices))
	for name := range indices {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return indices[names[i]] < indices[names[j]] })
	return names
}
