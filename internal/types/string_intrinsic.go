package types

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
	titleCaser = cases.Title(language.Und, cases.NoLower)
)

// EvaluateStringIntrinsic applies one of the builtin case-conversion
// intrinsics (Uppercase/Lowercase/Capitalize/Uncapitalize) to a known
// constant string operand, returning the folded string and true. For an
// intrinsic id other than TypeUppercase, TypeLowercase, TypeCapitalize or
// TypeUncapitalize it returns "", false.
//
// Capitalize/Uncapitalize only touch the first rune, matching TypeScript's
// lib.es5.d.ts intrinsic semantics -- they are not full title-casing,
// which is why this reaches for cases.Title only as the capitalize
// building block and then reassembles the rest of the string untouched.
func (s *Store) EvaluateStringIntrinsic(intrinsic TypeID, operand string) (string, bool) {
	switch intrinsic {
	case TypeUppercase:
		return upperCaser.String(operand), true
	case TypeLowercase:
		return lowerCaser.String(operand), true
	case TypeCapitalize:
		return capitalizeFirst(operand, true), true
	case TypeUncapitalize:
		return capitalizeFirst(operand, false), true
	default:
		return "", false
	}
}

func capitalizeFirst(s string, upper bool) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	first := string(r[0])
	if upper {
		first = titleCaser.String(first)
	} else {
		first = strings.ToLower(first)
	}
	return first + string(r[1:])
}

// NewStringIntrinsicApplication applies a known constant-string operand
// against intrinsic and interns the folded result; falls back to a plain
// PartiallyAppliedGenerics instantiation (deferred evaluation) if operand
// is not a known constant string or intrinsic is not recognized.
func (s *Store) NewStringIntrinsicApplication(intrinsic, operand TypeID, at Span) TypeID {
	if c, ok := s.Get(operand).(ConstantTypeDescriptor); ok && c.Value.Kind == ConstantString {
		if folded, ok := s.EvaluateStringIntrinsic(intrinsic, c.Value.Str); ok {
			return s.NewConstantType(NewStringConstant(folded))
		}
	}
	return s.NewPartiallyAppliedGenerics(intrinsic, []GenericBinding{
		{Parameter: TypeStringGeneric, Argument: operand, At: at},
	})
}
