package types

import (
	"math"
	"testing"
)

func TestNewConstantTypeReusesBuiltins(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name string
		c    Constant
		want TypeID
	}{
		{"empty string", NewStringConstant(""), TypeEmptyString},
		{"zero", NewNumberConstant(0), TypeZero},
		{"negative zero", NewNumberConstant(math.Copysign(0, -1)), TypeZero},
		{"one", NewNumberConstant(1), TypeOne},
		{"neg infinity", NewNumberConstant(math.Inf(-1)), TypeNegInfinity},
		{"infinity", NewNumberConstant(math.Inf(1)), TypeInfinity},
		{"nan", NewNumberConstant(math.NaN()), TypeNaN},
		{"true", NewBoolConstant(true), TypeTrue},
		{"false", NewBoolConstant(false), TypeFalse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.NewConstantType(tt.c); got != tt.want {
				t.Errorf("NewConstantType(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestNewConstantTypeFreshForOtherValues(t *testing.T) {
	s := NewStore()
	before := s.Count()

	five := s.NewConstantType(NewNumberConstant(5))
	if int(five) != before {
		t.Errorf("expected a fresh registration at %d, got %v", before, five)
	}

	// Unlike the short-circuit table, repeated non-builtin constants are not
	// deduplicated by this layer -- that is left to whatever caller wants
	// constant-folding, matching the reference implementation's lack of a
	// general constant cache.
	again := s.NewConstantType(NewNumberConstant(5))
	if again == five {
		t.Errorf("expected a second registration of the same non-builtin constant to get a fresh id")
	}
}

func TestConstantString(t *testing.T) {
	tests := []struct {
		name string
		c    Constant
		want string
	}{
		{"bool true", NewBoolConstant(true), "true"},
		{"string", NewStringConstant("hi"), `"hi"`},
		{"nan", NewNumberConstant(math.NaN()), "NaN"},
		{"infinity", NewNumberConstant(math.Inf(1)), "Infinity"},
		{"neg infinity", NewNumberConstant(math.Inf(-1)), "-Infinity"},
		{"undefined", UndefinedConstant, "undefined"},
		{"symbol", NewSymbolConstant("iterator"), "Symbol(iterator)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
