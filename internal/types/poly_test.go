package types

import "testing"

func TestNewParameterWrapsOrdinaryConstraint(t *testing.T) {
	s := NewStore()
	param := s.NewParameter(TypeNumber, VariableID(1), "x")

	d, ok := s.Get(param).(RootPolyTypeDescriptor)
	if !ok || d.Nature != PolyParameter || d.FixedTo != TypeNumber {
		t.Fatalf("expected a Parameter root fixed to TypeNumber, got %#v", s.Get(param))
	}
	if name, ok := s.ParameterName(VariableID(1)); !ok || name != "x" {
		t.Errorf("ParameterName(1) = %q, %v, want \"x\", true", name, ok)
	}
}

func TestNewParameterPassesThroughFunctionGeneric(t *testing.T) {
	s := NewStore()
	generic := s.NewFunctionGeneric("T", TypeAny)

	param := s.NewParameter(generic, VariableID(2), "x")

	if param != generic {
		t.Errorf("a parameter annotated with its own function generic should stay that generic, got a new id %v vs %v", param, generic)
	}
}

func TestNewOpenTypeShortCircuitsPrimitives(t *testing.T) {
	s := NewStore()
	if got := s.NewOpenType(TypeBoolean); got != TypeOpenBoolean {
		t.Errorf("NewOpenType(Boolean) = %v, want TypeOpenBoolean", got)
	}
	if got := s.NewOpenType(TypeNumber); got != TypeOpenNumber {
		t.Errorf("NewOpenType(Number) = %v, want TypeOpenNumber", got)
	}
	if got := s.NewOpenType(TypeString); got == TypeOpenBoolean || got == TypeOpenNumber {
		t.Errorf("NewOpenType(String) should register a fresh open root, got %v", got)
	}
}

func TestNewNarrowedSimpleCase(t *testing.T) {
	s := NewStore()
	narrowed := s.NewNarrowed(TypeNumber, s.Not(TypeNull))

	d, ok := s.Get(narrowed).(NarrowedType)
	if !ok || d.From != TypeNumber {
		t.Fatalf("expected a fresh Narrowed over TypeNumber, got %#v", s.Get(narrowed))
	}
}

func TestNewNarrowedComposesNumericBounds(t *testing.T) {
	s := NewStore()
	gt := s.NewPartiallyAppliedGenerics(TypeGreaterThan, []GenericBinding{{Parameter: TypeGenericT, Argument: s.NewConstantType(NewNumberConstant(0)), At: NullSpan}})
	lt := s.NewPartiallyAppliedGenerics(TypeLessThan, []GenericBinding{{Parameter: TypeGenericT, Argument: s.NewConstantType(NewNumberConstant(10)), At: NullSpan}})

	firstNarrowing := s.NewNarrowed(TypeNumber, gt)
	secondNarrowing := s.NewNarrowed(firstNarrowing, lt)

	d, ok := s.Get(secondNarrowing).(NarrowedType)
	if !ok {
		t.Fatalf("expected a NarrowedType, got %#v", s.Get(secondNarrowing))
	}
	if d.From != TypeNumber {
		t.Errorf("chained narrowing should not nest, From = %v, want TypeNumber", d.From)
	}
	if _, ok := s.Get(d.NarrowedTo).(AndType); !ok {
		t.Errorf("expected the two numeric bounds to be intersected, got %#v", s.Get(d.NarrowedTo))
	}
}

func TestNewArrayType(t *testing.T) {
	s := NewStore()
	arr := s.NewArrayType(TypeString, NullSpan)

	d, ok := s.Get(arr).(PartiallyAppliedGenericsType)
	if !ok || d.On != TypeArray {
		t.Fatalf("expected an Array<string> instantiation, got %#v", s.Get(arr))
	}
	if len(d.Arguments) != 1 || d.Arguments[0].Argument != TypeString {
		t.Errorf("expected a single string argument, got %+v", d.Arguments)
	}
}
