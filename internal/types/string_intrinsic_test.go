package types

import "testing"

func TestEvaluateStringIntrinsic(t *testing.T) {
	tests := []struct {
		name      string
		intrinsic TypeID
		operand   string
		want      string
	}{
		{"uppercase", TypeUppercase, "hello", "HELLO"},
		{"lowercase", TypeLowercase, "HELLO", "hello"},
		{"capitalize", TypeCapitalize, "hello world", "Hello world"},
		{"uncapitalize", TypeUncapitalize, "Hello World", "hello World"},
		{"capitalize empty", TypeCapitalize, "", ""},
	}

	s := NewStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.EvaluateStringIntrinsic(tt.intrinsic, tt.operand)
			if !ok {
				t.Fatalf("EvaluateStringIntrinsic returned ok=false")
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateStringIntrinsicUnknownKind(t *testing.T) {
	s := NewStore()
	if _, ok := s.EvaluateStringIntrinsic(TypeString, "x"); ok {
		t.Error("expected ok=false for a non-intrinsic TypeID")
	}
}

func TestNewStringIntrinsicApplicationFoldsConstant(t *testing.T) {
	s := NewStore()
	operand := s.NewConstantType(NewStringConstant("world"))

	result := s.NewStringIntrinsicApplication(TypeUppercase, operand, NullSpan)
	c, ok := s.Get(result).(ConstantTypeDescriptor)
	if !ok || c.Value.Str != "WORLD" {
		t.Errorf("expected folded constant WORLD, got %#v", s.Get(result))
	}
}

func TestNewStringIntrinsicApplicationStaysSymbolic(t *testing.T) {
	s := NewStore()

	result := s.NewStringIntrinsicApplication(TypeUppercase, TypeString, NullSpan)
	applied, ok := s.Get(result).(PartiallyAppliedGenericsType)
	if !ok {
		t.Fatalf("expected a PartiallyAppliedGenericsType, got %T", s.Get(result))
	}
	if applied.On != TypeUppercase {
		t.Errorf("On = %v, want TypeUppercase", applied.On)
	}
}
