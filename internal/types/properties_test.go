package types

import "testing"

func TestPropertiesAppendAndLookup(t *testing.T) {
	p := NewProperties()
	p.Append(PropertyEntry{Key: NewNamePropertyKey("x"), Value: TypeNumber})
	p.Append(PropertyEntry{Key: NewNamePropertyKey("y"), Value: TypeString})

	x, ok := p.Lookup("x")
	if !ok || x.Value != TypeNumber {
		t.Errorf("Lookup(x) = %+v, ok=%v", x, ok)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if _, ok := p.Lookup("z"); ok {
		t.Error("Lookup(z) should miss")
	}
}

func TestPropertiesShadowing(t *testing.T) {
	p := NewProperties()
	p.Append(PropertyEntry{Key: NewNamePropertyKey("x"), Value: TypeNumber})
	p.Append(PropertyEntry{Key: NewNamePropertyKey("x"), Value: TypeString})

	x, ok := p.Lookup("x")
	if !ok || x.Value != TypeString {
		t.Errorf("Lookup should return the most recent declaration, got %+v", x)
	}
	if p.Len() != 2 {
		t.Errorf("both declarations should remain in Entries(), Len() = %d", p.Len())
	}
}

func TestPropertyKeyFromTypeFoldsLiterals(t *testing.T) {
	s := NewStore()

	strLit := s.NewConstantType(NewStringConstant("hello"))
	key := s.PropertyKeyFromType(strLit)
	if key.Kind != KeyName || key.Name != "hello" {
		t.Errorf("string literal key should fold to a name key, got %+v", key)
	}

	numLit := s.NewConstantType(NewNumberConstant(3))
	key = s.PropertyKeyFromType(numLit)
	if key.Kind != KeyName || key.Name != "3" {
		t.Errorf("number literal key should fold to a name key, got %+v", key)
	}

	key = s.PropertyKeyFromType(TypeString)
	if key.Kind != KeyType {
		t.Errorf("a non-constant type should stay a type key, got %+v", key)
	}
}
