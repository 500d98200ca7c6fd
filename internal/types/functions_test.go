package types

import "testing"

func TestNewFunctionTypeAnnotationIsArrowBehavior(t *testing.T) {
	s := NewStore()
	at := Span{Source: 1, Start: 10, End: 30}

	ref := s.NewFunctionTypeAnnotation(nil, []FunctionParameter{{Name: "x", Type: TypeNumber}}, TypeString, at)

	d, ok := s.Get(ref).(FunctionReferenceType)
	if !ok {
		t.Fatalf("expected a FunctionReferenceType, got %T", s.Get(ref))
	}
	fn, ok := s.Function(d.Function)
	if !ok {
		t.Fatal("expected the function to be registered")
	}
	if fn.Behavior != BehaviorArrow {
		t.Errorf("a bare type annotation should default to arrow behavior, got %v", fn.Behavior)
	}
	if fn.ReturnType != TypeString {
		t.Errorf("ReturnType = %v, want TypeString", fn.ReturnType)
	}
}

func TestNewFunctionTypeBindsThisUnbound(t *testing.T) {
	s := NewStore()
	at := Span{Source: 1, Start: 0, End: 20}

	fnType := s.NewFunctionType("greet", []FunctionParameter{{Name: "name", Type: TypeString}}, TypeString, EffectSideEffectFree, BehaviorOrdinary, at)

	obj, ok := s.Get(fnType).(SpecialObjectType)
	if !ok || obj.Kind != SpecialFunction {
		t.Fatalf("expected a SpecialObjectType function, got %#v", s.Get(fnType))
	}
	if obj.ThisBinding != ThisUnbound {
		t.Errorf("ThisBinding = %v, want ThisUnbound", obj.ThisBinding)
	}
	fn, _ := s.Function(obj.Function)
	if fn.Name != "greet" || fn.Effect != EffectSideEffectFree {
		t.Errorf("unexpected function descriptor: %+v", fn)
	}
}

func TestNewHoistedFunctionTypeThenFilledIn(t *testing.T) {
	s := NewStore()
	at := Span{Source: 2, Start: 5, End: 5}

	ref := s.NewHoistedFunctionType("later", []FunctionParameter{{Name: "n", Type: TypeNumber}}, TypeVoid, at)
	d := s.Get(ref).(FunctionReferenceType)

	fn, _ := s.Function(d.Function)
	if fn.Behavior != BehaviorOrdinary || fn.Effect != EffectUnknown {
		t.Errorf("hoisted forward declaration should start Ordinary/Unknown, got %+v", fn)
	}

	s.insertFunction(&FunctionDescriptor{
		ID:         d.Function,
		Name:       "later",
		Parameters: fn.Parameters,
		ReturnType: fn.ReturnType,
		Effect:     EffectConstant,
		Behavior:   BehaviorOrdinary,
		DeclaredAt: at,
	})

	filled, _ := s.Function(d.Function)
	if filled.Effect != EffectConstant {
		t.Errorf("expected re-registration under the same id to update the table, got %+v", filled)
	}
}

func TestNewClassConstructorTypeBindsThisUseParent(t *testing.T) {
	s := NewStore()
	at := Span{Source: 3, Start: 0, End: 40}

	instance := s.NewInterfaceType("Point", nil, NoExtends, false)
	ctor := s.NewClassConstructorType("Point", []FunctionParameter{{Name: "x", Type: TypeNumber}, {Name: "y", Type: TypeNumber}}, instance, at)

	obj, ok := s.Get(ctor).(SpecialObjectType)
	if !ok || obj.Kind != SpecialFunction {
		t.Fatalf("expected a SpecialObjectType function, got %#v", s.Get(ctor))
	}
	if obj.ThisBinding != ThisUseParent {
		t.Errorf("ThisBinding = %v, want ThisUseParent", obj.ThisBinding)
	}
	fn, _ := s.Function(obj.Function)
	if fn.Behavior != BehaviorConstructor || fn.ReturnType != instance || !fn.HasThis || fn.ThisType != instance {
		t.Errorf("unexpected constructor descriptor: %+v", fn)
	}
}
