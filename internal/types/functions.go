package types

// insertFunction records fn in the function table under its own id,
// overwriting any earlier placeholder registered at the same id -- the
// shared plumbing every New*FunctionType constructor below builds on.
func (s *Store) insertFunction(fn *FunctionDescriptor) {
	s.RegisterFunction(fn)
}

func newFunctionID(at Span) FunctionID {
	return NewFunctionID(at.Source, at.Start)
}

// NewFunctionTypeAnnotation registers a function *type* -- as written in an
// annotation position like `let f: (x: number) => string`, rather than a
// function *value* with a body -- and interns a bare FunctionReferenceType
// pointing at it, with no `this` binding attached. declaredAt seeds the
// FunctionID, following the reference implementation's convention of
// keying function identity on declaration site rather than a separate
// counter. Per the reference, a bare type annotation defaults to
// arrow-function behavior.
func (s *Store) NewFunctionTypeAnnotation(typeParams []TypeID, parameters []FunctionParameter, returnType TypeID, declaredAt Span) TypeID {
	id := newFunctionID(declaredAt)
	s.insertFunction(&FunctionDescriptor{
		ID:         id,
		Parameters: parameters,
		ReturnType: returnType,
		Effect:     EffectUnknown,
		Behavior:   BehaviorArrow,
		TypeParams: typeParams,
		DeclaredAt: declaredAt,
	})
	return s.Register(FunctionReferenceType{Function: id})
}

// NewFunctionType registers a function *value* with a synthesised body and
// interns it as a SpecialObject::Function, bound with ThisUnbound (an
// ordinary function's `this` is determined by its call site, not lexically
// captured the way an arrow's is).
func (s *Store) NewFunctionType(name string, parameters []FunctionParameter, returnType TypeID, effect FunctionEffect, behavior FunctionBehavior, declaredAt Span) TypeID {
	id := newFunctionID(declaredAt)
	s.insertFunction(&FunctionDescriptor{
		ID:         id,
		Name:       name,
		Parameters: parameters,
		ReturnType: returnType,
		Effect:     effect,
		Behavior:   behavior,
		DeclaredAt: declaredAt,
	})
	return s.Register(SpecialObjectType{Kind: SpecialFunction, Function: id, ThisBinding: ThisUnbound})
}

// NewHoistedFunctionType registers a function declaration before its body
// has been checked -- parameters and return type from the signature only --
// and interns a bare FunctionReferenceType with no `this` binding yet.
// This is the forward-declaration pattern: callers within the same scope
// can reference the function by id before synthesis reaches its body; once
// the body is checked, RegisterFunction is called again with the same id
// to fill in Effect and Behavior.
func (s *Store) NewHoistedFunctionType(name string, parameters []FunctionParameter, returnType TypeID, declaredAt Span) TypeID {
	id := newFunctionID(declaredAt)
	s.insertFunction(&FunctionDescriptor{
		ID:         id,
		Name:       name,
		Parameters: parameters,
		ReturnType: returnType,
		Effect:     EffectUnknown,
		Behavior:   BehaviorOrdinary,
		DeclaredAt: declaredAt,
	})
	return s.Register(FunctionReferenceType{Function: id})
}

// NewClassConstructorType registers a class's constructor function and
// interns it as a SpecialObject::Function bound with ThisUseParent, so
// that `this` inside the constructor body resolves to the instance the
// enclosing `new` expression is building.
func (s *Store) NewClassConstructorType(className string, parameters []FunctionParameter, instanceType TypeID, declaredAt Span) TypeID {
	id := newFunctionID(declaredAt)
	s.insertFunction(&FunctionDescriptor{
		ID:         id,
		Name:       className,
		Parameters: parameters,
		ThisType:   instanceType,
		HasThis:    true,
		ReturnType: instanceType,
		Effect:     EffectUnknown,
		Behavior:   BehaviorConstructor,
		DeclaredAt: declaredAt,
	})
	return s.Register(SpecialObjectType{Kind: SpecialFunction, Function: id, ThisBinding: ThisUseParent})
}
