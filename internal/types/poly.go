package types

// NewParameter registers a function parameter's poly-root, recording its
// source name for diagnostics. If constraint already refers to a
// function-generic root, it is returned unchanged rather than wrapped in a
// nested Parameter root -- a generic parameter used directly as another
// parameter's type annotation (`function f<T>(x: T)`) should stay exactly
// `T`, not become "a parameter fixed to T".
func (s *Store) NewParameter(constraint TypeID, variable VariableID, name string) TypeID {
	s.NameParameter(variable, name)
	if d, ok := s.Get(constraint).(RootPolyTypeDescriptor); ok && d.Nature == PolyFunctionGeneric {
		return constraint
	}
	return s.Register(RootPolyTypeDescriptor{Nature: PolyParameter, FixedTo: constraint, VariableID: variable})
}

// NewFreeVariable registers a poly-root standing in for a captured
// variable from an enclosing scope.
func (s *Store) NewFreeVariable(reference RootReference, basedOn TypeID) TypeID {
	return s.Register(RootPolyTypeDescriptor{Nature: PolyFreeVariable, Reference: reference, BasedOn: basedOn})
}

// NewFunctionGeneric registers a function-scoped generic type parameter.
func (s *Store) NewFunctionGeneric(name string, extends TypeID) TypeID {
	return s.Register(RootPolyTypeDescriptor{Nature: PolyFunctionGeneric, Name: name, Extends: extends})
}

// NewStructureGeneric registers a class/interface-scoped generic type
// parameter.
func (s *Store) NewStructureGeneric(name string, extends TypeID) TypeID {
	return s.Register(RootPolyTypeDescriptor{Nature: PolyStructureGeneric, Name: name, Extends: extends})
}

// NewMappedGeneric registers a mapped-type mechanism generic, such as the
// builtin NonOptional/Writable modifiers.
func (s *Store) NewMappedGeneric(name string, extends TypeID) TypeID {
	return s.Register(RootPolyTypeDescriptor{Nature: PolyMappedGeneric, Name: name, Extends: extends})
}

// NewOpenType registers an "open" poly-root: a type that behaves like base
// for assignability but is not narrowable to a specific constant, used for
// parameters annotated with a primitive that should not pick up a literal
// narrowing (e.g. a `number` parameter should not become typed `5` just
// because the caller passed 5).
func (s *Store) NewOpenType(base TypeID) TypeID {
	switch base {
	case TypeBoolean:
		return TypeOpenBoolean
	case TypeNumber:
		return TypeOpenNumber
	default:
		return s.Register(RootPolyTypeDescriptor{Nature: PolyOpen, Base: base})
	}
}

// NewErrorType registers a poly-root marking a position where synthesis
// failed; fallbackTo is what later inference should treat the position as
// (almost always TypeAny) so that a single error does not cascade into
// unrelated false positives.
func (s *Store) NewErrorType(fallbackTo TypeID) TypeID {
	return s.Register(RootPolyTypeDescriptor{Nature: PolyError, Base: fallbackTo})
}

// NewNarrowed registers a flow-refined view of from, narrowed to
// narrowedTo, collapsing chained narrowings rather than nesting them:
//
//   - if from is itself a Narrowed{innerFrom, innerTo}, the new Narrowed
//     unwraps to innerFrom, treating innerTo as the bound a fresh
//     narrowing composes against (so narrowing a narrowing never nests
//     more than one level deep);
//   - if narrowedTo is itself a partially-applied numeric refinement
//     (GreaterThan/LessThan/MultipleOf/Not), it is combined with the
//     existing bound via intersection rather than replacing it outright,
//     so `x > 0` followed by `x < 10` narrows to both bounds at once
//     instead of discarding the first.
func (s *Store) NewNarrowed(from, narrowedTo TypeID) TypeID {
	existingBound := TypeID(0)
	hasExistingBound := false

	if n, ok := s.Get(from).(NarrowedType); ok {
		existingBound = n.NarrowedTo
		hasExistingBound = true
		from = n.From
	}

	if hasExistingBound && s.isNumericRefinement(narrowedTo) {
		narrowedTo = s.NewAndType(existingBound, narrowedTo)
	}

	return s.Register(NarrowedType{From: from, NarrowedTo: narrowedTo})
}

// isNumericRefinement reports whether t is an application of one of the
// GreaterThan/LessThan/MultipleOf/Not numeric-refinement intrinsics.
func (s *Store) isNumericRefinement(t TypeID) bool {
	p, ok := s.Get(t).(PartiallyAppliedGenericsType)
	if !ok {
		return false
	}
	switch p.On {
	case TypeGreaterThan, TypeLessThan, TypeMultipleOf, TypeNot:
		return true
	default:
		return false
	}
}

// NewPartiallyAppliedGenerics instantiates a generic prototype (a Class or
// Interface with Parameters) with concrete arguments, e.g. Array<number>.
// len(arguments) must equal the number of parameters the prototype
// declares; the caller is expected to have already checked arity.
func (s *Store) NewPartiallyAppliedGenerics(on TypeID, arguments []GenericBinding) TypeID {
	return s.Register(PartiallyAppliedGenericsType{On: on, Arguments: arguments})
}

// NewArrayType instantiates Array<element>.
func (s *Store) NewArrayType(element TypeID, at Span) TypeID {
	return s.NewPartiallyAppliedGenerics(TypeArray, []GenericBinding{
		{Parameter: TypeGenericT, Argument: element, At: at},
	})
}
