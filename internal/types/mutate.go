package types

// This file holds the store's only in-place mutations. Every other
// constructor in this package treats a registered descriptor as
// permanent; these four exist solely to resolve the forward-declaration
// pattern -- an interface, alias, or generic parameter that was
// registered before its full definition was known (because something
// else needed to reference it first, e.g. a recursive type or a class
// referencing its own constructor) gets patched once the real definition
// is synthesised. Callers must not use these to "fix up" an arbitrary
// type after the fact; every call site should correspond to resolving one
// specific forward declaration.

// SetInferredConstraint narrows a PolyParameter's FixedTo in place. Used
// when a parameter was registered with a placeholder bound (typically
// TypeAny) before its declared or inferred type was known. Panics if ty is
// not a PolyParameter -- calling this on the wrong kind of type is a bug
// in the caller, not a condition to recover from.
func (s *Store) SetInferredConstraint(ty TypeID, constraint TypeID) {
	d, ok := s.descriptors[ty].(RootPolyTypeDescriptor)
	if !ok || d.Nature != PolyParameter {
		panic("types: SetInferredConstraint called on a non-parameter type")
	}
	d.FixedTo = constraint
	s.descriptors[ty] = d
	s.notify("set-inferred-constraint", ty, NullSpan)
}

// SetExtendsOnInterface patches the Extends clause of a previously
// registered interface, for the case where the interface and its
// supertype are declared in a mutually recursive pair and the supertype
// was not yet known at the point the interface itself had to be
// registered. It only overwrites an already-present Extends clause; an
// interface registered with HasExtends false has no supertype slot to
// patch, and calling this on one is a no-op, matching the reference
// implementation's guard.
func (s *Store) SetExtendsOnInterface(interfaceType, extends TypeID) {
	d, ok := s.descriptors[interfaceType].(InterfaceType)
	if !ok {
		panic("types: SetExtendsOnInterface called on a non-interface type")
	}
	if !d.HasExtends {
		return
	}
	d.Extends = extends
	s.descriptors[interfaceType] = d
	s.notify("set-extends-on-interface", interfaceType, NullSpan)
}

// UpdateAlias patches the Target of a previously registered alias, for a
// type alias whose right-hand side recursively mentions the alias's own
// name and so had to be registered with a placeholder target first.
func (s *Store) UpdateAlias(aliasType, target TypeID) {
	d, ok := s.descriptors[aliasType].(AliasType)
	if !ok {
		panic("types: UpdateAlias called on a non-alias type")
	}
	d.Target = target
	s.descriptors[aliasType] = d
	s.notify("update-alias", aliasType, NullSpan)
}

// ModifyInterfaceTypeParameterConstraint patches the Extends bound of a
// previously registered structure generic, mirroring UpdateAlias for the
// case where a generic parameter's constraint mentions a type declared
// after the parameter itself (e.g. `class Box<T extends Box<T>>`).
func (s *Store) ModifyInterfaceTypeParameterConstraint(generic, newConstraint TypeID) {
	d, ok := s.descriptors[generic].(RootPolyTypeDescriptor)
	if !ok || d.Nature != PolyStructureGeneric {
		panic("types: ModifyInterfaceTypeParameterConstraint called on a non-structure-generic type")
	}
	d.Extends = newConstraint
	s.descriptors[generic] = d
	s.notify("modify-interface-type-parameter-constraint", generic, NullSpan)
}

// UpdateGenericExtends is an alias for ModifyInterfaceTypeParameterConstraint:
// spec.md names this operation separately from
// modify_interface_type_parameter_constraint, but the reference
// implementation's update_generic_extends performs the identical patch.
func (s *Store) UpdateGenericExtends(generic, to TypeID) {
	s.ModifyInterfaceTypeParameterConstraint(generic, to)
}

// NewThisObject registers a fresh real object instance, used as the
// synthesized `this` binding inside a class constructor body before its
// property set is known.
func (s *Store) NewThisObject() TypeID {
	return s.Register(ObjectType{Nature: ObjectReal})
}
