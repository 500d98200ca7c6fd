package types

// ObjectBuilder accumulates PropertyEntry values for an object type literal
// or an interface body before the finished Properties set is interned,
// mirroring how the reference implementation synthesises one property at
// a time as it walks an object literal's members.
type ObjectBuilder struct {
	props Properties
}

// NewObjectBuilder starts an empty builder.
func NewObjectBuilder() *ObjectBuilder {
	b := &ObjectBuilder{props: NewProperties()}
	return b
}

// Property adds a named, required, public property.
func (b *ObjectBuilder) Property(name string, value TypeID, at Span) *ObjectBuilder {
	b.props.Append(PropertyEntry{Key: NewNamePropertyKey(name), Value: value, At: at})
	return b
}

// OptionalProperty adds a named, optional, public property (`name?: T`).
func (b *ObjectBuilder) OptionalProperty(name string, value TypeID, at Span) *ObjectBuilder {
	b.props.Append(PropertyEntry{Key: NewNamePropertyKey(name), Value: value, Optional: true, At: at})
	return b
}

// Method adds a property whose value is a function reference, with the
// publicity a class method body declared.
func (b *ObjectBuilder) Method(name string, fn TypeID, publicity Publicity, at Span) *ObjectBuilder {
	b.props.Append(PropertyEntry{Key: NewNamePropertyKey(name), Value: fn, Publicity: publicity, At: at})
	return b
}

// Computed adds a property addressed by a type-level key, e.g. a
// `[Symbol.iterator]` member.
func (b *ObjectBuilder) Computed(key PropertyKey, value TypeID, at Span) *ObjectBuilder {
	b.props.Append(PropertyEntry{Key: key, Value: value, At: at})
	return b
}

// NewObjectType interns the accumulated properties as a real object instance
// (Nature: ObjectReal) and returns its TypeID.
func (s *Store) NewObjectType(b *ObjectBuilder) TypeID {
	return s.Register(ObjectType{Nature: ObjectReal, Properties: b.props})
}

// NewAnonymousInterfaceType interns the accumulated properties as an
// anonymous annotation -- the type of an inline object literal annotation
// like `{ x: number, y: number }` -- rather than a named, nominal
// interface. prototype is the type anonymous-object member access falls
// back to when a lookup misses (usually TypeObject); pass TypeObject,
// false for "no explicit prototype".
func (s *Store) NewAnonymousInterfaceType(b *ObjectBuilder, prototype TypeID, hasPrototype bool) TypeID {
	return s.Register(ObjectType{
		Nature:     ObjectAnonymousAnnotation,
		Prototype:  prototype,
		HasProto:   hasPrototype,
		Properties: b.props,
	})
}

// NewInterfaceType registers a nominal interface declaration.
func (s *Store) NewInterfaceType(name string, parameters []TypeID, extends TypeID, hasExtends bool) TypeID {
	return s.Register(InterfaceType{Name: name, Parameters: parameters, Extends: extends, HasExtends: hasExtends})
}

// NewClassType registers a nominal class declaration (the class's own
// type, not its constructor function -- see NewClassConstructorType for
// the latter).
func (s *Store) NewClassType(name string, parameters []TypeID) TypeID {
	return s.Register(ClassType{Name: name, Parameters: parameters})
}

// NewAliasType registers a transparent type alias.
func (s *Store) NewAliasType(name string, target TypeID, parameters []TypeID) TypeID {
	return s.Register(AliasType{Name: name, Target: target, Parameters: parameters})
}
