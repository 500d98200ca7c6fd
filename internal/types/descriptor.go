package types

import "github.com/tsforge/tscore/internal/jsregex"

// Descriptor is the tagged-variant payload a TypeID resolves to. Go has no
// closed sum type, so each variant is its own struct and Descriptor is the
// marker interface that makes the set closed by convention (only types in
// this file implement it). Store.Get returns a Descriptor; callers type
// switch on the concrete type to inspect it.
type Descriptor interface {
	descriptor()
}

// InterfaceType is a nominal interface: a name, optional type parameters,
// and an optional supertype it extends.
type InterfaceType struct {
	Name       string
	Parameters []TypeID // nil if not generic
	Extends    TypeID   // NoExtends if the interface declares no supertype
	HasExtends bool
}

// NoExtends is the sentinel meaning "this interface/class has no declared
// supertype" -- distinct from TypeID(0), which is a legitimate builtin id.
const NoExtends TypeID = MaxTypeID

func (InterfaceType) descriptor() {}

// ClassType is a nominal class: a name plus optional type parameters.
type ClassType struct {
	Name       string
	Parameters []TypeID
}

func (ClassType) descriptor() {}

// AliasType is a transparent alias: referencing it is referencing Target.
type AliasType struct {
	Name       string
	Target     TypeID
	Parameters []TypeID
}

func (AliasType) descriptor() {}

// ConstantTypeDescriptor wraps a single Constant value as a singleton type.
type ConstantTypeDescriptor struct {
	Value Constant
}

func (ConstantTypeDescriptor) descriptor() {}

// OrType is a union of two types. Unions of more than two members are
// represented as a right-leaning chain of OrType (see NewOrType).
type OrType struct {
	Left, Right TypeID
}

func (OrType) descriptor() {}

// AndType is an intersection of two types.
type AndType struct {
	Left, Right TypeID
}

func (AndType) descriptor() {}

// ObjectNature distinguishes a real (runtime) object from an anonymous
// annotation carrying only a property set, as produced by object type
// literals and by the regex partial-evaluator.
type ObjectNature int

const (
	ObjectReal ObjectNature = iota
	ObjectAnonymousAnnotation
)

// ObjectType is an object type: either a real object instance marker, or an
// anonymous type annotation carrying a Prototype and a Properties set.
type ObjectType struct {
	Nature     ObjectNature
	Prototype  TypeID // meaningful only when Nature == ObjectAnonymousAnnotation
	HasProto   bool
	Properties Properties
}

func (ObjectType) descriptor() {}

// SpecialObjectKind discriminates the built-in distinguished object kinds.
type SpecialObjectKind int

const (
	SpecialNull SpecialObjectKind = iota
	SpecialFunction
	SpecialRegularExpression
)

// ThisBinding describes how `this` resolves inside a SpecialFunction value.
type ThisBinding int

const (
	ThisUnbound ThisBinding = iota
	ThisUseParent
)

// SpecialObjectType is a built-in object kind that is not a plain class
// instance: null, a function value (with its `this` binding), or a
// compiled regular expression.
type SpecialObjectType struct {
	Kind        SpecialObjectKind
	Function    FunctionID  // meaningful when Kind == SpecialFunction
	ThisBinding ThisBinding // meaningful when Kind == SpecialFunction
	RegExp      *jsregex.Regex
}

func (SpecialObjectType) descriptor() {}

// FunctionReferenceType is an unapplied function type: a pointer to a
// function descriptor in the store's function table without a `this`
// binding attached.
type FunctionReferenceType struct {
	Function FunctionID
}

func (FunctionReferenceType) descriptor() {}

// PolyNature discriminates the role a polymorphic root plays.
type PolyNature int

const (
	PolyParameter PolyNature = iota
	PolyFreeVariable
	PolyStructureGeneric
	PolyFunctionGeneric
	PolyMappedGeneric
	PolyOpen
	PolyError
)

// RootReference identifies what a free-variable poly-root refers back to.
type RootReference int

const (
	RootReferenceThis RootReference = iota
	RootReferenceOther
)

// RootPolyTypeDescriptor is a polymorphic root: the only origin of
// polymorphism in the store. Which fields are meaningful depends on
// Nature.
type RootPolyTypeDescriptor struct {
	Nature PolyNature

	// PolyParameter
	FixedTo    TypeID
	VariableID VariableID

	// PolyFreeVariable
	Reference RootReference
	BasedOn   TypeID

	// PolyStructureGeneric / PolyFunctionGeneric / PolyMappedGeneric
	Name    string
	Extends TypeID

	// PolyOpen / PolyError
	Base TypeID
}

func (RootPolyTypeDescriptor) descriptor() {}

// PartiallyAppliedGenericsType binds a prototype's generic parameters to
// concrete argument types, e.g. Array<number>.
type PartiallyAppliedGenericsType struct {
	On        TypeID
	Arguments []GenericBinding
}

// GenericBinding pairs a generic parameter id with the argument bound to it
// and the source span of that binding (for diagnostics).
type GenericBinding struct {
	Parameter TypeID
	Argument  TypeID
	At        Span
}

func (PartiallyAppliedGenericsType) descriptor() {}

// ConstructorKind discriminates the derived symbolic type sub-variants.
type ConstructorKind int

const (
	ConstructorConditionalResult ConstructorKind = iota
	ConstructorProperty
	ConstructorKeyOf
	ConstructorTypeExtends
)

// AccessMode discriminates why a Property constructor was synthesized.
type AccessMode int

const (
	AccessFromTypeAnnotation AccessMode = iota
	AccessFromExpression
)

// ConstructorType is a derived symbolic type: a conditional result, a
// deferred property projection, a key-of, or a type-extends check.
// Which fields apply depends on Kind.
type ConstructorType struct {
	Kind ConstructorKind

	// ConstructorConditionalResult
	Condition      TypeID
	TruthyResult   TypeID
	OtherwiseResult TypeID
	ResultUnion    TypeID

	// ConstructorProperty
	On     TypeID
	Under  PropertyKey
	Result TypeID
	Mode   AccessMode

	// ConstructorKeyOf
	KeyOfOperand TypeID

	// ConstructorTypeExtends
	Item    TypeID
	Extends TypeID
}

func (ConstructorType) descriptor() {}

// NarrowedType is a flow-refined view of a base type: it carries both the
// original type and the narrowed-to refinement.
type NarrowedType struct {
	From       TypeID
	NarrowedTo TypeID
}

func (NarrowedType) descriptor() {}
