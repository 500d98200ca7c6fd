package types

// UnimplementedErrorType is the sentinel an indexed-access lookup resolves
// to when the environment cannot produce a pure logical projection for a
// property. It reuses TypeError (the same poly-root the store itself
// starts with) rather than minting a distinct builtin, matching how the
// reference implementation treats "unimplemented" and "synthesis error"
// as the same recoverable-failure shape.
const UnimplementedErrorType = TypeError

// LogicalKind discriminates the shapes a property-unbound lookup can
// return. The store only ever acts on LogicalPure; every other shape
// (conditional logic across a union of possible receivers, a logical AND
// of multiple candidate properties, etc.) is something only a full
// checker's environment can resolve, so the store traces and falls back.
type LogicalKind int

const (
	LogicalPure LogicalKind = iota
	LogicalOther
)

// Logical is the result of Environment.GetPropertyUnbound: either a pure,
// immediately-usable property value, or some other shape the store does
// not attempt to interpret.
type Logical struct {
	Kind  LogicalKind
	Value TypeID // meaningful only when Kind == LogicalPure
}

// AsGetType converts a LogicalPure value into the TypeID a property read
// observes. For a pure logical this is just the carried value -- there is
// no further unwrapping needed at the store layer; a full checker's
// environment is responsible for resolving getters, optional chaining,
// and so on before it ever returns Pure.
func (l Logical) AsGetType() TypeID {
	return l.Value
}

// PropertyLookupKey is the (publicity, key, position) triple a property
// lookup is addressed by.
type PropertyLookupKey struct {
	Publicity Publicity
	Key       PropertyKey
	At        Span
}

// Environment is the minimal surface the store needs from a full checker's
// scope/environment type to resolve an indexed access it cannot decide on
// its own. A real checker's environment implements many more methods;
// this interface names only the one the store calls through.
type Environment interface {
	// GetPropertyUnbound resolves a property access against indexee
	// (optionally parameterized by genericArgs) without binding it to a
	// receiver value. isStrict controls whether a missing property is an
	// error or an absent-logical.
	GetPropertyUnbound(indexee TypeID, genericArgs []GenericBinding, key PropertyLookupKey, isStrict bool) (Logical, error)
}

// IsPolymorphic reports whether t carries an unresolved generic
// constraint -- a poly-root, a deferred constructor result, or a narrowed
// view of one -- as opposed to a concrete, fully-resolved type. Indexed
// access on a polymorphic indexee must stay deferred rather than ask the
// environment for a property that does not exist on any single concrete
// type yet.
func (s *Store) IsPolymorphic(t TypeID) bool {
	switch d := s.Get(t).(type) {
	case RootPolyTypeDescriptor:
		return true
	case ConstructorType:
		return true
	case NarrowedType:
		return s.IsPolymorphic(d.From)
	default:
		return false
	}
}

// NewPropertyOnTypeAnnotation resolves `indexee[indexer]` as written in a
// type annotation position. If indexee is polymorphic, the projection is
// left symbolic: a deferred Constructor::Property with Result=TypeAny is
// interned so later substitution can re-resolve it once indexee is
// concrete. Otherwise env is asked for a pure logical projection; any
// other shape (including a lookup error) traces a notification and
// resolves to UnimplementedErrorType.
func (s *Store) NewPropertyOnTypeAnnotation(indexee, indexer TypeID, env Environment, at Span) TypeID {
	under := s.PropertyKeyFromType(indexer)

	if s.IsPolymorphic(indexee) {
		return s.Register(ConstructorType{
			Kind:   ConstructorProperty,
			On:     indexee,
			Under:  under,
			Result: TypeAny,
			Mode:   AccessFromTypeAnnotation,
		})
	}

	logical, err := env.GetPropertyUnbound(indexee, nil, PropertyLookupKey{Key: under, At: at}, true)
	if err != nil || logical.Kind != LogicalPure {
		s.notify("unresolved-indexed-access", indexee, at)
		return UnimplementedErrorType
	}
	return logical.AsGetType()
}
