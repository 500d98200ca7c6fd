package types

// PropertyKeyKind discriminates how a property is addressed.
type PropertyKeyKind int

const (
	// KeyName addresses a property by a fixed string name, e.g. `.length`.
	KeyName PropertyKeyKind = iota
	// KeyType addresses a property by a type-level key, e.g. a mapped
	// type's `[K in keyof T]` or a computed `[Symbol.iterator]`.
	KeyType
)

// PropertyKey is how a single property on an object or interface is
// addressed: either a fixed name or a type-level key.
type PropertyKey struct {
	Kind PropertyKeyKind
	Name string
	Type TypeID
}

// NewNamePropertyKey builds a PropertyKey addressed by a fixed name.
func NewNamePropertyKey(name string) PropertyKey {
	return PropertyKey{Kind: KeyName, Name: name}
}

// PropertyKeyFromType builds a PropertyKey addressed by a type, collapsing
// to a name key when t is a singleton string or number constant -- mirrors
// the reference implementation's `PropertyKey::from_type`, which folds
// literal-typed computed keys back into plain names so that `obj["x"]` and
// `obj.x` resolve identically.
func (s *Store) PropertyKeyFromType(t TypeID) PropertyKey {
	if d, ok := s.Get(t).(ConstantTypeDescriptor); ok {
		switch d.Value.Kind {
		case ConstantString:
			return NewNamePropertyKey(d.Value.Str)
		case ConstantNumber:
			return NewNamePropertyKey(formatNumber(d.Value.Number))
		}
	}
	return PropertyKey{Kind: KeyType, Type: t}
}

func (k PropertyKey) String() string {
	switch k.Kind {
	case KeyName:
		return k.Name
	default:
		return "[" + k.Type.String() + "]"
	}
}

// Publicity is a property's declared visibility.
type Publicity int

const (
	PublicityPublic Publicity = iota
	PublicityPrivate
	PublicityProtected
)

// PropertyEntry is a single member of an object or interface's property
// set: a key, the type it resolves to, its visibility, and whether it was
// declared optional (`foo?: T`).
type PropertyEntry struct {
	Key       PropertyKey
	Value     TypeID
	Publicity Publicity
	Optional  bool
	Readonly  bool
	At        Span
}

// Properties is an ordered, append-friendly property set. Order is
// preserved because it is observable: object literal spread and
// `Object.keys` both depend on declaration order, and the reference
// implementation preserves insertion order for the same reason.
type Properties struct {
	entries []PropertyEntry
	byName  map[string]int // name -> index into entries, KeyName only
}

// NewProperties builds an empty property set.
func NewProperties() Properties {
	return Properties{byName: make(map[string]int)}
}

// Append adds e to the set. A later Append with a KeyName key equal to an
// earlier one shadows it for Lookup, matching how a repeated property
// declaration in a later mapped-type pass overrides an earlier one, while
// leaving the original entry in Entries() for diagnostics that need to see
// the full declaration history.
func (p *Properties) Append(e PropertyEntry) {
	if p.byName == nil {
		p.byName = make(map[string]int)
	}
	if e.Key.Kind == KeyName {
		p.byName[e.Key.Name] = len(p.entries)
	}
	p.entries = append(p.entries, e)
}

// Lookup finds the current (most recently appended, shadowing-aware) entry
// for a named key.
func (p Properties) Lookup(name string) (PropertyEntry, bool) {
	idx, ok := p.byName[name]
	if !ok {
		return PropertyEntry{}, false
	}
	return p.entries[idx], true
}

// Entries returns the full, order-preserving declaration list.
func (p Properties) Entries() []PropertyEntry { return p.entries }

// Len reports the number of entries, including shadowed ones.
func (p Properties) Len() int { return len(p.entries) }
