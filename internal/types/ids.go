// Package types implements the type universe: a uniquely-identified store
// of types, the algebraic constructors over them (union, intersection,
// conditional, generic application, property projection, narrowing), and
// the symbolic representation for polymorphic and parametric types.
//
// The package is a single-threaded, append-only arena: once a descriptor is
// registered it is never removed or recompacted, and its identifier is
// stable for the lifetime of the process.
package types

import "fmt"

// TypeID is a dense, small-integer handle into the Store's descriptor
// sequence. It never exceeds the representable range of a 16-bit value;
// Store.Register panics if it would.
type TypeID uint16

// MaxTypeID is the largest representable TypeID. Store.Register refuses to
// grow the descriptor sequence beyond it.
const MaxTypeID TypeID = ^TypeID(0)

// VariableID identifies a source-level variable or function parameter for
// the purposes of name tracking (Store.parameterNames) and poly-root
// identity (PolyParameter).
type VariableID uint32

// FunctionID identifies a function or method body. Two function
// descriptors with the same FunctionID are the same function.
type FunctionID uint64

// NewFunctionID derives a FunctionID from a source position, following the
// reference implementation's convention of keying function identity on
// "where it was declared" rather than allocating a separate counter.
func NewFunctionID(source uint32, startOffset uint32) FunctionID {
	return FunctionID(uint64(source)<<32 | uint64(startOffset))
}

// ClosureID is a fresh handle minted by Store.NewClosureID for each closure
// instantiation encountered during synthesis.
type ClosureID uint32

// Span is a source position: a source file identifier plus a byte offset
// range. NullSpan represents "no source position" and is the zero value.
type Span struct {
	Source uint32
	Start  uint32
	End    uint32
}

// NullSpan is the distinguished "no position" span.
var NullSpan = Span{}

// IsNull reports whether s is the distinguished null span.
func (s Span) IsNull() bool {
	return s == NullSpan
}

func (id TypeID) String() string {
	return fmt.Sprintf("#%d", uint16(id))
}
