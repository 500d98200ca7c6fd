package types

import (
	"fmt"
	"strings"
)

// Render produces a human-readable rendering of id, following referenced
// types recursively; nesting deeper than maxRenderDepth is cut off and
// written as "...". It exists for the `tscore dump` CLI command and
// for test/snapshot output; nothing in this package's constructors depends
// on it.
func (s *Store) Render(id TypeID) string {
	var b strings.Builder
	s.render(&b, id, 0)
	return b.String()
}

const maxRenderDepth = 8

func (s *Store) render(b *strings.Builder, id TypeID, depth int) {
	if depth > maxRenderDepth {
		b.WriteString("...")
		return
	}

	switch d := s.Get(id).(type) {
	case InterfaceType:
		b.WriteString(d.Name)
	case ClassType:
		b.WriteString(d.Name)
		s.renderTypeArgs(b, d.Parameters, depth)
	case AliasType:
		b.WriteString(d.Name)
		s.renderTypeArgs(b, d.Parameters, depth)
	case ConstantTypeDescriptor:
		b.WriteString(d.Value.String())
	case OrType:
		s.render(b, d.Left, depth+1)
		b.WriteString(" | ")
		s.render(b, d.Right, depth+1)
	case AndType:
		s.render(b, d.Left, depth+1)
		b.WriteString(" & ")
		s.render(b, d.Right, depth+1)
	case ObjectType:
		s.renderObject(b, d, depth)
	case SpecialObjectType:
		s.renderSpecialObject(b, d)
	case FunctionReferenceType:
		s.renderFunctionReference(b, d, depth)
	case RootPolyTypeDescriptor:
		s.renderPoly(b, d)
	case PartiallyAppliedGenericsType:
		s.render(b, d.On, depth+1)
		b.WriteString("<")
		for i, arg := range d.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			s.render(b, arg.Argument, depth+1)
		}
		b.WriteString(">")
	case ConstructorType:
		s.renderConstructor(b, d, depth)
	case NarrowedType:
		s.render(b, d.NarrowedTo, depth+1)
		b.WriteString(" (narrowed from ")
		s.render(b, d.From, depth+1)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<unknown %T>", d)
	}
}

func (s *Store) renderTypeArgs(b *strings.Builder, params []TypeID, depth int) {
	if len(params) == 0 {
		return
	}
	b.WriteString("<")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		s.render(b, p, depth+1)
	}
	b.WriteString(">")
}

func (s *Store) renderObject(b *strings.Builder, d ObjectType, depth int) {
	if d.Nature == ObjectReal && d.Properties.Len() == 0 {
		b.WriteString("object")
		return
	}
	b.WriteString("{ ")
	for i, e := range d.Properties.Entries() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Key.String())
		if e.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		s.render(b, e.Value, depth+1)
	}
	b.WriteString(" }")
}

func (s *Store) renderSpecialObject(b *strings.Builder, d SpecialObjectType) {
	switch d.Kind {
	case SpecialNull:
		b.WriteString("null")
	case SpecialFunction:
		fmt.Fprintf(b, "Function(%d)", d.Function)
	case SpecialRegularExpression:
		if d.RegExp != nil {
			b.WriteString(d.RegExp.Source())
		} else {
			b.WriteString("RegExp")
		}
	}
}

func (s *Store) renderFunctionReference(b *strings.Builder, d FunctionReferenceType, depth int) {
	fn, ok := s.Function(d.Function)
	if !ok {
		b.WriteString("function")
		return
	}
	b.WriteString("(")
	for i, p := range fn.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		s.render(b, p.Type, depth+1)
	}
	b.WriteString(") => ")
	s.render(b, fn.ReturnType, depth+1)
}

func (s *Store) renderPoly(b *strings.Builder, d RootPolyTypeDescriptor) {
	switch d.Nature {
	case PolyParameter:
		fmt.Fprintf(b, "param#%d", d.VariableID)
	case PolyFreeVariable:
		b.WriteString("free")
	case PolyStructureGeneric, PolyFunctionGeneric, PolyMappedGeneric:
		b.WriteString(d.Name)
	case PolyOpen:
		b.WriteString("~")
		s.render(b, d.Base, 0)
	case PolyError:
		b.WriteString("error")
	default:
		b.WriteString("poly")
	}
}

func (s *Store) renderConstructor(b *strings.Builder, d ConstructorType, depth int) {
	switch d.Kind {
	case ConstructorConditionalResult:
		s.render(b, d.Condition, depth+1)
		b.WriteString(" ? ")
		s.render(b, d.TruthyResult, depth+1)
		b.WriteString(" : ")
		s.render(b, d.OtherwiseResult, depth+1)
	case ConstructorProperty:
		s.render(b, d.On, depth+1)
		b.WriteString("[")
		b.WriteString(d.Under.String())
		b.WriteString("]")
	case ConstructorKeyOf:
		b.WriteString("keyof ")
		s.render(b, d.KeyOfOperand, depth+1)
	case ConstructorTypeExtends:
		s.render(b, d.Item, depth+1)
		b.WriteString(" extends ")
		s.render(b, d.Extends, depth+1)
	}
}
