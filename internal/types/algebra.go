package types

// NewOrType builds the union of lhs and rhs, normalizing as it goes. Unions
// are not hash-consed: two separately built unions of the same members get
// distinct TypeIDs unless one of these rules collapses them:
//
//  1. lhs == rhs collapses to that type.
//  2. {true, false} in either order collapses to the open boolean type.
//  3. never absorbs into the other operand.
//  4. an Or on the left is flattened left-to-right: `(a | b) | c` becomes
//     `a | (b | c)`, so unions always right-lean.
//  5. if rhs is an Or and lhs is one of its two operands, lhs is absorbed:
//     as rhs's left operand, rhs itself is returned; as its right operand,
//     the union of lhs and rhs's left operand is built instead. Members
//     deeper in the rhs chain are not searched.
//
// Only after all of the above fail to apply is a fresh OrType registered.
func (s *Store) NewOrType(lhs, rhs TypeID) TypeID {
	if lhs == rhs {
		return lhs
	}

	if (lhs == TypeTrue && rhs == TypeFalse) || (lhs == TypeFalse && rhs == TypeTrue) {
		return TypeOpenBoolean
	}

	if lhs == TypeNever {
		return rhs
	}
	if rhs == TypeNever {
		return lhs
	}

	if or, ok := s.Get(lhs).(OrType); ok {
		newLHS := or.Left
		newRHS := s.NewOrType(or.Right, rhs)
		return s.NewOrType(newLHS, newRHS)
	}

	if or, ok := s.Get(rhs).(OrType); ok {
		if lhs == or.Left {
			return rhs
		}
		if lhs == or.Right {
			return s.NewOrType(lhs, or.Left)
		}
	}

	return s.Register(OrType{Left: lhs, Right: rhs})
}

// NewOrTypeFromIterator folds NewOrType across ids, left to right, returning
// TypeNever for an empty sequence -- an empty union is the type with no
// possible values.
func (s *Store) NewOrTypeFromIterator(ids []TypeID) TypeID {
	if len(ids) == 0 {
		return TypeNever
	}
	acc := ids[0]
	for _, id := range ids[1:] {
		acc = s.NewOrType(acc, id)
	}
	return acc
}

// NewAndType builds the intersection of lhs and rhs. It does not compute
// disjointness (that a concrete incompatible pair like `string & number`
// reduces to never is a checker-level judgment, not something this arena
// decides on construction):
//
//  1. lhs == rhs collapses to that type.
//  2. intersection distributes over a union operand on either side:
//     `(a | b) & c` becomes `(a & c) | (b & c)`.
//  3. a constant operand on either side dominates -- a constant can only
//     ever intersect meaningfully with itself, which case 1 already
//     handles, so a differing constant just wins outright as the more
//     specific type.
//  4. an And on the right is flattened right-to-left.
func (s *Store) NewAndType(lhs, rhs TypeID) TypeID {
	if lhs == rhs {
		return lhs
	}

	lhsDesc := s.Get(lhs)
	rhsDesc := s.Get(rhs)

	if or, ok := lhsDesc.(OrType); ok {
		newLHS := s.NewAndType(or.Left, rhs)
		newRHS := s.NewAndType(or.Right, rhs)
		return s.NewOrType(newLHS, newRHS)
	}
	if or, ok := rhsDesc.(OrType); ok {
		newLHS := s.NewAndType(lhs, or.Left)
		newRHS := s.NewAndType(lhs, or.Right)
		return s.NewOrType(newLHS, newRHS)
	}

	if _, ok := lhsDesc.(ConstantTypeDescriptor); ok {
		return lhs
	}
	if _, ok := rhsDesc.(ConstantTypeDescriptor); ok {
		return rhs
	}

	if and, ok := rhsDesc.(AndType); ok {
		newLHS := s.NewAndType(lhs, and.Left)
		return s.NewAndType(newLHS, and.Right)
	}

	return s.Register(AndType{Left: lhs, Right: rhs})
}

// Not builds the Not<T> builtin type-level intrinsic applied to t -- the
// `Not<T>` annotation a user can write, not boolean negation of a value.
// For the latter see LogicalNot.
func (s *Store) Not(t TypeID) TypeID {
	return s.Register(PartiallyAppliedGenericsType{
		On:        TypeNot,
		Arguments: []GenericBinding{{Parameter: TypeGenericT, Argument: t, At: NullSpan}},
	})
}

// LogicalNot, LogicalAnd, and LogicalOr are logical sugar: `!x` is
// `x ? false : true`, `x && y` is `x ? y : false`, `x || y` is
// `x ? true : y`.
//
// LogicalAnd and LogicalOr are expressed directly as NewConditionalType
// calls, picking up its collapse rules for free. LogicalNot instead
// reimplements NewConditionalType's collapse cases inline rather than
// calling through to it, because a negation's result_union is always
// exactly TypeBoolean (per the reference's new_logical_negation_type),
// not NewConditionalType's general `NewOrType(truthyResult,
// otherwiseResult)` computation, which for the false/true branch pair
// would produce the open boolean type instead.
func (s *Store) LogicalNot(x TypeID) TypeID {
	if x == TypeTrue {
		return TypeFalse
	}
	if x == TypeFalse {
		return TypeTrue
	}

	if ctor, ok := s.Get(x).(ConstructorType); ok &&
		ctor.Kind == ConstructorConditionalResult &&
		ctor.TruthyResult == TypeFalse && ctor.OtherwiseResult == TypeTrue {
		return ctor.Condition
	}

	return s.Register(ConstructorType{
		Kind:            ConstructorConditionalResult,
		Condition:       x,
		TruthyResult:    TypeFalse,
		OtherwiseResult: TypeTrue,
		ResultUnion:     TypeBoolean,
	})
}

func (s *Store) LogicalAnd(x, y TypeID) TypeID {
	return s.NewConditionalType(x, y, TypeFalse)
}

func (s *Store) LogicalOr(x, y TypeID) TypeID {
	return s.NewConditionalType(x, TypeTrue, y)
}

// NewConditionalType builds a conditional result type, collapsing the
// trivial cases immediately rather than registering a Constructor:
//
//  1. identical branches collapse to that branch regardless of condition.
//  2. a condition statically known to be the TypeTrue/TypeFalse builtin
//     collapses to the corresponding branch.
//  3. `cond ? true : false` collapses back to cond itself.
//  4. if condition is itself a conditional of exactly the reversed shape
//     (`? false : true`), the two cancel and fold into a single
//     conditional over the inner condition with branches swapped --
//     this is what makes repeated negation (`Not<Not<T>>`-style checks
//     expressed as conditionals) not grow the type store without bound.
func (s *Store) NewConditionalType(condition, truthyResult, otherwiseResult TypeID) TypeID {
	if truthyResult == otherwiseResult {
		return truthyResult
	}
	if condition == TypeTrue {
		return truthyResult
	}
	if condition == TypeFalse {
		return otherwiseResult
	}
	if truthyResult == TypeTrue && otherwiseResult == TypeFalse {
		return condition
	}

	if ctor, ok := s.Get(condition).(ConstructorType); ok &&
		ctor.Kind == ConstructorConditionalResult &&
		ctor.TruthyResult == TypeFalse && ctor.OtherwiseResult == TypeTrue {
		return s.NewConditionalType(ctor.Condition, otherwiseResult, truthyResult)
	}

	resultUnion := s.NewOrType(truthyResult, otherwiseResult)
	return s.Register(ConstructorType{
		Kind:            ConstructorConditionalResult,
		Condition:       condition,
		TruthyResult:    truthyResult,
		OtherwiseResult: otherwiseResult,
		ResultUnion:     resultUnion,
	})
}

// NewConditionalExtendsType builds `item extends extends ? trueResult :
// falseResult`, registering the TypeExtends check as its own Constructor
// before folding it through NewConditionalType.
func (s *Store) NewConditionalExtendsType(item, extends, trueResult, falseResult TypeID) TypeID {
	check := s.Register(ConstructorType{
		Kind:    ConstructorTypeExtends,
		Item:    item,
		Extends: extends,
	})
	return s.NewConditionalType(check, trueResult, falseResult)
}

// NewKeyOf builds the `keyof operand` derived type.
func (s *Store) NewKeyOf(operand TypeID) TypeID {
	return s.Register(ConstructorType{Kind: ConstructorKeyOf, KeyOfOperand: operand})
}
