package types

import "math"

// The builtin TypeIDs below are registered in NewStore in exactly this
// order. The order is load-bearing: every other builtin that refers to
// another builtin by id (e.g. Array's element parameter, or the Not<T>
// alias feeding the "exclude NaN" intersection) relies on the referent
// already having a stable, known id, and callers throughout this module
// hard-code these constants rather than looking types up by name.
const (
	TypeError TypeID = iota // the type of an unrecoverable synthesis error; behaves as `any`
	TypeNever
	TypeAny
	TypeBoolean
	TypeNumber
	TypeString
	TypeUndefined
	TypeNull
	TypeVoid
	TypeArray
	TypePromise
	TypeGenericT // shared `T` structure-generic parameter for Array<T>, Promise<T>, and the NoInfer/Readonly/Literal/Exclusive/Not aliases below
	TypeObject
	TypeFunction
	TypeRegExp
	TypeSymbol
	TypeTrue
	TypeFalse
	TypeZero
	TypeOne
	TypeNaN
	TypeNegInfinity
	TypeInfinity
	TypeMinValue
	TypeMaxValue
	TypeEpsilon
	TypeNegativeOneBits
	TypeEmptyString
	TypeThisFreeVariable
	TypeNewTarget
	TypeImportMeta
	SymbolIterator
	SymbolAsyncIterator
	SymbolHasInstance
	SymbolToPrimitive
	TypeStringGeneric // shared `S extends string` parameter for the case-conversion intrinsics
	TypeUppercase
	TypeLowercase
	TypeCapitalize
	TypeUncapitalize
	TypeNoInfer
	TypeReadonly
	TypeNonOptional
	TypeWritable
	TypeNumberGeneric // shared `T extends number` parameter for the numeric comparison intrinsics
	TypeGreaterThan
	TypeLessThan
	TypeMultipleOf
	typeNotNaN     // Not<NaN>, an intermediate used only to build TypeRealNumber
	TypeRealNumber // number & Not<NaN>
	TypeLiteral
	TypeExclusive
	TypeNot
	TypeCaseInsensitive
	TypeOpenBoolean
	TypeOpenNumber
	TypeStringOrNumber

	// BuiltinCount is the number of reserved ids above. NewStore asserts
	// that exactly this many descriptors were registered before any user
	// type.
	BuiltinCount
)

// epsilonValue is IEEE-754 float64 machine epsilon, matching Rust's
// f64::EPSILON.
const epsilonValue = 2.220446049250313e-16

// NewStore builds a Store with the fixed builtin sequence already
// registered, in the exact order the TypeID constants above declare. It
// panics if the registered count ever drifts from BuiltinCount -- a
// mismatch there means a builtin was added, removed, or reordered without
// updating the constant block, which would silently corrupt every TypeID
// hard-coded against a builtin elsewhere in this package.
func NewStore() *Store {
	s := newEmptyStore()

	reg := func(d Descriptor) TypeID { return s.Register(d) }

	reg(RootPolyTypeDescriptor{Nature: PolyError, Base: TypeAny})                   // TypeError
	reg(InterfaceType{Name: "never"})                                               // TypeNever
	reg(InterfaceType{Name: "any"})                                                 // TypeAny
	reg(ClassType{Name: "boolean"})                                                 // TypeBoolean
	reg(ClassType{Name: "number"})                                                  // TypeNumber
	reg(ClassType{Name: "string"})                                                  // TypeString
	reg(ConstantTypeDescriptor{Value: UndefinedConstant})                           // TypeUndefined
	reg(SpecialObjectType{Kind: SpecialNull})                                       // TypeNull
	reg(AliasType{Name: "void", Target: TypeUndefined})                             // TypeVoid
	reg(ClassType{Name: "Array", Parameters: []TypeID{TypeGenericT}})               // TypeArray
	reg(ClassType{Name: "Promise", Parameters: []TypeID{TypeGenericT}})             // TypePromise
	reg(RootPolyTypeDescriptor{Nature: PolyStructureGeneric, Name: "T", Extends: TypeAny}) // TypeGenericT
	reg(InterfaceType{Name: "object"})                                              // TypeObject
	reg(ClassType{Name: "Function"})                                                // TypeFunction
	reg(ClassType{Name: "RegExp"})                                                  // TypeRegExp
	reg(ClassType{Name: "Symbol"})                                                  // TypeSymbol
	reg(ConstantTypeDescriptor{Value: NewBoolConstant(true)})                       // TypeTrue
	reg(ConstantTypeDescriptor{Value: NewBoolConstant(false)})                      // TypeFalse
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(0)})                        // TypeZero
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(1)})                        // TypeOne
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(math.NaN())})               // TypeNaN
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(math.Inf(-1))})             // TypeNegInfinity
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(math.Inf(1))})              // TypeInfinity
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(-math.MaxFloat64)})         // TypeMinValue: JS Number.MIN_VALUE is the smallest magnitude finite value in most runtimes, but the reference implementation uses Rust's f64::MIN (most negative finite value) here, not the smallest-positive one -- preserved as-is
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(math.MaxFloat64)})         // TypeMaxValue
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(epsilonValue)})             // TypeEpsilon
	reg(ConstantTypeDescriptor{Value: NewNumberConstant(-1)})                       // TypeNegativeOneBits
	reg(ConstantTypeDescriptor{Value: NewStringConstant("")})                       // TypeEmptyString
	reg(RootPolyTypeDescriptor{Nature: PolyFreeVariable, Reference: RootReferenceThis, BasedOn: TypeAny}) // TypeThisFreeVariable
	reg(RootPolyTypeDescriptor{Nature: PolyFunctionGeneric, Name: "new.target", Extends: TypeAny})        // TypeNewTarget
	reg(InterfaceType{Name: "ImportMeta"})                                          // TypeImportMeta
	reg(ConstantTypeDescriptor{Value: NewSymbolConstant("iterator")})               // SymbolIterator
	reg(ConstantTypeDescriptor{Value: NewSymbolConstant("asyncIterator")})          // SymbolAsyncIterator
	reg(ConstantTypeDescriptor{Value: NewSymbolConstant("hasInstance")})            // SymbolHasInstance
	reg(ConstantTypeDescriptor{Value: NewSymbolConstant("toPrimitive")})            // SymbolToPrimitive
	reg(RootPolyTypeDescriptor{Nature: PolyStructureGeneric, Name: "S", Extends: TypeString}) // TypeStringGeneric
	reg(AliasType{Name: "Uppercase", Target: TypeString, Parameters: []TypeID{TypeStringGeneric}})   // TypeUppercase
	reg(AliasType{Name: "Lowercase", Target: TypeString, Parameters: []TypeID{TypeStringGeneric}})   // TypeLowercase
	reg(AliasType{Name: "Capitalize", Target: TypeString, Parameters: []TypeID{TypeStringGeneric}})  // TypeCapitalize
	reg(AliasType{Name: "Uncapitalize", Target: TypeString, Parameters: []TypeID{TypeStringGeneric}}) // TypeUncapitalize
	reg(AliasType{Name: "NoInfer", Target: TypeGenericT, Parameters: []TypeID{TypeGenericT}})         // TypeNoInfer
	reg(AliasType{Name: "Readonly", Target: TypeGenericT, Parameters: []TypeID{TypeGenericT}})        // TypeReadonly
	reg(RootPolyTypeDescriptor{Nature: PolyMappedGeneric, Name: "NonOptional", Extends: TypeBoolean}) // TypeNonOptional
	reg(RootPolyTypeDescriptor{Nature: PolyMappedGeneric, Name: "Writable", Extends: TypeBoolean})    // TypeWritable
	reg(RootPolyTypeDescriptor{Nature: PolyStructureGeneric, Name: "T", Extends: TypeNumber})         // TypeNumberGeneric
	reg(AliasType{Name: "GreaterThan", Target: TypeNumber, Parameters: []TypeID{TypeNumberGeneric}})  // TypeGreaterThan
	reg(AliasType{Name: "LessThan", Target: TypeNumber, Parameters: []TypeID{TypeNumberGeneric}})     // TypeLessThan
	reg(AliasType{Name: "MultipleOf", Target: TypeNumber, Parameters: []TypeID{TypeNumberGeneric}})   // TypeMultipleOf
	reg(PartiallyAppliedGenericsType{
		On:        TypeNot,
		Arguments: []GenericBinding{{Parameter: TypeGenericT, Argument: TypeNaN, At: NullSpan}},
	}) // typeNotNaN: Not<NaN>
	reg(AndType{Left: TypeNumber, Right: typeNotNaN})                               // TypeRealNumber
	reg(AliasType{Name: "Literal", Target: TypeGenericT, Parameters: []TypeID{TypeGenericT}})   // TypeLiteral
	reg(AliasType{Name: "Exclusive", Target: TypeGenericT, Parameters: []TypeID{TypeGenericT}}) // TypeExclusive
	reg(AliasType{Name: "Not", Target: TypeAny, Parameters: []TypeID{TypeGenericT}})            // TypeNot
	reg(AliasType{Name: "CaseInsensitive", Target: TypeString, Parameters: []TypeID{TypeStringGeneric}}) // TypeCaseInsensitive
	reg(RootPolyTypeDescriptor{Nature: PolyOpen, Base: TypeBoolean})                // TypeOpenBoolean
	reg(RootPolyTypeDescriptor{Nature: PolyOpen, Base: TypeNumber})                 // TypeOpenNumber
	reg(OrType{Left: TypeString, Right: TypeNumber})                                // TypeStringOrNumber

	s.builtinCount = s.Count()
	if s.builtinCount != int(BuiltinCount) {
		panic("types: builtin registration count drifted from the TypeID constant block")
	}

	s.lookupGenericMap[TypeArray] = TypeGenericT

	return s
}
