package types

// NewConstantType interns constant as a singleton type, reusing one of the
// fixed builtin ids for the handful of constants the store pre-registers
// (empty string, 0, 1, +-Infinity, NaN, true, false) instead of minting a
// fresh descriptor for values that are already represented. NaN is
// compared with Constant.isNaN, never ==, since IEEE-754 NaN is not
// reflexively equal to itself.
func (s *Store) NewConstantType(c Constant) TypeID {
	switch {
	case c.isEmptyString():
		return TypeEmptyString
	case c.isNumericZero():
		return TypeZero
	case c.isNumericOne():
		return TypeOne
	case c.isNegInf():
		return TypeNegInfinity
	case c.isPosInf():
		return TypeInfinity
	case c.isNaN():
		return TypeNaN
	case c.isTrue():
		return TypeTrue
	case c.isFalse():
		return TypeFalse
	default:
		return s.Register(ConstantTypeDescriptor{Value: c})
	}
}
