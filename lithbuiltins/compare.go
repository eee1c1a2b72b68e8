package lithbuiltins

import (
	"t73f.de/r/lithpy"
)

func builtinEq(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("==", args, 2); e != nil {
		return e, nil
	}
	return lithpy.Boolean(args[0].IsEqual(args[1])), nil
}

// builtinNe is the strict boolean inverse of builtinEq: there is no
// independent "not equal" comparison, only !(==).
func builtinNe(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("!=", args, 2); e != nil {
		return e, nil
	}
	return lithpy.Boolean(!args[0].IsEqual(args[1])), nil
}

// ordCompare requires two Integer operands: unlike the arithmetic
// operators, "> < >= <=" do not promote to Decimal.
func ordCompare(name string, args []lithpy.Value, op func(a, b int64) bool) (lithpy.Value, error) {
	if e := assertArity(name, args, 2); e != nil {
		return e, nil
	}
	a, e := assertInteger(name, args, 0)
	if e != nil {
		return e, nil
	}
	b, e := assertInteger(name, args, 1)
	if e != nil {
		return e, nil
	}
	return lithpy.Boolean(op(int64(a), int64(b))), nil
}

func builtinGt(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return ordCompare(">", args, func(a, b int64) bool { return a > b })
}

func builtinLt(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return ordCompare("<", args, func(a, b int64) bool { return a < b })
}

func builtinGe(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return ordCompare(">=", args, func(a, b int64) bool { return a >= b })
}

func builtinLe(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return ordCompare("<=", args, func(a, b int64) bool { return a <= b })
}

// builtinAnd, builtinOr and builtinNot operate on Integer, not Boolean:
// 0 is false, any other value is true. This mirrors the C reference's use
// of plain int truthiness for its logic operators, rather than the
// dedicated Boolean type introduced for comparisons.
func builtinAnd(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertMinArity("&&", args, 1); e != nil {
		return e, nil
	}
	result := int64(1)
	for i := range args {
		n, e := assertInteger("&&", args, i)
		if e != nil {
			return e, nil
		}
		if int64(n) == 0 {
			result = 0
		}
	}
	return lithpy.Integer(result), nil
}

func builtinOr(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertMinArity("||", args, 1); e != nil {
		return e, nil
	}
	result := int64(0)
	for i := range args {
		n, e := assertInteger("||", args, i)
		if e != nil {
			return e, nil
		}
		if int64(n) != 0 {
			result = 1
		}
	}
	return lithpy.Integer(result), nil
}

func builtinNot(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("!", args, 1); e != nil {
		return e, nil
	}
	n, e := assertInteger("!", args, 0)
	if e != nil {
		return e, nil
	}
	if int64(n) == 0 {
		return lithpy.Integer(1), nil
	}
	return lithpy.Integer(0), nil
}
