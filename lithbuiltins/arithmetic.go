package lithbuiltins

import (
	"math"

	"t73f.de/r/lithpy"
)

// numericOp folds a chain of numeric arguments left to right with intOp
// (when every argument so far is an Integer) or decOp (once any argument
// is a Decimal, the whole chain promotes to Decimal).
func numericOp(name string, args []lithpy.Value, intOp func(a, b int64) (int64, *lithpy.Err), decOp func(a, b float64) (float64, *lithpy.Err)) (lithpy.Value, error) {
	if e := assertMinArity(name, args, 1); e != nil {
		return e, nil
	}
	for i := range args {
		if !lithpy.IsNumber(args[i]) {
			return typeErr(name, args, i, "Number"), nil
		}
	}

	if len(args) == 1 {
		// Unary use: only "-" gives this a meaning (negation); other
		// operators just return the single operand unchanged.
		return args[0], nil
	}

	acc := args[0]
	for _, next := range args[1:] {
		if ai, aok := lithpy.GetInteger(acc); aok {
			if ni, nok := lithpy.GetInteger(next); nok {
				r, err := intOp(int64(ai), int64(ni))
				if err != nil {
					return err, nil
				}
				acc = lithpy.Integer(r)
				continue
			}
		}
		af, _ := lithpy.AsDecimal(acc)
		nf, _ := lithpy.AsDecimal(next)
		r, err := decOp(af, nf)
		if err != nil {
			return err, nil
		}
		acc = lithpy.Decimal(r)
	}
	return acc, nil
}

func builtinAdd(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("+", args,
		func(a, b int64) (int64, *lithpy.Err) { return a + b, nil },
		func(a, b float64) (float64, *lithpy.Err) { return a + b, nil })
}

func builtinSub(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertMinArity("-", args, 1); e != nil {
		return e, nil
	}
	if len(args) == 1 {
		if i, ok := lithpy.GetInteger(args[0]); ok {
			return -i, nil
		}
		if d, ok := lithpy.GetDecimal(args[0]); ok {
			return -d, nil
		}
		return typeErr("-", args, 0, "Number"), nil
	}
	return numericOp("-", args,
		func(a, b int64) (int64, *lithpy.Err) { return a - b, nil },
		func(a, b float64) (float64, *lithpy.Err) { return a - b, nil })
}

func builtinMul(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("*", args,
		func(a, b int64) (int64, *lithpy.Err) { return a * b, nil },
		func(a, b float64) (float64, *lithpy.Err) { return a * b, nil })
}

func builtinDiv(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("/", args,
		func(a, b int64) (int64, *lithpy.Err) {
			if b == 0 {
				return 0, lithpy.MakeErr("Division By Zero.")
			}
			return a / b, nil
		},
		func(a, b float64) (float64, *lithpy.Err) {
			if b == 0 {
				return 0, lithpy.MakeErr("Division by zero!")
			}
			return a / b, nil
		})
}

func builtinRem(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("%", args,
		func(a, b int64) (int64, *lithpy.Err) {
			if b == 0 {
				return 0, lithpy.MakeErr("Division By Zero.")
			}
			return a % b, nil
		},
		func(a, b float64) (float64, *lithpy.Err) {
			if b == 0 {
				return 0, lithpy.MakeErr("Division by zero!")
			}
			return float64(int64(a) % int64(b)), nil
		})
}

func builtinPow(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("^", args,
		func(a, b int64) (int64, *lithpy.Err) {
			return int64(math.Pow(float64(a), float64(b))), nil
		},
		func(a, b float64) (float64, *lithpy.Err) {
			return math.Pow(a, b), nil
		})
}

func builtinMin(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("min", args,
		func(a, b int64) (int64, *lithpy.Err) {
			if a < b {
				return a, nil
			}
			return b, nil
		},
		func(a, b float64) (float64, *lithpy.Err) {
			if a < b {
				return a, nil
			}
			return b, nil
		})
}

func builtinMax(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return numericOp("max", args,
		func(a, b int64) (int64, *lithpy.Err) {
			if a > b {
				return a, nil
			}
			return b, nil
		},
		func(a, b float64) (float64, *lithpy.Err) {
			if a > b {
				return a, nil
			}
			return b, nil
		})
}
