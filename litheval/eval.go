// Package litheval implements the reduction loop and call protocol of
// the lithpy evaluator: symbol lookup, left-to-right S-Expression
// reduction with error short-circuiting, and lambda application with
// partial application and "&" rest-parameter capture.
package litheval

import (
	"t73f.de/r/lithpy"
)

// MaxDepth bounds recursive evaluation depth. Exceeding it produces an
// Error value rather than exhausting the Go call stack, per the
// concurrency/resource model: recursion depth equals call/expression
// nesting depth, and an implementation may bound it and must report
// stack exhaustion as an Error where the platform permits.
const MaxDepth = 10000

// Eval evaluates val in env, returning its result. Symbols are looked up
// in env (a deep copy of the binding is returned); S-Expressions are
// reduced; every other kind of value evaluates to itself.
func Eval(env *lithpy.Environment, val lithpy.Value) lithpy.Value {
	return eval(env, val, 0)
}

func eval(env *lithpy.Environment, val lithpy.Value, depth int) lithpy.Value {
	if depth > MaxDepth {
		return lithpy.MakeErr("stack exhausted: expression nested too deeply")
	}
	switch v := val.(type) {
	case lithpy.Symbol:
		obj, err := env.Get(v)
		if err != nil {
			return lithpy.MakeErr(err.Error())
		}
		return obj
	case *lithpy.SExpr:
		return reduce(env, v, depth)
	default:
		return val
	}
}

// reduce evaluates an S-Expression's children, left to right, then
// dispatches to the call protocol.
//
//   - Children are evaluated in order, left to right.
//   - The first child that evaluates to an Error is returned
//     immediately; the children after it are not evaluated.
//   - An empty S-Expression evaluates to itself.
//   - A singleton S-Expression evaluates to its evaluated child.
//   - Otherwise the first child must be a Function; it is applied to
//     the rest.
func reduce(env *lithpy.Environment, sexpr *lithpy.SExpr, depth int) lithpy.Value {
	items := sexpr.Items()
	results := make([]lithpy.Value, len(items))
	for i, item := range items {
		res := eval(env, item, depth+1)
		if lithpy.IsError(res) {
			return res
		}
		results[i] = res
	}

	switch len(results) {
	case 0:
		return lithpy.MakeSExpr()
	case 1:
		return results[0]
	}

	fn := results[0]
	callable, ok := lithpy.GetCallable(fn)
	if !ok {
		return lithpy.MakeErr("S-Expression starts with incorrect type. Got " +
			lithpy.TypeName(fn) + ", Expected Function.")
	}
	return apply(env, callable, results[1:], depth+1)
}

// apply dispatches a call to either a Builtin or a Lambda.
func apply(env *lithpy.Environment, fn lithpy.Callable, args []lithpy.Value, depth int) lithpy.Value {
	switch f := fn.(type) {
	case *lithpy.Builtin:
		res, err := f.Fn(env, args)
		if err != nil {
			return lithpy.MakeErr(err.Error())
		}
		return res
	case *lithpy.Lambda:
		return callLambda(env, f, args, depth)
	default:
		return lithpy.MakeErr("S-Expression starts with incorrect type. Got Function, Expected Function.")
	}
}
