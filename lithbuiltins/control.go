package lithbuiltins

import (
	"t73f.de/r/lithpy"
	"t73f.de/r/lithpy/litheval"
)

// isTruthy accepts a Boolean directly, or an Integer using C-style
// nonzero truthiness, matching how "if" conditions are produced by both
// the comparison operators (Boolean) and the logic operators (Integer).
func isTruthy(v lithpy.Value) (bool, bool) {
	if b, ok := lithpy.GetBoolean(v); ok {
		return bool(b), true
	}
	if n, ok := lithpy.GetInteger(v); ok {
		return n != 0, true
	}
	return false, false
}

// builtinIf tests the condition in args[0]; if truthy it evaluates the Q-Expression in
// args[1] as a body, otherwise the Q-Expression in args[2].
func builtinIf(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("if", args, 3); e != nil {
		return e, nil
	}
	cond, ok := isTruthy(args[0])
	if !ok {
		return typeErr("if", args, 0, "Boolean"), nil
	}
	branch, e := assertQExpr("if", args, 1)
	if e != nil {
		return e, nil
	}
	other, e := assertQExpr("if", args, 2)
	if e != nil {
		return e, nil
	}
	if cond {
		return litheval.Eval(env, lithpy.Copy(branch).(*lithpy.QExpr).ToSExpr()), nil
	}
	return litheval.Eval(env, lithpy.Copy(other).(*lithpy.QExpr).ToSExpr()), nil
}
