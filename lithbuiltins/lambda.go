package lithbuiltins

import (
	"t73f.de/r/lithpy"
)

// builtinLambda builds a closure from a formals Q-Expression and a body
// Q-Expression, capturing env as the closure's lexical parent.
func builtinLambda(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("\\", args, 2); e != nil {
		return e, nil
	}
	formals, e := assertQExpr("\\", args, 0)
	if e != nil {
		return e, nil
	}
	body, e := assertQExpr("\\", args, 1)
	if e != nil {
		return e, nil
	}
	l, err := lithpy.MakeLambda(formals, body, env)
	if err != nil {
		return lithpy.MakeErr(err.Error()), nil
	}
	return l, nil
}

// bindVars implements the shared body of "def" and "=": args[0] is a
// Q-Expression of symbol names, and the remaining args are their values,
// bound positionally via put, which is either the root environment's Put
// (global, "def") or the current environment's Put (local, "=").
func bindVars(name string, env *lithpy.Environment, args []lithpy.Value, put func(lithpy.Symbol, lithpy.Value)) (lithpy.Value, error) {
	if e := assertMinArity(name, args, 1); e != nil {
		return e, nil
	}
	names, e := assertQExpr(name, args, 0)
	if e != nil {
		return e, nil
	}
	syms, ok := names.Symbols()
	if !ok {
		return lithpy.MakeErr("Function '" + name + "' cannot define non-symbol."), nil
	}
	values := args[1:]
	if len(syms) != len(values) {
		return lithpy.MakeErr("Function '" + name +
			"' passed too many arguments for symbols. Got " +
			lithpy.Integer(len(values)).String() + ", Expected " +
			lithpy.Integer(len(syms)).String() + "."), nil
	}
	for i, sym := range syms {
		put(sym, values[i])
	}
	return lithpy.MakeSExpr(), nil
}

// builtinDef binds one or more symbols in the global environment.
func builtinDef(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return bindVars("def", env, args, env.Root().Put)
}

// builtinPut binds one or more symbols in the current (local) frame. The
// reference implementation names this internal C function "put" and
// exposes it to source under the "=" operator.
func builtinPut(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return bindVars("=", env, args, env.Put)
}

// builtinFun is sugar for defining a named function:
// (fun {name arg1 arg2} {body}) expands to (def {name} (\ {arg1 arg2} {body})).
func builtinFun(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("fun", args, 2); e != nil {
		return e, nil
	}
	header, e := assertQExpr("fun", args, 0)
	if e != nil {
		return e, nil
	}
	if e := assertNotEmpty("fun", header, 0); e != nil {
		return e, nil
	}
	body, e := assertQExpr("fun", args, 1)
	if e != nil {
		return e, nil
	}
	headerItems := header.Items()
	nameSym, ok := lithpy.GetSymbol(headerItems[0])
	if !ok {
		return lithpy.MakeErr("Function 'fun' cannot define non-symbol as function name."), nil
	}
	formals := lithpy.MakeQExpr(headerItems[1:]...)
	l, err := lithpy.MakeLambda(formals, body, env)
	if err != nil {
		return lithpy.MakeErr(err.Error()), nil
	}
	env.Root().Put(nameSym, l)
	return lithpy.MakeSExpr(), nil
}

// builtinLocals returns the bindings of the current (local) frame as a
// Q-Expression of {symbol value} pairs.
func builtinLocals(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("locals", args, 0); e != nil {
		return e, nil
	}
	return env.Locals(), nil
}
