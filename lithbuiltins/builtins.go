package lithbuiltins

import (
	"t73f.de/r/lithpy"
)

// registry lists every built-in bound into the root environment by
// BindAll. It exists as a single table so the full built-in surface is
// visible in one place.
var registry = []struct {
	name string
	fn   lithpy.BuiltinFunc
}{
	{"list", builtinList},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"init", builtinInit},
	{"len", builtinLen},
	{"cons", builtinCons},
	{"join", builtinJoin},
	{"eval", builtinEval},

	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinRem},
	{"^", builtinPow},
	{"add", builtinAdd},
	{"sub", builtinSub},
	{"mul", builtinMul},
	{"div", builtinDiv},
	{"rem", builtinRem},
	{"pow", builtinPow},
	{"min", builtinMin},
	{"max", builtinMax},

	{"==", builtinEq},
	{"!=", builtinNe},
	{">", builtinGt},
	{"<", builtinLt},
	{">=", builtinGe},
	{"<=", builtinLe},
	{"&&", builtinAnd},
	{"||", builtinOr},
	{"!", builtinNot},

	{"if", builtinIf},

	{"\\", builtinLambda},
	{"def", builtinDef},
	{"=", builtinPut},
	{"fun", builtinFun},
	{"locals", builtinLocals},

	{"print", builtinPrint},
	{"error", builtinError},
	{"load", builtinLoad},
	{"exit", builtinExit},
}

// BindAll registers every built-in in env, which must be the root
// (global) environment.
func BindAll(env *lithpy.Environment) {
	for _, b := range registry {
		env.Put(lithpy.Symbol(b.name), &lithpy.Builtin{Name: b.name, Fn: b.fn})
	}
}
