package lithbuiltins

import (
	"t73f.de/r/lithpy"

	"t73f.de/r/lithpy/litheval"
)

// builtinList wraps its arguments into a new Q-Expression.
func builtinList(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	return lithpy.MakeQExpr(args...), nil
}

// builtinHead returns a Q-Expression holding only the first child of its
// (single) Q-Expression argument.
func builtinHead(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("head", args, 1); e != nil {
		return e, nil
	}
	q, e := assertQExpr("head", args, 0)
	if e != nil {
		return e, nil
	}
	if e := assertNotEmpty("head", q, 0); e != nil {
		return e, nil
	}
	return lithpy.MakeQExpr(q.Items()[0]), nil
}

// builtinTail returns a Q-Expression holding every child but the first.
func builtinTail(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("tail", args, 1); e != nil {
		return e, nil
	}
	q, e := assertQExpr("tail", args, 0)
	if e != nil {
		return e, nil
	}
	if e := assertNotEmpty("tail", q, 0); e != nil {
		return e, nil
	}
	return lithpy.MakeQExpr(q.Items()[1:]...), nil
}

// builtinInit returns a Q-Expression holding every child but the last.
// The reference implementation guards this with an assertion labelled
// "len" rather than "init" — a copy-paste slip in the C source whose
// only effect is the function name shown in its error messages, so it
// is corrected here rather than reproduced.
func builtinInit(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("init", args, 1); e != nil {
		return e, nil
	}
	q, e := assertQExpr("init", args, 0)
	if e != nil {
		return e, nil
	}
	if e := assertNotEmpty("init", q, 0); e != nil {
		return e, nil
	}
	items := q.Items()
	return lithpy.MakeQExpr(items[:len(items)-1]...), nil
}

// builtinLen returns the number of children in a Q-Expression.
func builtinLen(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("len", args, 1); e != nil {
		return e, nil
	}
	q, e := assertQExpr("len", args, 0)
	if e != nil {
		return e, nil
	}
	return lithpy.Integer(q.Len()), nil
}

// builtinCons prepends a value onto a Q-Expression.
func builtinCons(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("cons", args, 2); e != nil {
		return e, nil
	}
	q, e := assertQExpr("cons", args, 1)
	if e != nil {
		return e, nil
	}
	items := append([]lithpy.Value{args[0]}, q.Items()...)
	return lithpy.MakeQExpr(items...), nil
}

// builtinJoin concatenates any number of Q-Expressions.
func builtinJoin(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	var items []lithpy.Value
	for i := range args {
		q, e := assertQExpr("join", args, i)
		if e != nil {
			return e, nil
		}
		items = append(items, q.Items()...)
	}
	return lithpy.MakeQExpr(items...), nil
}

// builtinEval reinterprets its Q-Expression argument as an evaluable
// S-Expression and evaluates it in env.
func builtinEval(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("eval", args, 1); e != nil {
		return e, nil
	}
	q, e := assertQExpr("eval", args, 0)
	if e != nil {
		return e, nil
	}
	cp := lithpy.Copy(q).(*lithpy.QExpr)
	return litheval.Eval(env, cp.ToSExpr()), nil
}
