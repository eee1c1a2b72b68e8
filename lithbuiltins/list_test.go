package lithbuiltins

import (
	"testing"

	"t73f.de/r/lithpy"
)

func TestHeadTail(t *testing.T) {
	q := lithpy.MakeQExpr(lithpy.Integer(1), lithpy.Integer(2), lithpy.Integer(3))

	h := call(t, builtinHead, q)
	if hq, ok := lithpy.GetQExpr(h); !ok || hq.Len() != 1 || hq.Items()[0].(lithpy.Integer) != 1 {
		t.Fatalf("head got %v", h)
	}

	tl := call(t, builtinTail, q)
	if tq, ok := lithpy.GetQExpr(tl); !ok || tq.Len() != 2 {
		t.Fatalf("tail got %v", tl)
	}
}

func TestHeadEmptyIsError(t *testing.T) {
	got := call(t, builtinHead, lithpy.MakeQExpr())
	if !lithpy.IsError(got) {
		t.Fatalf("expected an Error for head of {}, got %v", got)
	}
}

func TestInitDropsLast(t *testing.T) {
	q := lithpy.MakeQExpr(lithpy.Integer(1), lithpy.Integer(2), lithpy.Integer(3))
	got := call(t, builtinInit, q)
	iq, ok := lithpy.GetQExpr(got)
	if !ok || iq.Len() != 2 {
		t.Fatalf("got %v, want a 2-element QExpr", got)
	}
	if iq.Items()[1].(lithpy.Integer) != 2 {
		t.Fatalf("got %v, want last element dropped", got)
	}
}

func TestLen(t *testing.T) {
	got := call(t, builtinLen, lithpy.MakeQExpr(lithpy.Integer(1), lithpy.Integer(2)))
	if got.(lithpy.Integer) != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestCons(t *testing.T) {
	got := call(t, builtinCons, lithpy.Integer(0), lithpy.MakeQExpr(lithpy.Integer(1)))
	q, ok := lithpy.GetQExpr(got)
	if !ok || q.Len() != 2 || q.Items()[0].(lithpy.Integer) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestJoin(t *testing.T) {
	got := call(t, builtinJoin, lithpy.MakeQExpr(lithpy.Integer(1)), lithpy.MakeQExpr(lithpy.Integer(2), lithpy.Integer(3)))
	q, ok := lithpy.GetQExpr(got)
	if !ok || q.Len() != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestListWrapsArgs(t *testing.T) {
	got := call(t, builtinList, lithpy.Integer(1), lithpy.Integer(2))
	q, ok := lithpy.GetQExpr(got)
	if !ok || q.Len() != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalReinterpretsQExpr(t *testing.T) {
	env := lithpy.MakeEnvironment(nil)
	env.Put(lithpy.Symbol("+"), &lithpy.Builtin{Name: "+", Fn: builtinAdd})
	got, err := builtinEval(env, []lithpy.Value{lithpy.MakeQExpr(lithpy.Symbol("+"), lithpy.Integer(1), lithpy.Integer(2))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(lithpy.Integer) != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}
