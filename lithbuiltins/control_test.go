package lithbuiltins

import (
	"testing"

	"t73f.de/r/lithpy"
)

func TestIfTrueBranch(t *testing.T) {
	env := lithpy.MakeEnvironment(nil)
	got, err := builtinIf(env, []lithpy.Value{
		lithpy.Boolean(true),
		lithpy.MakeQExpr(lithpy.Integer(1)),
		lithpy.MakeQExpr(lithpy.Integer(2)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(lithpy.Integer) != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestIfFalseBranch(t *testing.T) {
	env := lithpy.MakeEnvironment(nil)
	got, err := builtinIf(env, []lithpy.Value{
		lithpy.Boolean(false),
		lithpy.MakeQExpr(lithpy.Integer(1)),
		lithpy.MakeQExpr(lithpy.Integer(2)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(lithpy.Integer) != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestIfIntegerTruthiness(t *testing.T) {
	env := lithpy.MakeEnvironment(nil)
	got, err := builtinIf(env, []lithpy.Value{
		lithpy.Integer(0),
		lithpy.MakeQExpr(lithpy.Integer(1)),
		lithpy.MakeQExpr(lithpy.Integer(2)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(lithpy.Integer) != 2 {
		t.Fatalf("got %v, want 2 (0 is falsy)", got)
	}
}

func TestIfRejectsNonBooleanCondition(t *testing.T) {
	env := lithpy.MakeEnvironment(nil)
	got, err := builtinIf(env, []lithpy.Value{
		lithpy.MakeStr("x"),
		lithpy.MakeQExpr(),
		lithpy.MakeQExpr(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lithpy.IsError(got) {
		t.Fatalf("expected an Error, got %v", got)
	}
}
