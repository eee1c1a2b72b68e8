package lithbuiltins

import (
	"testing"

	"t73f.de/r/lithpy"
)

func call(t *testing.T, fn lithpy.BuiltinFunc, args ...lithpy.Value) lithpy.Value {
	t.Helper()
	env := lithpy.MakeEnvironment(nil)
	got, err := fn(env, args)
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	return got
}

func TestAddIntegers(t *testing.T) {
	got := call(t, builtinAdd, lithpy.Integer(1), lithpy.Integer(2), lithpy.Integer(3))
	if got.(lithpy.Integer) != 6 {
		t.Fatalf("got %v, want 6", got)
	}
}

func TestAddPromotesToDecimal(t *testing.T) {
	got := call(t, builtinAdd, lithpy.Integer(1), lithpy.Decimal(2.5))
	if got.(lithpy.Decimal) != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
}

func TestSubUnaryNegation(t *testing.T) {
	got := call(t, builtinSub, lithpy.Integer(5))
	if got.(lithpy.Integer) != -5 {
		t.Fatalf("got %v, want -5", got)
	}
}

func TestDivByZeroInteger(t *testing.T) {
	got := call(t, builtinDiv, lithpy.Integer(1), lithpy.Integer(0))
	e, ok := lithpy.GetError(got)
	if !ok || e.Message() != "Division By Zero." {
		t.Fatalf("got %v, want an Error 'Division By Zero.'", got)
	}
}

func TestDivByZeroDecimal(t *testing.T) {
	got := call(t, builtinDiv, lithpy.Decimal(1), lithpy.Decimal(0))
	e, ok := lithpy.GetError(got)
	if !ok || e.Message() != "Division by zero!" {
		t.Fatalf("got %v, want an Error 'Division by zero!'", got)
	}
}

func TestArithmeticRejectsNonNumber(t *testing.T) {
	got := call(t, builtinAdd, lithpy.Integer(1), lithpy.MakeStr("x"))
	if !lithpy.IsError(got) {
		t.Fatalf("expected an Error, got %v", got)
	}
}

func TestPowInteger(t *testing.T) {
	got := call(t, builtinPow, lithpy.Integer(2), lithpy.Integer(10))
	if got.(lithpy.Integer) != 1024 {
		t.Fatalf("got %v, want 1024", got)
	}
}

func TestMinMax(t *testing.T) {
	got := call(t, builtinMin, lithpy.Integer(3), lithpy.Integer(1), lithpy.Integer(2))
	if got.(lithpy.Integer) != 1 {
		t.Fatalf("min: got %v, want 1", got)
	}
	got = call(t, builtinMax, lithpy.Integer(3), lithpy.Integer(1), lithpy.Integer(2))
	if got.(lithpy.Integer) != 3 {
		t.Fatalf("max: got %v, want 3", got)
	}
}
