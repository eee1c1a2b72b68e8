package lithbuiltins

import (
	"testing"

	"t73f.de/r/lithpy"
)

func TestBuiltinErrorUsesMessageVerbatim(t *testing.T) {
	got := call(t, builtinError, lithpy.MakeStr("%s oops"))
	e, ok := lithpy.GetError(got)
	if !ok || e.Message() != "%s oops" {
		t.Fatalf("got %v, want the literal message preserved, not interpreted as a format string", got)
	}
}

func TestBuiltinLoadMissingFile(t *testing.T) {
	got := call(t, builtinLoad, lithpy.MakeStr("/nonexistent/path/does-not-exist.lspy"))
	if !lithpy.IsError(got) {
		t.Fatalf("expected an Error for a missing file, got %v", got)
	}
}
