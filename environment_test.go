package lithpy

import "testing"

func TestPutAndGet(t *testing.T) {
	env := MakeEnvironment(nil)
	env.Put(Symbol("x"), Integer(10))

	v, err := env.Get(Symbol("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(Integer) != 10 {
		t.Fatalf("got %v, want 10", v)
	}
}

func TestGetUnbound(t *testing.T) {
	env := MakeEnvironment(nil)
	if _, err := env.Get(Symbol("nope")); err == nil {
		t.Fatal("expected an Unbound Symbol error")
	}
}

func TestGetWalksParentChain(t *testing.T) {
	root := MakeEnvironment(nil)
	root.Put(Symbol("x"), Integer(1))
	child := MakeEnvironment(root)

	v, err := child.Get(Symbol("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(Integer) != 1 {
		t.Fatalf("got %v, want 1", v)
	}
}

func TestPutIsLocalOnly(t *testing.T) {
	root := MakeEnvironment(nil)
	root.Put(Symbol("x"), Integer(1))
	child := MakeEnvironment(root)
	child.Put(Symbol("x"), Integer(2))

	rv, _ := root.Get(Symbol("x"))
	if rv.(Integer) != 1 {
		t.Fatalf("child Put leaked into parent: got %v", rv)
	}
	cv, _ := child.Get(Symbol("x"))
	if cv.(Integer) != 2 {
		t.Fatalf("got %v, want 2", cv)
	}
}

func TestDefWritesToRoot(t *testing.T) {
	root := MakeEnvironment(nil)
	child := MakeEnvironment(root)
	child.Def(Symbol("g"), Integer(7))

	if _, err := root.Get(Symbol("g")); err != nil {
		t.Fatalf("Def did not reach the root frame: %v", err)
	}
}

func TestGetReturnsCopyNotAlias(t *testing.T) {
	env := MakeEnvironment(nil)
	q := MakeQExpr(Integer(1))
	env.Put(Symbol("q"), q)

	got, _ := env.Get(Symbol("q"))
	got.(*QExpr).items[0] = Integer(99)

	again, _ := env.Get(Symbol("q"))
	if again.(*QExpr).Items()[0].(Integer) != 1 {
		t.Fatal("mutating a Get result mutated the stored binding")
	}
}

func TestEnvironmentCopySharesParent(t *testing.T) {
	root := MakeEnvironment(nil)
	child := MakeEnvironment(root)
	child.Put(Symbol("x"), Integer(1))

	cp := child.Copy()
	if cp.Parent() != root {
		t.Fatal("Copy should share the parent pointer")
	}
	cp.Put(Symbol("x"), Integer(2))

	v, _ := child.Get(Symbol("x"))
	if v.(Integer) != 1 {
		t.Fatal("Copy's bindings should be independent of the original")
	}
}

func TestLocalsExcludesParent(t *testing.T) {
	root := MakeEnvironment(nil)
	root.Put(Symbol("g"), Integer(1))
	child := MakeEnvironment(root)
	child.Put(Symbol("x"), Integer(2))

	locals := child.Locals()
	if locals.Len() != 1 {
		t.Fatalf("Locals should only report the own frame, got %d entries", locals.Len())
	}
}
