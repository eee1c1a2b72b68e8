package lithpy

import (
	"fmt"
	"io"

	"t73f.de/r/zero/set"
)

// Callable is implemented by every Function value: *Builtin and *Lambda.
type Callable interface {
	Value
	callable()
}

// BuiltinFunc is the host-provided implementation behind a *Builtin. It
// owns args: the caller never touches args again after the call.
type BuiltinFunc func(env *Environment, args []Value) (Value, error)

// Builtin is a handle to a host-provided operation bound to a symbol in
// the root environment.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (*Builtin) callable() {}

// IsNil always returns false: a builtin is never nil.
func (*Builtin) IsNil() bool { return false }

// IsAtom always returns true: a builtin is atomic.
func (*Builtin) IsAtom() bool { return true }

// IsEqual compares two builtins by handle identity: they are equal iff
// they are literally the same registered builtin.
func (b *Builtin) IsEqual(other Value) bool {
	otherB, ok := other.(*Builtin)
	return ok && b == otherB
}

// String returns "<builtin>".
func (*Builtin) String() string { return "<builtin>" }

// Print writes "<builtin>" to w.
func (b *Builtin) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// Lambda is a closure: a formal parameter list, a body, and a captured
// environment whose parent link is rewired at call time.
type Lambda struct {
	Formals *QExpr
	Body    *QExpr
	Env     *Environment
}

func (*Lambda) callable() {}

// MakeLambda constructs a lambda after validating that formals is a
// QExpr of Symbols, optionally containing a single "& rest" tail, with
// no symbol bound twice.
func MakeLambda(formals, body *QExpr, parent *Environment) (*Lambda, error) {
	syms, ok := formals.Symbols()
	if !ok {
		return nil, fmt.Errorf("cannot define non-symbol in formals list")
	}
	if err := checkFormals(syms); err != nil {
		return nil, err
	}
	return &Lambda{
		Formals: formals,
		Body:    body,
		Env:     MakeEnvironment(parent),
	}, nil
}

func checkFormals(syms []Symbol) error {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = string(sym)
	}
	if set.New(names...).Length() != len(names) {
		return fmt.Errorf("symbol defined more than once in formals list")
	}
	for i, sym := range syms {
		if sym == Ampersand && i != len(syms)-2 {
			return fmt.Errorf("Function format invalid. Symbol '&' not followed by single symbol.")
		}
	}
	return nil
}

// IsNil always returns false: a lambda is never nil.
func (*Lambda) IsNil() bool { return false }

// IsAtom always returns true: a lambda is atomic.
func (*Lambda) IsAtom() bool { return true }

// IsEqual compares two lambdas structurally: their formals and bodies
// must be equal. The captured environment is not part of identity.
func (l *Lambda) IsEqual(other Value) bool {
	otherL, ok := other.(*Lambda)
	if !ok {
		return false
	}
	return l.Formals.IsEqual(otherL.Formals) && l.Body.IsEqual(otherL.Body)
}

// String returns "(\\ <formals> <body>)".
func (l *Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

// Print writes the lambda's printed form to w.
func (l *Lambda) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, `(\ `)
	if err != nil {
		return length, err
	}
	n, err := l.Formals.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, " ")
	length += n
	if err != nil {
		return length, err
	}
	n, err = l.Body.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, ")")
	length += n
	return length, err
}

// Copy returns a deep copy of the lambda: fresh formals, body, and a
// copy of the captured environment, independent of l.
func (l *Lambda) Copy() Value {
	return &Lambda{
		Formals: Copy(l.Formals).(*QExpr),
		Body:    Copy(l.Body).(*QExpr),
		Env:     l.Env.Copy(),
	}
}

// GetCallable returns obj as a Callable, if possible.
func GetCallable(obj Value) (Callable, bool) {
	c, ok := obj.(Callable)
	return c, ok
}
