// Package lithpy provides the value model and environment of the lithpy
// s-expression interpreter: tagged values, their deep-copy and equality
// semantics, and the lexical environment chain that binds symbols to
// values. The reader, evaluator, and built-in surface live in the
// sibling packages lithreader, litheval, and lithbuiltins.
package lithpy

import (
	"fmt"
	"io"
)

// Value is the generic interface every lithpy value must implement.
type Value interface {
	fmt.Stringer

	// IsNil reports whether the value is the empty S-Expression or
	// Q-Expression, the only "nil-like" values in lithpy.
	IsNil() bool

	// IsAtom reports whether the value is not further decomposable:
	// everything except a non-empty SExpr or QExpr.
	IsAtom() bool

	// IsEqual compares two values for deep, structural equality.
	IsEqual(Value) bool
}

// Printable is implemented by values with a representation that differs
// from their String method, written directly to a writer.
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes the string representation of obj to w.
func Print(w io.Writer, obj Value) (int, error) {
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// IsNil reports whether obj is nil or its IsNil method returns true.
func IsNil(obj Value) bool { return obj == nil || obj.IsNil() }

// Copier is implemented by values whose copy must do more than a shallow
// Go assignment to preserve ownership independence (invariant 1 of the
// value model: every value owns its contents).
type Copier interface {
	Copy() Value
}

// Copy returns a deep copy of obj. Atoms (Integer, Decimal, Boolean,
// Symbol, Str, *Err) are immutable in this implementation, so a Go
// value copy already gives the required ownership independence; SExpr,
// QExpr, and *Lambda implement Copier explicitly because they hold
// nested, independently-owned Values.
func Copy(obj Value) Value {
	if obj == nil {
		return nil
	}
	if c, ok := obj.(Copier); ok {
		return c.Copy()
	}
	return obj
}

// TypeName returns the human-readable type name used in error messages,
// matching the ltype_name table of the original implementation.
func TypeName(obj Value) string {
	switch obj.(type) {
	case Boolean:
		return "Boolean"
	case *Builtin, *Lambda:
		return "Function"
	case Integer, Decimal:
		return "Number"
	case *Err:
		return "Error"
	case Symbol:
		return "Symbol"
	case Str:
		return "String"
	case *SExpr:
		return "S-Expression"
	case *QExpr:
		return "Q-Expression"
	default:
		return "Unknown"
	}
}
