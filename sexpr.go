package lithpy

import (
	"io"
	"strings"
)

// SExpr is an ordered, mutable sequence of values subject to evaluation.
// A nil or empty *SExpr is its own value (an "empty expression").
type SExpr struct{ items []Value }

// MakeSExpr builds an SExpr from the given values.
func MakeSExpr(items ...Value) *SExpr { return &SExpr{items: items} }

// Items returns the S-Expression's children. The returned slice must not
// be mutated by the caller.
func (s *SExpr) Items() []Value {
	if s == nil {
		return nil
	}
	return s.items
}

// Len returns the number of children.
func (s *SExpr) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsNil reports whether the S-Expression has no children.
func (s *SExpr) IsNil() bool { return s == nil || len(s.items) == 0 }

// IsAtom reports whether the S-Expression is atomic: only the empty one is.
func (s *SExpr) IsAtom() bool { return s.IsNil() }

// IsEqual compares two S-Expressions element-wise, in order.
func (s *SExpr) IsEqual(other Value) bool {
	otherS, ok := other.(*SExpr)
	if !ok {
		return false
	}
	if s.Len() != otherS.Len() {
		return false
	}
	for i, item := range s.Items() {
		if !item.IsEqual(otherS.items[i]) {
			return false
		}
	}
	return true
}

// String returns the printed form "(elem elem ...)".
func (s *SExpr) String() string {
	var sb strings.Builder
	_, _ = s.Print(&sb)
	return sb.String()
}

// Print writes "(elem elem ...)" to w.
func (s *SExpr) Print(w io.Writer) (int, error) { return printDelimited(w, s.Items(), '(', ')') }

// Copy returns a deep copy: a new SExpr whose children are themselves
// deep copies, so the result shares no mutable substructure with s.
func (s *SExpr) Copy() Value {
	if s == nil {
		return (*SExpr)(nil)
	}
	items := make([]Value, len(s.items))
	for i, item := range s.items {
		items[i] = Copy(item)
	}
	return &SExpr{items: items}
}

// Set replaces the child at index i.
func (s *SExpr) Set(i int, v Value) { s.items[i] = v }

// ToQExpr reinterprets the S-Expression as an inert Q-Expression,
// consuming s.
func (s *SExpr) ToQExpr() *QExpr {
	if s == nil {
		return nil
	}
	return &QExpr{items: s.items}
}

func printDelimited(w io.Writer, items []Value, open, close byte) (int, error) {
	length := 0
	n, err := w.Write([]byte{open})
	length += n
	if err != nil {
		return length, err
	}
	for i, item := range items {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			length += n
			if err != nil {
				return length, err
			}
		}
		n, err = Print(w, item)
		length += n
		if err != nil {
			return length, err
		}
	}
	n, err = w.Write([]byte{close})
	length += n
	return length, err
}

// GetSExpr returns obj as an *SExpr, if possible.
func GetSExpr(obj Value) (*SExpr, bool) {
	s, ok := obj.(*SExpr)
	return s, ok
}
