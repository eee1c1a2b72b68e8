package lithpy

import (
	"fmt"
	"io"
)

// Decimal is a 64-bit IEEE-754 double.
type Decimal float64

// IsNil always returns false: a decimal is never nil.
func (Decimal) IsNil() bool { return false }

// IsAtom always returns true: a decimal is atomic.
func (Decimal) IsAtom() bool { return true }

// IsEqual compares two decimals.
func (d Decimal) IsEqual(other Value) bool {
	otherD, ok := other.(Decimal)
	return ok && d == otherD
}

// String returns the decimal printed with two fractional digits, as
// required by the printed-forms rules.
func (d Decimal) String() string { return fmt.Sprintf("%.2f", float64(d)) }

// Print writes the %.2f representation to w.
func (d Decimal) Print(w io.Writer) (int, error) { return io.WriteString(w, d.String()) }

// GetDecimal returns obj as a Decimal, if possible.
func GetDecimal(obj Value) (Decimal, bool) {
	dec, ok := obj.(Decimal)
	return dec, ok
}

// IsNumber reports whether obj is an Integer or a Decimal.
func IsNumber(obj Value) bool {
	switch obj.(type) {
	case Integer, Decimal:
		return true
	default:
		return false
	}
}

// AsDecimal promotes obj to a float64 if it is a number.
func AsDecimal(obj Value) (float64, bool) {
	switch v := obj.(type) {
	case Integer:
		return float64(v), true
	case Decimal:
		return float64(v), true
	default:
		return 0, false
	}
}
