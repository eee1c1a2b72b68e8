package lithpy

import "io"

// Err represents an error value. Once constructed an Err is never
// mutated; it short-circuits further evaluation within an S-Expression
// (see litheval.Eval).
type Err struct{ msg string }

// MakeErr builds an Err from a literal message. The message is used
// verbatim, never as a format string: callers that need interpolation
// must build the final string themselves (fmt.Sprintf, strings.Builder),
// the same discipline the teacher's own error builtin follows to avoid
// passing user-controlled data to a format verb.
func MakeErr(msg string) *Err { return &Err{msg: msg} }

// Message returns the error's text, without the "Error: " prefix.
func (e *Err) Message() string { return e.msg }

// IsNil always returns false: an error is never nil.
func (*Err) IsNil() bool { return false }

// IsAtom always returns true: an error is atomic.
func (*Err) IsAtom() bool { return true }

// IsEqual compares two errors by message.
func (e *Err) IsEqual(other Value) bool {
	otherE, ok := other.(*Err)
	return ok && e.msg == otherE.msg
}

// String returns "Error: <message>".
func (e *Err) String() string { return "Error: " + e.msg }

// Print writes the error's string representation to w.
func (e *Err) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

// GetError returns obj as an *Err, if possible.
func GetError(obj Value) (*Err, bool) {
	e, ok := obj.(*Err)
	return e, ok
}

// IsError reports whether obj is an error value.
func IsError(obj Value) bool {
	_, ok := obj.(*Err)
	return ok
}
