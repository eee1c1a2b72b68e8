// Package lithbuiltins provides the built-in operator surface bound
// into the root environment: arithmetic, list/Q-expression operations,
// comparison and logic, variable and function forms, and I/O/meta
// operations.
package lithbuiltins

import (
	"fmt"

	"t73f.de/r/lithpy"
)

// assertArity returns an Error value unless args has exactly n elements.
func assertArity(name string, args []lithpy.Value, n int) *lithpy.Err {
	if len(args) == n {
		return nil
	}
	return lithpy.MakeErr(fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		name, len(args), n))
}

// assertMinArity returns an Error value unless args has at least n elements.
func assertMinArity(name string, args []lithpy.Value, n int) *lithpy.Err {
	if len(args) >= n {
		return nil
	}
	return lithpy.MakeErr(fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.",
		name, len(args), n))
}

// assertQExpr returns an Error value unless args[index] is a QExpr,
// otherwise it returns the QExpr.
func assertQExpr(name string, args []lithpy.Value, index int) (*lithpy.QExpr, *lithpy.Err) {
	q, ok := lithpy.GetQExpr(args[index])
	if !ok {
		return nil, typeErr(name, args, index, "Q-Expression")
	}
	return q, nil
}

// assertNotEmpty returns an Error value unless q is non-empty.
func assertNotEmpty(name string, q *lithpy.QExpr, index int) *lithpy.Err {
	if q.Len() != 0 {
		return nil
	}
	return lithpy.MakeErr(fmt.Sprintf("Function '%s' passed {} for argument %d.", name, index))
}

// assertString returns an Error value unless args[index] is a Str.
func assertString(name string, args []lithpy.Value, index int) (lithpy.Str, *lithpy.Err) {
	s, ok := lithpy.GetString(args[index])
	if !ok {
		return lithpy.Str{}, typeErr(name, args, index, "String")
	}
	return s, nil
}

// assertInteger returns an Error value unless args[index] is an Integer.
func assertInteger(name string, args []lithpy.Value, index int) (lithpy.Integer, *lithpy.Err) {
	i, ok := lithpy.GetInteger(args[index])
	if !ok {
		return 0, typeErr(name, args, index, "Number")
	}
	return i, nil
}

func typeErr(name string, args []lithpy.Value, index int, expect string) *lithpy.Err {
	return lithpy.MakeErr(fmt.Sprintf(
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		name, index, lithpy.TypeName(args[index]), expect))
}
