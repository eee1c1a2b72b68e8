package lithbuiltins

import (
	"fmt"
	"os"

	"t73f.de/r/lithpy"
	"t73f.de/r/lithpy/litheval"
	"t73f.de/r/lithpy/lithreader"
)

// builtinPrint prints each argument separated by a space, followed by a
// newline, and returns the empty S-Expression.
func builtinPrint(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		if _, err := lithpy.Print(os.Stdout, a); err != nil {
			return nil, err
		}
	}
	fmt.Println()
	return lithpy.MakeSExpr(), nil
}

// builtinError constructs an Error value whose message is the given
// string's contents, used verbatim, never as a format string.
func builtinError(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("error", args, 1); e != nil {
		return e, nil
	}
	s, e := assertString("error", args, 0)
	if e != nil {
		return e, nil
	}
	return lithpy.MakeErr(s.GetValue()), nil
}

// builtinExit terminates the process. With no argument it exits 0; with
// one Integer argument it exits with that status code.
func builtinExit(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if len(args) == 0 {
		os.Exit(0)
	}
	if e := assertArity("exit", args, 1); e != nil {
		return e, nil
	}
	code, e := assertInteger("exit", args, 0)
	if e != nil {
		return e, nil
	}
	os.Exit(int(code))
	panic("unreachable")
}

// LoadForms opens path, reads every top-level form from it, and evaluates
// each against env in order. A form that evaluates to an Error is printed
// and evaluation continues with the next form. If onForm is non-nil, it is
// called with each form before that form is evaluated (used by the driver's
// -trace flag). The returned error is the raw os.Open/reader failure,
// undecorated, so every caller can embed its actual text in its own
// "Could not load Library" message instead of substituting the file path.
func LoadForms(env *lithpy.Environment, path string, onForm func(lithpy.Value)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	forms, err := lithreader.New(f).ReadAll()
	if err != nil {
		return err
	}

	for _, form := range forms {
		if onForm != nil {
			onForm(form)
		}
		res := litheval.Eval(env, form)
		if lithpy.IsError(res) {
			fmt.Println(res.String())
		}
	}
	return nil
}

// builtinLoad reads and evaluates every top-level form in the named file
// against the global environment, in order. A form that evaluates to an
// Error is printed and evaluation continues with the next form; a
// failure to open or parse the file itself is returned as an Error whose
// message embeds the underlying error text.
func builtinLoad(env *lithpy.Environment, args []lithpy.Value) (lithpy.Value, error) {
	if e := assertArity("load", args, 1); e != nil {
		return e, nil
	}
	s, e := assertString("load", args, 0)
	if e != nil {
		return e, nil
	}
	path := s.GetValue()

	if err := LoadForms(env.Root(), path, nil); err != nil {
		return lithpy.MakeErr(fmt.Sprintf("Could not load Library %s", err.Error())), nil
	}
	return lithpy.MakeSExpr(), nil
}
