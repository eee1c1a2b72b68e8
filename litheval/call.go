package litheval

import (
	"fmt"

	"t73f.de/r/lithpy"
)

// callLambda implements the lambda branch of the call protocol: binding
// formals to arguments in order, capturing a "&" rest-parameter, and
// either evaluating the body (all formals bound) or returning a fresh
// partially-applied closure (formals remain).
func callLambda(callerEnv *lithpy.Environment, f *lithpy.Lambda, args []lithpy.Value, depth int) lithpy.Value {
	formals, ok := f.Formals.Symbols()
	if !ok {
		return lithpy.MakeErr("Function format invalid. Formals list must contain only symbols.")
	}
	given, total := len(args), len(formals)

	fi, ai := 0, 0
	for ai < len(args) {
		if fi >= len(formals) {
			return lithpy.MakeErr(fmt.Sprintf(
				"Function passed too many arguments. Got %d, Expected %d.", given, total))
		}
		sym := formals[fi]
		if sym == lithpy.Ampersand {
			if len(formals)-fi-1 != 1 {
				return lithpy.MakeErr(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := formals[fi+1]
			f.Env.Put(rest, lithpy.MakeQExpr(args[ai:]...))
			fi += 2
			ai = len(args)
			break
		}
		f.Env.Put(sym, args[ai])
		fi++
		ai++
	}

	if fi < len(formals) && formals[fi] == lithpy.Ampersand {
		if len(formals)-fi != 2 {
			return lithpy.MakeErr(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		f.Env.Put(formals[fi+1], lithpy.MakeQExpr())
		fi += 2
	}

	if fi == len(formals) {
		f.Env.SetParent(callerEnv)
		body := lithpy.Copy(f.Body).(*lithpy.QExpr)
		return eval(f.Env, body.ToSExpr(), depth+1)
	}

	// Partial application: carry the remaining formals and the
	// accumulated bindings forward in a fresh closure.
	f.Formals = lithpy.MakeQExpr(symbolValues(formals[fi:])...)
	return lithpy.Copy(f)
}

func symbolValues(syms []lithpy.Symbol) []lithpy.Value {
	vals := make([]lithpy.Value, len(syms))
	for i, s := range syms {
		vals[i] = s
	}
	return vals
}
