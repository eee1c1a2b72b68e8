// Command lithpy is the interactive REPL and batch-file runner for the
// lithpy language: it loads the standard prelude, then either evaluates
// each file given on the command line or drops into an interactive
// read-eval-print loop over stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"t73f.de/r/lithpy"
	"t73f.de/r/lithpy/litheval"
	"t73f.de/r/lithpy/lithbuiltins"
	"t73f.de/r/lithpy/lithreader"
)

const (
	banner          = "Lithpy Version 0.0.0.1.0"
	exitHint        = "Press Ctrl+c to Exit"
	newPrompt       = "lithpy> "
	historyFileName = ".lithpy_history"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	trace := flag.Bool("trace", false, "print each top-level form before it is evaluated")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	env := lithpy.MakeEnvironment(nil)
	lithbuiltins.BindAll(env)
	lithbuiltins.LoadPrelude(env)

	args := flag.Args()
	if len(args) == 0 {
		repl(env, *trace)
		return
	}

	for _, path := range args {
		if err := runFile(env, path, *trace); err != nil {
			logger.Error("could not run file", "path", path, "err", err)
		}
	}
}

// runFile evaluates every top-level form in path against env, printing
// (but not aborting on) any form that evaluates to an Error. It delegates
// the open/read/eval sequence to lithbuiltins.LoadForms, the same routine
// the "load" builtin itself uses, so a load failure is reported identically
// whether it happens from the command line or from inside the language.
func runFile(env *lithpy.Environment, path string, trace bool) error {
	onForm := func(lithpy.Value) {}
	if trace {
		onForm = func(form lithpy.Value) {
			logger.Debug("read form", "form", form.String())
		}
	}
	if err := lithbuiltins.LoadForms(env, path, onForm); err != nil {
		return fmt.Errorf("Could not load Library %s", err.Error())
	}
	return nil
}

// repl runs an interactive session over stdin, printing each input
// line's result. A whole line is read as a single top-level form and
// evaluated directly, unlike runFile, which evaluates each top-level
// form in a file independently.
func repl(env *lithpy.Environment, trace bool) {
	fmt.Println(banner)
	fmt.Println(exitHint)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFileName,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		logger.Error("could not start readline", "err", err)
		os.Exit(1)
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			logger.Error("readline error", "err", err)
			break
		}
		if line == "" {
			continue
		}

		forms, err := lithreader.NewFromString(line).ReadAll()
		if err != nil {
			fmt.Println(err)
			continue
		}
		form := lithpy.MakeSExpr(forms...)
		if trace {
			logger.Debug("read form", "form", form.String())
		}
		res := litheval.Eval(env, form)
		fmt.Println(res.String())
	}
}
