package lithbuiltins

import (
	"log/slog"
	"os"

	"t73f.de/r/lithpy"
)

var preludeLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// preludeFiles are loaded, in order, into the root environment at
// startup, before either the REPL or a batch file runs. A missing file
// is reported but does not abort startup: the interpreter is still
// usable without its standard library, just with fewer names bound.
var preludeFiles = []string{
	"src/stdlib/prelude.lspy",
	"src/stdlib/fun.lthpy",
}

// LoadPrelude loads every prelude file into env, which must be the root
// environment, by calling the same "load" builtin a script would use
// (mirroring the reference interpreter's own lenv_load_file, which calls
// builtin_load directly rather than re-reading the file itself).
func LoadPrelude(env *lithpy.Environment) {
	for _, path := range preludeFiles {
		res, err := builtinLoad(env, []lithpy.Value{lithpy.MakeStr(path)})
		if err != nil {
			preludeLogger.Error("could not load prelude file", "path", path, "err", err)
			continue
		}
		if lithpy.IsError(res) {
			preludeLogger.Error("could not load prelude file", "path", path, "err", res.String())
		}
	}
}
