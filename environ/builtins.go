// Copyright © 2019 The Rurtle authors

package environ

import (
	"fmt"
	"image/png"
	"os"

	"github.com/pkg/errors"
)

// VarArgSymbol marks the last formal of a variadic builtin.
const VarArgSymbol = "&rest"

// Builtin is a native command.  It receives the environment by mutable
// reference together with the already-evaluated arguments and produces a
// value or a runtime failure.
type Builtin func(env *Environment, args []Value) (Value, error)

// BuiltinDef is a named builtin command.
type BuiltinDef interface {
	Name() string
	Formals() []string
	Eval(env *Environment, args []Value) (Value, error)
}

type langBuiltin struct {
	name    string
	formals []string
	fun     Builtin
	doc     string
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() []string {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *Environment, args []Value) (Value, error) {
	return fun.fun(env, args)
}

// Docstring returns the builtin's documentation.
func (fun *langBuiltin) Docstring() string {
	return fun.doc
}

// minArity returns the number of arguments a builtin requires.  A trailing
// VarArgSymbol formal accepts any number of remaining arguments, including
// zero.
func minArity(formals []string) int {
	if n := len(formals); n > 0 && formals[n-1] == VarArgSymbol {
		return n - 1
	}
	return len(formals)
}

// Formals is a convenience constructor for a builtin's formal argument
// names.
func Formals(argSymbols ...string) []string {
	return argSymbols
}

var langBuiltins = []*langBuiltin{
	{"make", Formals("name", "value"), builtinMake,
		`Binds name to value in the current (innermost) scope. The binding
		disappears when the scope is left.`},
	{"global", Formals("name", "value"), builtinGlobal,
		`Binds name to value in the global scope so it stays visible from
		any scope entered afterwards, regardless of the current nesting.`},
	{"head", Formals("list"), builtinHead,
		`Returns the first element of a list, or nothing when the list is
		empty.`},
	{"tail", Formals("list"), builtinTail,
		`Returns a new list containing all but the first element, or nothing
		when the list is empty.`},
	{"length", Formals("list"), builtinLength,
		`Returns the number of elements in a list.`},
	{"isempty", Formals("list"), builtinIsEmpty,
		`Returns 1 when the list has no elements, otherwise 0.`},
	{"getindex", Formals("list", "index"), builtinGetIndex,
		`Returns the element at the given zero-based index. The index is
		truncated toward zero; an index past the end of the list is a
		runtime failure naming the index and the list length.`},
	{"not", Formals("value"), builtinNot,
		`Returns 1 when the value is false (the number zero or nothing),
		otherwise 0. Never fails.`},
	{"print", Formals(VarArgSymbol), builtinPrint,
		`Writes its arguments to the output, space separated and newline
		terminated.`},
	{"screenshot", Formals("path"), builtinScreenshot,
		`Captures the current canvas and writes it to the given path as a
		PNG file, overwriting any existing file.`},
}

// AddBuiltins registers builtin commands, replacing any previously
// registered command with the same name.
func (env *Environment) AddBuiltins(funs ...*langBuiltin) {
	for _, fn := range funs {
		env.builtins[fn.name] = fn
	}
}

// Builtin returns the named builtin command, or nil when no such command is
// registered.
func (env *Environment) Builtin(name string) BuiltinDef {
	return env.builtins[name]
}

// Invoke runs the named builtin with the given arguments.  The evaluator
// guarantees args are fully evaluated; Invoke still rejects calls with fewer
// arguments than the builtin requires so a malformed call surfaces as a
// runtime failure instead of undefined behavior.
func (env *Environment) Invoke(name string, args []Value) (Value, error) {
	fn := env.builtins[name]
	if fn == nil {
		return Nothing(), Errorf(name, "unknown builtin")
	}
	if len(args) < minArity(fn.Formals()) {
		return Nothing(), Errorf(name, "expected %d arguments, got %d",
			minArity(fn.Formals()), len(args))
	}
	if env.profiler != nil && env.profiler.IsEnabled() {
		defer env.profiler.Start(name)()
	}
	env.fun = name
	defer func() { env.fun = "" }()
	return fn.Eval(env, args)
}

func builtinMake(env *Environment, args []Value) (Value, error) {
	name := args[0]
	if name.Type != VText {
		return Nothing(), env.Errorf("first argument is not text: %s", name)
	}
	env.Put(name.Str, args[1])
	return Nothing(), nil
}

func builtinGlobal(env *Environment, args []Value) (Value, error) {
	name := args[0]
	if name.Type != VText {
		return Nothing(), env.Errorf("first argument is not text: %s", name)
	}
	env.PutGlobal(name.Str, args[1])
	return Nothing(), nil
}

func builtinHead(env *Environment, args []Value) (Value, error) {
	v := args[0]
	if v.Type != VList {
		return Nothing(), env.Errorf("argument is not a list: %s", v.Type)
	}
	if len(v.Cells) == 0 {
		return Nothing(), nil
	}
	return v.Cells[0], nil
}

func builtinTail(env *Environment, args []Value) (Value, error) {
	v := args[0]
	if v.Type != VList {
		return Nothing(), env.Errorf("argument is not a list: %s", v.Type)
	}
	if len(v.Cells) == 0 {
		return Nothing(), nil
	}
	cells := make([]Value, len(v.Cells)-1)
	copy(cells, v.Cells[1:])
	return List(cells), nil
}

func builtinLength(env *Environment, args []Value) (Value, error) {
	v := args[0]
	if v.Type != VList {
		return Nothing(), env.Errorf("argument is not a list: %s", v.Type)
	}
	return Number(float64(len(v.Cells))), nil
}

func builtinIsEmpty(env *Environment, args []Value) (Value, error) {
	v := args[0]
	if v.Type != VList {
		return Nothing(), env.Errorf("argument is not a list: %s", v.Type)
	}
	if len(v.Cells) == 0 {
		return Number(1), nil
	}
	return Number(0), nil
}

func builtinGetIndex(env *Environment, args []Value) (Value, error) {
	lis, n := args[0], args[1]
	if lis.Type != VList {
		return Nothing(), env.Errorf("first argument is not a list: %s", lis.Type)
	}
	if n.Type != VNumber {
		return Nothing(), env.Errorf("second argument is not a number: %s", n.Type)
	}
	// Truncation toward zero, mirroring the numeric-to-index conversion of
	// the language.
	idx := int(n.Num)
	if idx < 0 {
		return Nothing(), env.Errorf("index cannot be negative: %d", idx)
	}
	if idx >= len(lis.Cells) {
		return Nothing(), env.Errorf("index out of bounds: %d >= %d", idx, len(lis.Cells))
	}
	return lis.Cells[idx], nil
}

func builtinNot(env *Environment, args []Value) (Value, error) {
	if Not(args[0]) {
		return Number(1), nil
	}
	return Number(0), nil
}

func builtinPrint(env *Environment, args []Value) (Value, error) {
	for i, v := range args {
		if i > 0 {
			fmt.Fprint(env.stdout, " ")
		}
		fmt.Fprint(env.stdout, v.String())
	}
	fmt.Fprintln(env.stdout)
	return Nothing(), nil
}

func builtinScreenshot(env *Environment, args []Value) (Value, error) {
	path := args[0]
	if path.Type != VText {
		return Nothing(), env.Errorf("argument is not text: %s", path.Type)
	}
	img, err := env.turtle.Screen().Screenshot()
	if err != nil {
		return Nothing(), env.Error(errors.Wrap(err, "capture bitmap"))
	}
	f, err := os.Create(path.Str)
	if err != nil {
		return Nothing(), env.Error(errors.Wrap(err, "create image file"))
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return Nothing(), env.Error(errors.Wrap(err, "encode image"))
	}
	if err := f.Close(); err != nil {
		return Nothing(), env.Error(errors.Wrap(err, "write image file"))
	}
	return Nothing(), nil
}
