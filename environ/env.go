// Copyright © 2019 The Rurtle authors

package environ

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ligthyear/rurtle/turtle"
)

// Frame is one scope level mapping names to values.  Keys are unique within
// a frame; the last write wins.
type Frame map[string]Value

// Environment is the scope stack the evaluator threads through every builtin
// call.  It owns the session turtle and is used by exactly one evaluator
// goroutine, so it needs no synchronization.
//
// The frame stack always contains at least one frame, the global frame
// created by NewEnv.  Local frames are pushed when a scripted function is
// entered and popped on return; push and pop are driven by the evaluator,
// not by builtins.
type Environment struct {
	frames   []Frame
	turtle   *turtle.Turtle
	stdout   io.Writer
	builtins map[string]BuiltinDef
	profiler Profiler

	// fun is the name of the builtin currently executing, used to attribute
	// runtime failures.  Empty outside of Invoke.
	fun string
}

// Config adjusts an Environment during construction.
type Config func(env *Environment)

// WithOutput directs output of the print builtin to w instead of stdout.
func WithOutput(w io.Writer) Config {
	return func(env *Environment) { env.stdout = w }
}

// WithProfiler installs a profiler whose hooks run around every builtin
// invocation.
func WithProfiler(p Profiler) Config {
	return func(env *Environment) { env.profiler = p }
}

// NewEnv returns an environment holding only the global frame, bound to t
// and loaded with the default builtin library.
func NewEnv(t *turtle.Turtle, config ...Config) *Environment {
	env := &Environment{
		frames:   []Frame{make(Frame)},
		turtle:   t,
		stdout:   os.Stdout,
		builtins: make(map[string]BuiltinDef),
	}
	env.AddBuiltins(langBuiltins...)
	env.AddBuiltins(turtleBuiltins...)
	for _, fn := range config {
		fn(env)
	}
	return env
}

// Turtle returns the session turtle.
func (env *Environment) Turtle() *turtle.Turtle {
	return env.turtle
}

// SetProfiler installs a profiler after construction.  Annotators in the
// x/profiler package attach themselves through this when enabled.
func (env *Environment) SetProfiler(p Profiler) {
	env.profiler = p
}

// Depth returns the number of frames on the scope stack.
func (env *Environment) Depth() int {
	return len(env.frames)
}

// PushFrame enters a new innermost scope.
func (env *Environment) PushFrame() {
	env.frames = append(env.frames, make(Frame))
}

// PopFrame leaves the innermost scope.  The global frame is never popped;
// attempting to is an evaluator bug and returns an error.
func (env *Environment) PopFrame() error {
	if len(env.frames) == 1 {
		return errors.New("cannot pop the global frame")
	}
	env.frames = env.frames[:len(env.frames)-1]
	return nil
}

// Current returns the innermost frame, where local bindings are created.
func (env *Environment) Current() Frame {
	return env.frames[len(env.frames)-1]
}

// Global returns the outermost frame.  Bindings written here are visible
// from any scope entered afterwards.
func (env *Environment) Global() Frame {
	return env.frames[0]
}

// Get resolves name starting at the innermost frame and walking outward.
func (env *Environment) Get(name string) (Value, bool) {
	for i := len(env.frames) - 1; i >= 0; i-- {
		if v, ok := env.frames[i][name]; ok {
			return v, true
		}
	}
	return Nothing(), false
}

// Put binds name in the current (innermost) frame.
func (env *Environment) Put(name string, v Value) {
	env.Current()[name] = v
}

// PutGlobal binds name in the global (outermost) frame regardless of the
// current scope depth.
func (env *Environment) PutGlobal(name string, v Value) {
	env.Global()[name] = v
}

// Errorf returns a runtime failure attributed to the builtin currently
// executing.
func (env *Environment) Errorf(format string, v ...interface{}) error {
	return &RuntimeError{Fun: env.fun, Err: fmt.Errorf(format, v...)}
}

// Error returns a runtime failure wrapping err, attributed to the builtin
// currently executing.
func (env *Environment) Error(err error) error {
	return &RuntimeError{Fun: env.fun, Err: err}
}
