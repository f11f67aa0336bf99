// Copyright © 2019 The Rurtle authors

package rurtletest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ligthyear/rurtle/environ"
	"github.com/ligthyear/rurtle/turtle"
)

// Env bundles a freshly constructed environment with the recording screen
// behind its turtle and a buffer capturing print output.
type Env struct {
	Env    *environ.Environment
	Screen *Screen
	Output *bytes.Buffer
}

// NewEnv returns an environment wired to a recording screen, suitable for
// builtin tests.
func NewEnv(t testing.TB) *Env {
	t.Helper()
	screen := &Screen{}
	out := &bytes.Buffer{}
	env := environ.NewEnv(turtle.New(screen), environ.WithOutput(out))
	return &Env{Env: env, Screen: screen, Output: out}
}

// TestCall is a single builtin invocation with its expected outcome.  A nil
// Result expects Nothing.  A non-empty Err expects a runtime failure whose
// message contains the string.
type TestCall struct {
	Fun    string
	Args   []environ.Value
	Result *environ.Value
	Err    string
}

// TestSequence is a sequence of invocations run against one environment.
type TestSequence []TestCall

// TestSuite is a set of named test sequences.
type TestSuite []struct {
	Name string
	Seq  TestSequence
}

// RunTestSuite runs each sequence in a fresh environment, asserting every
// call's result or failure.
func RunTestSuite(t *testing.T, suite TestSuite) {
	for _, test := range suite {
		t.Run(test.Name, func(t *testing.T) {
			env := NewEnv(t)
			for i, call := range test.Seq {
				got, err := env.Env.Invoke(call.Fun, call.Args)
				if call.Err != "" {
					if assert.Errorf(t, err, "call %d: %s", i, call.Fun) {
						assert.Containsf(t, err.Error(), call.Err, "call %d: %s", i, call.Fun)
					}
					continue
				}
				if !assert.NoErrorf(t, err, "call %d: %s", i, call.Fun) {
					continue
				}
				want := environ.Nothing()
				if call.Result != nil {
					want = *call.Result
				}
				assert.Truef(t, environ.Equal(want, got),
					"call %d: %s returned %s, want %s", i, call.Fun, got, want)
			}
		})
	}
}

// Want marks a call's expected result in TestSuite literals.
func Want(v environ.Value) *environ.Value {
	return &v
}
