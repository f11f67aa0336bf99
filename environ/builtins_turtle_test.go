// Copyright © 2019 The Rurtle authors

package environ_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ligthyear/rurtle/environ"
	"github.com/ligthyear/rurtle/rurtletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, env *rurtletest.Env, fun string, args ...float64) {
	t.Helper()
	argv := make([]environ.Value, len(args))
	for i, x := range args {
		argv[i] = environ.Number(x)
	}
	_, err := env.Env.Invoke(fun, argv)
	require.NoError(t, err, fun)
}

func TestMovementScenario(t *testing.T) {
	env := rurtletest.NewEnv(t)

	invoke(t, env, "forward", 100)
	x, y := env.Env.Turtle().Position()
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 100, y, 1e-4)
	require.Len(t, env.Screen.Lines, 1)
	line := env.Screen.Lines[0]
	assert.InDelta(t, 0, line.From.X, 1e-4)
	assert.InDelta(t, 0, line.From.Y, 1e-4)
	assert.InDelta(t, 0, line.To.X, 1e-4)
	assert.InDelta(t, 100, line.To.Y, 1e-4)

	invoke(t, env, "right", 90)
	assert.InDelta(t, -90, env.Env.Turtle().Orientation(), 1e-4)

	invoke(t, env, "forward", 50)
	x, y = env.Env.Turtle().Position()
	assert.InDelta(t, 50, x, 1e-4)
	assert.InDelta(t, 100, y, 1e-4)
}

func TestPenStateControlsLines(t *testing.T) {
	env := rurtletest.NewEnv(t)

	invoke(t, env, "penup")
	invoke(t, env, "forward", 10)
	invoke(t, env, "teleport", 30, 40)
	assert.Len(t, env.Screen.Lines, 0, "pen-up moves draw nothing")
	assert.Equal(t, 2, env.Screen.PosUpdates, "every move still pushes the pose")

	invoke(t, env, "pendown")
	invoke(t, env, "forward", 10)
	assert.Len(t, env.Screen.Lines, 1, "pen-down moves draw exactly one line each")
}

func TestTurtleCommandTypeMismatch(t *testing.T) {
	env := rurtletest.NewEnv(t)
	_, err := env.Env.Invoke("forward", []environ.Value{environ.Text("far")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")

	_, err = env.Env.Invoke("color", []environ.Value{
		environ.Number(1), environ.Text("0"), environ.Number(0),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2 is not a number")

	_, err = env.Env.Invoke("write", []environ.Value{environ.Number(7)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not text")
}

func TestVisualCommands(t *testing.T) {
	env := rurtletest.NewEnv(t)

	invoke(t, env, "color", 1, 0, 0)
	assert.Equal(t, 1.0, env.Screen.Color.R)
	assert.Equal(t, 1.0, env.Screen.Color.A, "drawing color is always opaque")

	invoke(t, env, "bgcolor", 0, 0, 1)
	assert.Equal(t, 1.0, env.Screen.Background.B)

	invoke(t, env, "hide")
	assert.True(t, env.Screen.Hidden)
	invoke(t, env, "show")
	assert.False(t, env.Screen.Hidden)

	_, err := env.Env.Invoke("write", []environ.Value{environ.Text("hi")})
	require.NoError(t, err)
	require.Len(t, env.Screen.Texts, 1)
	assert.Equal(t, "hi", env.Screen.Texts[0].Body)

	invoke(t, env, "flood")
	assert.Len(t, env.Screen.Fills, 1)

	invoke(t, env, "clear")
	assert.Equal(t, 1, env.Screen.Clears)
}

func TestHomeRedrawsTwice(t *testing.T) {
	env := rurtletest.NewEnv(t)
	invoke(t, env, "teleport", 17, -3)
	invoke(t, env, "left", 45)
	before := env.Screen.Redraws
	invoke(t, env, "home")
	assert.Equal(t, before+2, env.Screen.Redraws, "home is a move plus a reorientation")
	x, y := env.Env.Turtle().Position()
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 0, y, 1e-4)
	assert.InDelta(t, 0, env.Env.Turtle().Orientation(), 1e-4)
}

func TestScreenshotWritesPNG(t *testing.T) {
	env := rurtletest.NewEnv(t)
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := env.Env.Invoke("screenshot", []environ.Value{environ.Text(path)})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestScreenshotIOError(t *testing.T) {
	env := rurtletest.NewEnv(t)
	invoke(t, env, "forward", 10)
	env.Env.Put("x", environ.Number(1))
	linesBefore := len(env.Screen.Lines)

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	_, err := env.Env.Invoke("screenshot", []environ.Value{environ.Text(path)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create image file")

	// The failed export changed neither the canvas nor the environment.
	assert.Len(t, env.Screen.Lines, linesBefore)
	v, ok := env.Env.Get("x")
	require.True(t, ok)
	assert.True(t, environ.Equal(environ.Number(1), v))
	x, y := env.Env.Turtle().Position()
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 10, y, 1e-4)
}

func TestScreenshotCaptureError(t *testing.T) {
	env := rurtletest.NewEnv(t)
	env.Screen.ScreenshotErr = assert.AnError
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := env.Env.Invoke("screenshot", []environ.Value{environ.Text(path)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture bitmap")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created when capture fails")
}

func TestScreenshotTypeMismatch(t *testing.T) {
	env := rurtletest.NewEnv(t)
	_, err := env.Env.Invoke("screenshot", []environ.Value{environ.Number(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not text")
}
