// Copyright © 2019 The Rurtle authors

package environ

// Turtle command builtins.  Each validates its argument shapes, forwards to
// the session turtle, and returns Nothing; the turtle operations themselves
// are total.

var turtleBuiltins = []*langBuiltin{
	{"forward", Formals("length"), builtinForward,
		`Moves the turtle along its heading by the given length, drawing a
		line when the pen is down.`},
	{"backward", Formals("length"), builtinBackward,
		`Moves the turtle against its heading by the given length, drawing a
		line when the pen is down.`},
	{"left", Formals("degrees"), builtinLeft,
		`Turns the turtle counter-clockwise by the given degrees.`},
	{"right", Formals("degrees"), builtinRight,
		`Turns the turtle clockwise by the given degrees.`},
	{"penup", Formals(), builtinPenUp,
		`Lifts the pen so moves stop drawing lines.`},
	{"pendown", Formals(), builtinPenDown,
		`Sinks the pen so moves draw lines again.`},
	{"color", Formals("red", "green", "blue"), builtinColor,
		`Sets the drawing color. Channels are numbers between 0 and 1;
		existing lines keep their color.`},
	{"bgcolor", Formals("red", "green", "blue"), builtinBgColor,
		`Sets the background color of the canvas.`},
	{"teleport", Formals("x", "y"), builtinTeleport,
		`Moves the turtle directly to (x, y) without changing its heading.
		Draws a line when the pen is down. The origin is the center of the
		canvas.`},
	{"setorientation", Formals("degrees"), builtinSetOrientation,
		`Points the turtle at the given heading, 0 facing north and positive
		degrees counting counter-clockwise.`},
	{"home", Formals(), builtinHome,
		`Moves the turtle to the origin and points it north.`},
	{"clear", Formals(), builtinClear,
		`Removes all drawn lines and text. The turtle keeps its position,
		heading, pen state, and color.`},
	{"hide", Formals(), builtinHide,
		`Hides the turtle marker.`},
	{"show", Formals(), builtinShow,
		`Shows the turtle marker again after it has been hidden.`},
	{"write", Formals("text"), builtinWrite,
		`Draws text with its lower-left corner at the turtle's position. The
		turtle does not move.`},
	{"flood", Formals(), builtinFlood,
		`Fills the contiguous region containing the turtle's position with
		the current drawing color.`},
}

// number extracts a numeric argument or fails with a type-mismatch error
// naming the argument's position.
func number(env *Environment, args []Value, i int) (float64, error) {
	if args[i].Type != VNumber {
		return 0, env.Errorf("argument %d is not a number: %s", i+1, args[i].Type)
	}
	return args[i].Num, nil
}

func builtinForward(env *Environment, args []Value) (Value, error) {
	length, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.Forward(length)
	return Nothing(), nil
}

func builtinBackward(env *Environment, args []Value) (Value, error) {
	length, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.Backward(length)
	return Nothing(), nil
}

func builtinLeft(env *Environment, args []Value) (Value, error) {
	deg, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.Left(deg)
	return Nothing(), nil
}

func builtinRight(env *Environment, args []Value) (Value, error) {
	deg, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.Right(deg)
	return Nothing(), nil
}

func builtinPenUp(env *Environment, args []Value) (Value, error) {
	env.turtle.PenUp()
	return Nothing(), nil
}

func builtinPenDown(env *Environment, args []Value) (Value, error) {
	env.turtle.PenDown()
	return Nothing(), nil
}

func rgb(env *Environment, args []Value) (r, g, b float64, err error) {
	if r, err = number(env, args, 0); err != nil {
		return 0, 0, 0, err
	}
	if g, err = number(env, args, 1); err != nil {
		return 0, 0, 0, err
	}
	if b, err = number(env, args, 2); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}

func builtinColor(env *Environment, args []Value) (Value, error) {
	r, g, b, err := rgb(env, args)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.SetColor(r, g, b)
	return Nothing(), nil
}

func builtinBgColor(env *Environment, args []Value) (Value, error) {
	r, g, b, err := rgb(env, args)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.SetBackgroundColor(r, g, b)
	return Nothing(), nil
}

func builtinTeleport(env *Environment, args []Value) (Value, error) {
	x, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	y, err := number(env, args, 1)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.Teleport(x, y)
	return Nothing(), nil
}

func builtinSetOrientation(env *Environment, args []Value) (Value, error) {
	deg, err := number(env, args, 0)
	if err != nil {
		return Nothing(), err
	}
	env.turtle.SetOrientation(deg)
	return Nothing(), nil
}

func builtinHome(env *Environment, args []Value) (Value, error) {
	env.turtle.Home()
	return Nothing(), nil
}

func builtinClear(env *Environment, args []Value) (Value, error) {
	env.turtle.Clear()
	return Nothing(), nil
}

func builtinHide(env *Environment, args []Value) (Value, error) {
	env.turtle.Hide()
	return Nothing(), nil
}

func builtinShow(env *Environment, args []Value) (Value, error) {
	env.turtle.Show()
	return Nothing(), nil
}

func builtinWrite(env *Environment, args []Value) (Value, error) {
	text := args[0]
	if text.Type != VText {
		return Nothing(), env.Errorf("argument is not text: %s", text.Type)
	}
	env.turtle.Write(text.Str)
	return Nothing(), nil
}

func builtinFlood(env *Environment, args []Value) (Value, error) {
	env.turtle.Flood()
	return Nothing(), nil
}
