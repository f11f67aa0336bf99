// Copyright © 2019 The Rurtle authors

// Package environ implements the execution substrate of the Rurtle scripting
// language: the value model, the scoped environment builtin commands operate
// on, and the builtin library itself.  The lexer, parser, and evaluator are
// external; they hand the runtime a builtin name together with a slice of
// already-computed values and receive a value or a runtime failure back.
package environ

import (
	"strconv"
	"strings"
)

// RurtleVersion is the language version implemented by this runtime.
const RurtleVersion = "0.2"

// VType is the type tag of a Value.
type VType uint

// Possible VType values.
const (
	// VInvalid (0) is not a valid rurtle type.
	VInvalid VType = iota
	// VNumber values store a float64 in the Value.Num field.
	VNumber
	// VText values store an immutable string in the Value.Str field.
	VText
	// VList values store an ordered, possibly heterogeneous sequence in the
	// Value.Cells field.
	VList
	// VNothing is the absence of a value, produced by commands that exist
	// for their side effects.
	VNothing
	// VTypeMax is not a real type; it bounds the valid VType values.
	VTypeMax
)

var vtypeStrings = []string{
	VInvalid: "INVALID",
	VNumber:  "number",
	VText:    "text",
	VList:    "list",
	VNothing: "nothing",
}

func (t VType) String() string {
	if t >= VType(len(vtypeStrings)) {
		return vtypeStrings[VInvalid]
	}
	return vtypeStrings[t]
}

// Value is a rurtle value.  Values are immutable once constructed; list
// operations return new lists instead of mutating in place.
type Value struct {
	// Type is the tag deciding which of the remaining fields is meaningful.
	Type VType

	// Num is used by VNumber values.
	Num float64

	// Str is used by VText values.
	Str string

	// Cells is used by VList values.
	Cells []Value
}

// Number returns a numeric value.
func Number(x float64) Value {
	return Value{Type: VNumber, Num: x}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Type: VText, Str: s}
}

// List returns a list value holding cells.  The slice is used as the list's
// backing storage and must not be modified afterwards.
func List(cells []Value) Value {
	return Value{Type: VList, Cells: cells}
}

// Nothing returns the absent value.
func Nothing() Value {
	return Value{Type: VNothing}
}

// True interprets v as a boolean.  A number is false iff it is zero and
// Nothing is false; text and lists are always true.  This is the single
// truthiness rule used by the runtime.
func True(v Value) bool {
	switch v.Type {
	case VNumber:
		return v.Num != 0
	case VNothing:
		return false
	default:
		return true
	}
}

// Not interprets v as a boolean and returns its negation.
func Not(v Value) bool {
	return !True(v)
}

// Equal reports whether two values are structurally equal.  Lists are equal
// when they have equal elements in the same order.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case VNumber:
		return a.Num == b.Num
	case VText:
		return a.Str == b.Str
	case VList:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders v for diagnostics and the print builtin.  Numbers use the
// shortest representation that round-trips, lists render their elements
// space separated inside brackets, and Nothing renders as the word nothing.
func (v Value) String() string {
	switch v.Type {
	case VNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case VText:
		return v.Str
	case VList:
		parts := make([]string, len(v.Cells))
		for i, cell := range v.Cells {
			parts[i] = cell.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case VNothing:
		return "nothing"
	}
	return "#INVALID"
}
