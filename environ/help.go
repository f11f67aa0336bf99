// Copyright © 2019 The Rurtle authors

package environ

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// docstringer is implemented by builtins that carry documentation.
type docstringer interface {
	Docstring() string
}

// BuiltinNames returns the names of all registered builtins in sorted order.
func (env *Environment) BuiltinNames() []string {
	names := make([]string, 0, len(env.builtins))
	for name := range env.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderBuiltin writes the signature and documentation of the named builtin
// to w.  It returns an error when no such builtin is registered.
func (env *Environment) RenderBuiltin(w io.Writer, name string) error {
	fn := env.builtins[name]
	if fn == nil {
		return fmt.Errorf("unknown builtin: %s", name)
	}
	fmt.Fprintf(w, "%s %s\n", fn.Name(), strings.Join(fn.Formals(), " "))
	if doc, ok := fn.(docstringer); ok && doc.Docstring() != "" {
		fmt.Fprintln(w, indent.String(wordwrap.String(dedentDoc(doc.Docstring()), 72), 2))
	}
	return nil
}

// dedentDoc strips the leading indentation that raw string literals in the
// builtin tables carry on their continuation lines.
func dedentDoc(doc string) string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.Join(lines, " ")
}
