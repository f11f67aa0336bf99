// Copyright © 2019 The Rurtle authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ligthyear/rurtle/environ"
	"github.com/ligthyear/rurtle/graphic"
	"github.com/ligthyear/rurtle/turtle"
)

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [NAME]",
	Short: "Show documentation for builtin commands",
	Long: `Show built-in documentation for the commands of the rurtle language.

Without arguments all builtins are listed with their documentation.

Examples:
  rurtle doc            List all builtin commands
  rurtle doc forward    Show docs for the forward command`,
	Run: func(cmd *cobra.Command, args []string) {
		env := docEnv()
		names := args
		if len(names) == 0 {
			names = env.BuiltinNames()
		}
		for _, name := range names {
			if err := env.RenderBuiltin(os.Stdout, name); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

// docEnv builds a throwaway environment purely to inspect the builtin
// registry; its turtle never draws.
func docEnv() *environ.Environment {
	return environ.NewEnv(turtle.New(graphic.NewScreen(1, 1)))
}

func init() {
	rootCmd.AddCommand(docCmd)
}
