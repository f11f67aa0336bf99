// Copyright © 2019 The Rurtle authors

package cmd

import (
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ligthyear/rurtle/environ"
	"github.com/ligthyear/rurtle/graphic"
	"github.com/ligthyear/rurtle/turtle"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Draw the demo scene and export it as PNG",
	Long: `Draw a square spiral by driving the runtime through its builtin
commands, exactly as an evaluated script would, and export the canvas as a
PNG file.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "rurtle"})

		width := viper.GetInt("demo.width")
		height := viper.GetInt("demo.height")
		out := viper.GetString("demo.out")

		screen := graphic.NewScreen(width, height)
		env := environ.NewEnv(turtle.New(screen))

		logger.Info("drawing demo scene", "width", width, "height", height)
		if err := drawSpiral(env); err != nil {
			logger.Error("draw failed", "err", err)
			os.Exit(1)
		}
		logger.Info("exporting screenshot", "path", out)
		_, err := env.Invoke("screenshot", []environ.Value{environ.Text(out)})
		if err != nil {
			logger.Error("export failed", "err", err)
			os.Exit(1)
		}
		logger.Info("done", "path", out)
	},
}

// drawSpiral issues the builtin calls an evaluator would produce for the
// demo script: a square spiral cycling through hues, signed at the center.
func drawSpiral(env *environ.Environment) error {
	calls := [][]interface{}{
		{"bgcolor", 1.0, 1.0, 1.0},
		{"penup"},
		{"home"},
		{"pendown"},
	}
	steps := 72
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		calls = append(calls,
			[]interface{}{"color", 0.5 + 0.5*math.Sin(2*math.Pi*t), 0.2, 0.5 + 0.5*math.Cos(2*math.Pi*t)},
			[]interface{}{"forward", 4.0 + 3.0*float64(i)},
			[]interface{}{"right", 89.5},
		)
	}
	calls = append(calls,
		[]interface{}{"penup"},
		[]interface{}{"home"},
		[]interface{}{"color", 0.0, 0.0, 0.0},
		[]interface{}{"write", "rurtle"},
		[]interface{}{"hide"},
	)
	for _, call := range calls {
		name := call[0].(string)
		argv := make([]environ.Value, 0, len(call)-1)
		for _, arg := range call[1:] {
			switch arg := arg.(type) {
			case float64:
				argv = append(argv, environ.Number(arg))
			case string:
				argv = append(argv, environ.Text(arg))
			}
		}
		if _, err := env.Invoke(name, argv); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("width", 640, "canvas width in pixels")
	demoCmd.Flags().Int("height", 480, "canvas height in pixels")
	demoCmd.Flags().String("out", "rurtle.png", "output PNG file")
	viper.BindPFlag("demo.width", demoCmd.Flags().Lookup("width"))
	viper.BindPFlag("demo.height", demoCmd.Flags().Lookup("height"))
	viper.BindPFlag("demo.out", demoCmd.Flags().Lookup("out"))
}
