// Copyright © 2019 The Rurtle authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rurtle",
	Short: "Rurtle — turtle graphics scripting runtime",
	Long: `Rurtle is a scripting runtime whose standard library drives a virtual
turtle: a cursor with position, heading, pen state, and color that draws onto
a 2D canvas as it moves.

Getting started:
  rurtle demo                  Draw the demo scene and export it as PNG
  rurtle demo --out spiral.png Choose the output file

The runtime is embeddable; see the rurtle, turtle, and graphic packages.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rurtle.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".rurtle" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".rurtle")
	}

	viper.SetEnvPrefix("rurtle")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
