// Copyright © 2019 The Rurtle authors

package main

import "github.com/ligthyear/rurtle/cmd"

func main() {
	cmd.Execute()
}
