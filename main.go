// Package main is the entry point for the mutmap CLI.
package main

import "github.com/mouse-blink/mutmap/cmd"

func main() {
	cmd.Execute()
}
