// Package main is the entry point for the crusher CLI.
package main

import "crusher.dev/pkg/crusher/cmd"

func main() {
	cmd.Execute()
}
