// Package main is the entry point for the mapwright CLI.
package main

import "mapwright.dev/pkg/mapwright/cmd"

func main() {
	cmd.Execute()
}
