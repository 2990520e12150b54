// Package main is the entry point for the pluginscout CLI.
package main

import "pluginscout.dev/pkg/pluginscout/cmd"

func main() {
	cmd.Execute()
}
