// Package main is the entry point of the openkit command-line tool.
package main

import "github.com/sarchlab/openkit/cmd/openkit/cmd"

func main() {
	cmd.Execute()
}
