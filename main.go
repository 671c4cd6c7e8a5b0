// The main package for the creator-toolkit executable.
package main

import (
	"github.com/patelpranay97/creator-toolkit/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
