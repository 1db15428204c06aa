// ABOUTME: Entry point for the airlift CLI
// ABOUTME: Command-line tool for load planning and CI/CD feasibility gates

package main

import (
	"fmt"
	"os"

	"github.com/twaldron/airlift-planner/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
