// Package main is the entry point for the empapp CLI tool.
package main

import (
	"github.com/sofisch25/InClassEmpApp/internal/cmd"
)

func main() {
	cmd.Execute()
}
