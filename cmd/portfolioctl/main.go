// Package main is the entry point for the portfolioctl operator tool.
package main

import (
	"fmt"
	"os"

	"github.com/rpupo63/portfolio-site/cmd/portfolioctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
