// Package main provides the CLI for the sqlsubstr SUBSTR dialect translator.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlsubstr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
