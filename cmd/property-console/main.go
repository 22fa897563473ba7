// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/RajashekarPunna/property-management-system/cmd/property-console/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (a rejected login, a
		// not-found lookup) return an exitError carrying the desired
		// code. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
