// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/RajashekarPunna/property-management-system/cmd/property-console/cli"
	"github.com/RajashekarPunna/property-management-system/lib/lifecycle"
	"github.com/RajashekarPunna/property-management-system/lib/session"
)

// sessionCommand returns the explicit "session" subcommand. The same
// flow runs when the binary is invoked with no subcommand at all.
func sessionCommand() *cli.Command {
	var flags storeFlags

	return &cli.Command{
		Name:    "session",
		Summary: "Start the interactive operator session",
		Description: `Start the interactive menu session: log in by name, then view
residents and devices, search records, and (as an administrator)
move residents in or out.`,
		Usage: "property-console session [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("session", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runSession(&flags)
		},
	}
}

// runSession loads the document and drives one interactive session on
// the process's terminal. A rejected login has already printed its
// message, so it maps to a bare exit code.
func runSession(flags *storeFlags) error {
	logger := cli.NewLogger()

	st, err := flags.open(logger)
	if err != nil {
		return err
	}

	controller := session.New(
		st,
		lifecycle.NewService(st, logger),
		os.Stdin,
		os.Stdout,
		logger,
	)

	if err := controller.Run(); err != nil {
		if errors.Is(err, session.ErrNotAuthorized) {
			return &cli.ExitError{Code: 1}
		}
		return err
	}
	return nil
}
