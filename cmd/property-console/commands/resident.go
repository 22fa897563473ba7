// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/RajashekarPunna/property-management-system/cmd/property-console/cli"
	"github.com/RajashekarPunna/property-management-system/lib/lifecycle"
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// residentCommand returns the "resident" subcommand group for roster
// mutations. Both subcommands require an administrator operator.
func residentCommand() *cli.Command {
	return &cli.Command{
		Name:    "resident",
		Summary: "Move residents in or out (administrators only)",
		Subcommands: []*cli.Command{
			residentMoveInCommand(),
			residentMoveOutCommand(),
		},
	}
}

func residentMoveInCommand() *cli.Command {
	var (
		flags    storeFlags
		operator operatorFlags
	)

	return &cli.Command{
		Name:    "move-in",
		Summary: "Move a new resident into a unit",
		Description: `Append a new resident record and write a snapshot, the scriptable
form of menu option 3. Exits 1 when the person already lives in that
unit. A failed snapshot write is reported as a warning; the mutation
stays applied in memory for the life of the process.`,
		Usage: "property-console resident move-in <first-name> <last-name> <unit> [flags]",
		Examples: []cli.Example{
			{
				Description: "Move Ann Lee into unit 12",
				Command:     "property-console resident move-in Ann Lee 12 --as-first Carlos --as-last Rivera",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("move-in", pflag.ContinueOnError)
			flags.register(flagSet)
			operator.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected <first-name> <last-name> <unit>\n\nUsage: property-console resident move-in <first-name> <last-name> <unit> [flags]")
			}
			firstName, lastName, unit := args[0], args[1], args[2]

			logger := cli.NewLogger()
			st, err := flags.open(logger)
			if err != nil {
				return err
			}

			admin, err := operator.authenticate(st.Document())
			if err != nil {
				return err
			}
			if !admin.IsAdmin() {
				return fmt.Errorf("permission denied: %s is not an administrator", admin.FullName())
			}

			service := lifecycle.NewService(st, logger)
			outcome, persistErr := service.MoveIn(firstName, lastName, store.UnitID(unit))
			switch outcome {
			case lifecycle.OutcomeAlreadyResident:
				fmt.Printf("%s %s is already a resident in unit %s.\n", firstName, lastName, unit)
				return &cli.ExitError{Code: 1}
			case lifecycle.OutcomeMoved:
				fmt.Printf("%s %s has been moved into unit %s.\n", firstName, lastName, unit)
			}
			reportPersist(st, persistErr)
			return nil
		},
	}
}

func residentMoveOutCommand() *cli.Command {
	var (
		flags    storeFlags
		operator operatorFlags
	)

	return &cli.Command{
		Name:    "move-out",
		Summary: "Move a resident out",
		Description: `Remove every roster record matching the name, across all units, and
write a snapshot, the scriptable form of menu option 4. Exits 1 when
no record matches.`,
		Usage: "property-console resident move-out <first-name> <last-name> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("move-out", pflag.ContinueOnError)
			flags.register(flagSet)
			operator.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <first-name> <last-name>\n\nUsage: property-console resident move-out <first-name> <last-name> [flags]")
			}
			firstName, lastName := args[0], args[1]

			logger := cli.NewLogger()
			st, err := flags.open(logger)
			if err != nil {
				return err
			}

			admin, err := operator.authenticate(st.Document())
			if err != nil {
				return err
			}
			if !admin.IsAdmin() {
				return fmt.Errorf("permission denied: %s is not an administrator", admin.FullName())
			}

			service := lifecycle.NewService(st, logger)
			outcome, persistErr := service.MoveOut(firstName, lastName)
			switch outcome {
			case lifecycle.OutcomeNotFound:
				fmt.Printf("%s %s does not exist in the system.\n", firstName, lastName)
				return &cli.ExitError{Code: 1}
			case lifecycle.OutcomeRemoved:
				fmt.Printf("%s %s has been moved out.\n", firstName, lastName)
			}
			reportPersist(st, persistErr)
			return nil
		},
	}
}

// reportPersist prints the snapshot outcome. A failed write is a
// warning, not an error: the in-memory mutation stands and is never
// rolled back or retried.
func reportPersist(st *store.Store, err error) {
	if err != nil {
		fmt.Printf("Warning: changes could not be saved: %v\n", err)
		return
	}
	fmt.Printf("Changes saved to %s.\n", st.Destination())
}
