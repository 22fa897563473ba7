// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/RajashekarPunna/property-management-system/cmd/property-console/cli"
	"github.com/RajashekarPunna/property-management-system/lib/directory"
	"github.com/RajashekarPunna/property-management-system/lib/session"
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// rosterCommand returns the "roster" subcommand group.
func rosterCommand() *cli.Command {
	return &cli.Command{
		Name:    "roster",
		Summary: "Search and list resident records",
		Subcommands: []*cli.Command{
			rosterFindCommand(),
			rosterListCommand(),
		},
	}
}

// residentRecord is the serialized result of "roster find".
type residentRecord struct {
	Person  store.Person           `json:"person"`
	Devices []directory.DeviceView `json:"devices"`
}

func rosterFindCommand() *cli.Command {
	var (
		flags    storeFlags
		operator operatorFlags
		asJSON   bool
	)

	return &cli.Command{
		Name:    "find",
		Summary: "Look up a resident by name",
		Description: `Look up a resident record by name, the scriptable form of menu
option 2. Non-administrators may only look up their own name; a
denied search performs no lookup at all. Exits 1 when the search is
denied or the name does not match a resident.`,
		Usage: "property-console roster find <first-name> <last-name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Look up a resident as an administrator",
				Command:     "property-console roster find Ann Lee --as-first Carlos --as-last Rivera",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("find", pflag.ContinueOnError)
			flags.register(flagSet)
			operator.register(flagSet)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <first-name> <last-name>\n\nUsage: property-console roster find <first-name> <last-name> [flags]")
			}
			targetFirst, targetLast := args[0], args[1]

			logger := cli.NewLogger()
			st, err := flags.open(logger)
			if err != nil {
				return err
			}

			viewer, err := operator.authenticate(st.Document())
			if err != nil {
				return err
			}

			if !viewer.IsAdmin() && !viewer.NameMatches(targetFirst, targetLast) {
				fmt.Println("You don't have privileges to search other users information")
				return &cli.ExitError{Code: 1}
			}

			person, devices := directory.FindResident(st.Document(), targetFirst, targetLast)
			if person == nil {
				fmt.Println("User not found or user is not a resident.")
				return &cli.ExitError{Code: 1}
			}

			if asJSON {
				return cli.WriteJSON(os.Stdout, residentRecord{
					Person:  *person,
					Devices: devices,
				})
			}

			fmt.Println("User information:")
			if err := session.RenderResidents(os.Stdout, []store.Person{*person}); err != nil {
				return err
			}
			fmt.Println("\nUser devices:")
			return session.RenderDevices(os.Stdout, devices)
		},
	}
}

func rosterListCommand() *cli.Command {
	var (
		flags    storeFlags
		operator operatorFlags
		asJSON   bool
	)

	return &cli.Command{
		Name:    "list",
		Summary: "List the whole roster (administrators only)",
		Usage:   "property-console roster list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.register(flagSet)
			operator.register(flagSet)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			logger := cli.NewLogger()
			st, err := flags.open(logger)
			if err != nil {
				return err
			}

			viewer, err := operator.authenticate(st.Document())
			if err != nil {
				return err
			}
			if !viewer.IsAdmin() {
				return fmt.Errorf("permission denied: %s is not an administrator", viewer.FullName())
			}

			people := st.Document().People
			if asJSON {
				return cli.WriteJSON(os.Stdout, people)
			}
			return session.RenderResidents(os.Stdout, people)
		},
	}
}
