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

// unitCommand returns the "unit" subcommand group.
func unitCommand() *cli.Command {
	return &cli.Command{
		Name:    "unit",
		Summary: "Inspect a unit's residents and devices",
		Subcommands: []*cli.Command{
			unitViewCommand(),
		},
	}
}

// unitListing is the serialized result of "unit view".
type unitListing struct {
	Unit      string                 `json:"unit"`
	Residents []store.Person         `json:"residents"`
	Devices   []directory.DeviceView `json:"devices"`
}

func unitViewCommand() *cli.Command {
	var (
		flags    storeFlags
		operator operatorFlags
		unitFlag string
		asJSON   bool
	)

	return &cli.Command{
		Name:    "view",
		Summary: "List a unit's residents and devices",
		Description: `List the residents and devices of a unit, the scriptable form of
menu option 1.

Administrators may name any unit with --unit and see every device in
it. Residents are always answered with their own unit and restricted
visibility, whatever --unit says.`,
		Usage: "property-console unit view [flags]",
		Examples: []cli.Example{
			{
				Description: "View unit 12 as an administrator",
				Command:     "property-console unit view --as-first Carlos --as-last Rivera --unit 12",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flags.register(flagSet)
			operator.register(flagSet)
			flagSet.StringVar(&unitFlag, "unit", "", "unit to list (administrators only; default: the operator's own unit)")
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

			isAdmin := viewer.IsAdmin()
			unit := viewer.Unit
			if isAdmin && unitFlag != "" {
				unit = store.UnitID(unitFlag)
			}

			residents, devices := directory.ListUnit(
				st.Document(), viewer.FirstName, viewer.LastName, unit, isAdmin)

			if asJSON {
				return cli.WriteJSON(os.Stdout, unitListing{
					Unit:      string(unit),
					Residents: residents,
					Devices:   devices,
				})
			}

			fmt.Printf("Residents of unit %s:\n", unit)
			if err := session.RenderResidents(os.Stdout, residents); err != nil {
				return err
			}
			fmt.Printf("\nDevices in unit %s:\n", unit)
			return session.RenderDevices(os.Stdout, devices)
		},
	}
}
