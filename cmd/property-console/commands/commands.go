// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the property console command tree. Running
// the binary with no subcommand starts the interactive operator
// session; the subcommands expose the same operations in a
// scriptable, flag-driven form with identical authorization rules.
package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/RajashekarPunna/property-management-system/cmd/property-console/cli"
	"github.com/RajashekarPunna/property-management-system/lib/config"
	"github.com/RajashekarPunna/property-management-system/lib/directory"
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// Root builds and returns the property console command tree.
func Root() *cli.Command {
	var flags storeFlags

	return &cli.Command{
		Name:    "property-console",
		Summary: "Operator console for a residential property",
		Description: `Property console: view residents and devices, search resident
records, and (for administrators) move residents in or out.

With no subcommand, starts the interactive menu session. The
subcommands run single operations for scripts, enforcing the same
role checks as the menu.`,
		Usage: "property-console [command] [flags]",
		Examples: []cli.Example{
			{
				Description: "Start the interactive session against a specific seed file",
				Command:     "property-console --data ./property_data.json --output ./property_data_changes.json",
			},
			{
				Description: "List a unit as an administrator, machine-readable",
				Command:     "property-console unit view --as-first Carlos --as-last Rivera --unit 12 --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("property-console", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Subcommands: []*cli.Command{
			sessionCommand(),
			unitCommand(),
			rosterCommand(),
			residentCommand(),
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runSession(&flags)
		},
	}
}

// storeFlags carries the document location flags shared by every
// command that opens the store.
type storeFlags struct {
	configPath string
	dataPath   string
	outputPath string
}

func (f *storeFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.configPath, "config", "", "path to console config file (overrides "+config.EnvVar+")")
	flagSet.StringVar(&f.dataPath, "data", "", "seed document path (overrides config)")
	flagSet.StringVar(&f.outputPath, "output", "", "snapshot destination path (overrides config)")
}

// resolve returns the effective source and destination paths: config
// file (or defaults), then flag overrides.
func (f *storeFlags) resolve() (source, destination string, err error) {
	var cfg *config.Config
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return "", "", err
	}

	source = cfg.Data.Source
	destination = cfg.Data.Destination
	if f.dataPath != "" {
		source = f.dataPath
	}
	if f.outputPath != "" {
		destination = f.outputPath
	}

	if source == destination {
		return "", "", fmt.Errorf("snapshot destination %q must differ from the seed file", destination)
	}
	return source, destination, nil
}

// open loads the document and returns the process's store.
func (f *storeFlags) open(logger *slog.Logger) (*store.Store, error) {
	source, destination, err := f.resolve()
	if err != nil {
		return nil, err
	}
	return store.Open(source, destination, logger)
}

// operatorFlags names the operator identity for scriptable commands,
// standing in for the interactive login prompts.
type operatorFlags struct {
	firstName string
	lastName  string
}

func (f *operatorFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.firstName, "as-first", "", "operator first name")
	flagSet.StringVar(&f.lastName, "as-last", "", "operator last name")
}

// authenticate resolves the operator against the roster. A missing or
// unknown name is an error: scriptable commands refuse to run
// unauthenticated, exactly like the interactive session.
func (f *operatorFlags) authenticate(document *store.Document) (*store.Person, error) {
	firstName := strings.TrimSpace(f.firstName)
	lastName := strings.TrimSpace(f.lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("operator identity required (--as-first and --as-last)")
	}
	operator := directory.Authenticate(document, firstName, lastName)
	if operator == nil {
		return nil, fmt.Errorf("%s %s is not authorized to use this system", firstName, lastName)
	}
	return operator, nil
}
