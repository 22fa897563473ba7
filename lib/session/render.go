// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/RajashekarPunna/property-management-system/lib/directory"
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// newTable returns a tabwriter configured for console listings. An
// empty result set still renders the header row.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
}

// RenderResidents writes the resident table: one row per person with
// name, unit, and roles.
func RenderResidents(w io.Writer, people []store.Person) error {
	table := newTable(w)
	fmt.Fprintf(table, "FIRST NAME\tLAST NAME\tUNIT\tROLES\n")
	for _, person := range people {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n",
			person.FirstName, person.LastName, person.Unit, joinRoles(person.Roles))
	}
	return table.Flush()
}

// RenderDevices writes the device table: one row per device view.
func RenderDevices(w io.Writer, devices []directory.DeviceView) error {
	table := newTable(w)
	fmt.Fprintf(table, "CATEGORY\tMODEL\tID\n")
	for _, device := range devices {
		fmt.Fprintf(table, "%s\t%s\t%s\n", device.Category, device.Model, device.ID)
	}
	return table.Flush()
}

func joinRoles(roles []store.Role) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return strings.Join(names, ", ")
}
