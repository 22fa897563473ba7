// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package session runs the interactive operator console: authenticate
// by name, then loop over a role-gated numbered menu dispatching to
// directory queries and lifecycle mutations. Input and output are
// injected, so the whole flow is scriptable in tests.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/RajashekarPunna/property-management-system/lib/directory"
	"github.com/RajashekarPunna/property-management-system/lib/lifecycle"
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// ErrNotAuthorized is returned by Run when the operator's name does
// not match any roster entry. The rejection message has already been
// printed; the caller decides the process exit code.
var ErrNotAuthorized = errors.New("operator not authorized")

// Controller drives one operator session over the given reader and
// writer.
type Controller struct {
	store     *store.Store
	lifecycle *lifecycle.Service
	in        *bufio.Reader
	out       io.Writer
	logger    *slog.Logger
}

// New returns a Controller reading operator input from in and writing
// everything operator-facing to out.
func New(st *store.Store, lc *lifecycle.Service, in io.Reader, out io.Writer, logger *slog.Logger) *Controller {
	return &Controller{
		store:     st,
		lifecycle: lc,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
	}
}

// Run executes the session: prompt for the operator's name,
// authenticate, then present the menu until the operator exits.
// Returns ErrNotAuthorized on a failed login (no retry), or a read
// error if the input stream fails mid-session.
func (c *Controller) Run() error {
	fmt.Fprintln(c.out, "Welcome to the Property Management System")

	firstName, err := c.prompt("Please enter your first name: ")
	if err != nil {
		return err
	}
	lastName, err := c.prompt("Please enter your last name: ")
	if err != nil {
		return err
	}

	operator := directory.Authenticate(c.store.Document(), firstName, lastName)
	if operator == nil {
		fmt.Fprintln(c.out, "You are not authorized to use this system.")
		c.logger.Warn("authentication failed",
			"first_name", firstName,
			"last_name", lastName)
		return ErrNotAuthorized
	}

	fmt.Fprintf(c.out, "Welcome, %s!\n", operator.FullName())

	for {
		c.printMenu(operator)

		choice, err := c.prompt("Select an option (1-5): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input stream closed; treat like Exit.
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = c.viewUnit(operator)
		case "2":
			err = c.searchUser(operator)
		case "3":
			if !operator.IsAdmin() {
				fmt.Fprintln(c.out, "Invalid option")
				continue
			}
			err = c.moveIn()
		case "4":
			if !operator.IsAdmin() {
				fmt.Fprintln(c.out, "Invalid option")
				continue
			}
			err = c.moveOut()
		case "5":
			fmt.Fprintln(c.out, "Exiting the system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Controller) printMenu(operator *store.Person) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Menu:")
	fmt.Fprintln(c.out, "1. View users and devices by unit")
	fmt.Fprintln(c.out, "2. Search user information by name")
	if operator.IsAdmin() {
		fmt.Fprintln(c.out, "3. Move in a new resident")
		fmt.Fprintln(c.out, "4. Move out an old resident")
	}
	fmt.Fprintln(c.out, "5. Exit")
}

// prompt prints the prompt text and reads one trimmed line.
func (c *Controller) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// viewUnit handles menu option 1. Admins pick the unit and see every
// device in it; residents are always answered with their own unit in
// restricted view, whatever they might wish to pass.
func (c *Controller) viewUnit(operator *store.Person) error {
	var unit store.UnitID
	isAdmin := operator.IsAdmin()

	if isAdmin {
		entered, err := c.prompt("Enter the unit number: ")
		if err != nil {
			return err
		}
		unit = store.UnitID(entered)
	} else {
		unit = operator.Unit
	}

	residents, devices := directory.ListUnit(
		c.store.Document(), operator.FirstName, operator.LastName, unit, isAdmin)

	fmt.Fprintln(c.out, "\nResidents:")
	if err := RenderResidents(c.out, residents); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\nDevices:")
	return RenderDevices(c.out, devices)
}

// searchUser handles menu option 2. Non-admins may only search their
// own name; the privilege check happens before any directory call so
// a denied search leaks nothing, not even found-versus-not-found.
func (c *Controller) searchUser(operator *store.Person) error {
	targetFirst, err := c.prompt("Enter user's first name: ")
	if err != nil {
		return err
	}
	targetLast, err := c.prompt("Enter user's last name: ")
	if err != nil {
		return err
	}

	if !operator.IsAdmin() && !operator.NameMatches(targetFirst, targetLast) {
		fmt.Fprintln(c.out, "You don't have privileges to search other users information")
		c.logger.Warn("search denied",
			"operator", operator.FullName(),
			"target_first_name", targetFirst,
			"target_last_name", targetLast)
		return nil
	}

	person, devices := directory.FindResident(c.store.Document(), targetFirst, targetLast)
	if person == nil {
		fmt.Fprintln(c.out, "User not found or user is not a resident.")
		return nil
	}

	fmt.Fprintln(c.out, "\nUser information:")
	if err := RenderResidents(c.out, []store.Person{*person}); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\nUser devices:")
	return RenderDevices(c.out, devices)
}

// moveIn handles menu option 3 (admin only, enforced by the caller).
func (c *Controller) moveIn() error {
	firstName, err := c.prompt("Enter new resident's first name: ")
	if err != nil {
		return err
	}
	lastName, err := c.prompt("Enter new resident's last name: ")
	if err != nil {
		return err
	}
	unit, err := c.prompt("Enter the unit number: ")
	if err != nil {
		return err
	}

	outcome, persistErr := c.lifecycle.MoveIn(firstName, lastName, store.UnitID(unit))
	switch outcome {
	case lifecycle.OutcomeAlreadyResident:
		fmt.Fprintf(c.out, "%s %s is already a resident in unit %s.\n", firstName, lastName, unit)
	case lifecycle.OutcomeMoved:
		fmt.Fprintf(c.out, "%s %s has been moved into unit %s.\n", firstName, lastName, unit)
		c.reportPersist(persistErr)
	}
	return nil
}

// moveOut handles menu option 4 (admin only, enforced by the caller).
func (c *Controller) moveOut() error {
	firstName, err := c.prompt("Enter the first name of the resident to move out: ")
	if err != nil {
		return err
	}
	lastName, err := c.prompt("Enter the last name of the resident to move out: ")
	if err != nil {
		return err
	}

	outcome, persistErr := c.lifecycle.MoveOut(firstName, lastName)
	switch outcome {
	case lifecycle.OutcomeNotFound:
		fmt.Fprintf(c.out, "%s %s does not exist in the system.\n", firstName, lastName)
	case lifecycle.OutcomeRemoved:
		fmt.Fprintf(c.out, "%s %s has been moved out.\n", firstName, lastName)
		c.reportPersist(persistErr)
	}
	return nil
}

// reportPersist tells the operator how the snapshot write went. A
// failed save keeps the session alive: the in-memory document is
// still the mutation of record.
func (c *Controller) reportPersist(err error) {
	if err != nil {
		fmt.Fprintf(c.out, "Warning: changes could not be saved: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Changes saved to %s.\n", c.store.Destination())
}
