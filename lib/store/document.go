// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is a person's role tag. The set is closed: code checks roles
// through the capability helpers below rather than comparing strings
// at call sites.
type Role string

const (
	// RoleResident marks a person as occupying a unit. Residents may
	// view their own unit's data.
	RoleResident Role = "Resident"
	// RoleAdmin grants cross-unit visibility and move-in/move-out
	// rights.
	RoleAdmin Role = "Admin"
)

// UnitID identifies a dwelling unit. The canonical representation is a
// string; seed documents historically stored device units as JSON
// numbers and person units as strings, so decoding accepts both and
// normalizes to the string form.
type UnitID string

func (u *UnitID) UnmarshalJSON(data []byte) error {
	value, err := decodeStringish(data)
	if err != nil {
		return fmt.Errorf("unit: %w", err)
	}
	*u = UnitID(value)
	return nil
}

// DeviceID identifies a device within its category. Uniqueness is not
// enforced. Decoding accepts JSON numbers and strings.
type DeviceID string

func (d *DeviceID) UnmarshalJSON(data []byte) error {
	value, err := decodeStringish(data)
	if err != nil {
		return fmt.Errorf("device id: %w", err)
	}
	*d = DeviceID(value)
	return nil
}

// decodeStringish accepts a JSON string or number and returns its
// string form.
func decodeStringish(data []byte) (string, error) {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		return asString, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		return asNumber.String(), nil
	}
	return "", fmt.Errorf("expected string or number, got %s", data)
}

// Flag is a device visibility flag. Seed documents store it as the
// literal text "true" or "false"; decoding accepts both that and a
// real JSON bool, and snapshots are written as bools.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*f = Flag(asBool)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*f = Flag(strings.EqualFold(asString, "true"))
		return nil
	}
	return fmt.Errorf("flag: expected bool or string, got %s", data)
}

// Person is one roster entry. Identity is (first name, last name)
// compared case-insensitively; the document does not guarantee the
// pair is unique.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Unit      UnitID `json:"unit"`
	Roles     []Role `json:"roles"`
}

// HasRole reports whether the person holds the given role tag.
func (p *Person) HasRole(role Role) bool {
	for _, held := range p.Roles {
		if held == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the person may see other units and mutate
// the roster.
func (p *Person) IsAdmin() bool { return p.HasRole(RoleAdmin) }

// IsResident reports whether the person occupies a unit.
func (p *Person) IsResident() bool { return p.HasRole(RoleResident) }

// NameMatches reports whether the given name identifies this person.
// Comparison is case-insensitive on both fields.
func (p *Person) NameMatches(firstName, lastName string) bool {
	return strings.EqualFold(p.FirstName, firstName) &&
		strings.EqualFold(p.LastName, lastName)
}

// FullName returns the person's display name.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Device is one installed device. Its category is implicit in which
// inventory bucket holds it.
type Device struct {
	ID              DeviceID `json:"id"`
	Model           string   `json:"model"`
	Unit            UnitID   `json:"unit"`
	AdminAccessible Flag     `json:"admin_accessible"`
}

// Device category names. The inventory always carries exactly these
// three buckets, in this order.
const (
	CategoryThermostats = "thermostats"
	CategoryLights      = "lights"
	CategoryLocks       = "locks"
)

// DeviceInventory holds the fixed device category buckets.
type DeviceInventory struct {
	Thermostats []Device `json:"thermostats"`
	Lights      []Device `json:"lights"`
	Locks       []Device `json:"locks"`
}

// CategoryDevices pairs a category name with its devices, for callers
// that iterate the inventory in its canonical order.
type CategoryDevices struct {
	Category string
	Devices  []Device
}

// All returns the inventory buckets in canonical category order.
func (inv *DeviceInventory) All() []CategoryDevices {
	return []CategoryDevices{
		{CategoryThermostats, inv.Thermostats},
		{CategoryLights, inv.Lights},
		{CategoryLocks, inv.Locks},
	}
}

// Document is the whole persisted state: the roster plus the device
// inventory. A single instance is loaded at startup and owned by the
// process for its lifetime; queries read it, lifecycle operations
// mutate it.
type Document struct {
	People  []Person        `json:"people"`
	Devices DeviceInventory `json:"devices"`
}

// normalize replaces nil slices with empty ones so a saved snapshot
// always carries the full document shape ("people" plus all three
// device categories) even when sections are empty.
func (d *Document) normalize() {
	if d.People == nil {
		d.People = []Person{}
	}
	if d.Devices.Thermostats == nil {
		d.Devices.Thermostats = []Device{}
	}
	if d.Devices.Lights == nil {
		d.Devices.Lights = []Device{}
	}
	if d.Devices.Locks == nil {
		d.Devices.Locks = []Device{}
	}
}
