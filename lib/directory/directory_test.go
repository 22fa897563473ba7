// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package directory

import (
	"testing"

	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// testDocument builds the fixture roster: a resident in unit 1, an
// admin-resident in unit 3, an admin-only person, and a mix of
// visible and hidden devices in unit 1.
func testDocument() *store.Document {
	return &store.Document{
		People: []store.Person{
			{FirstName: "John", LastName: "Doe", Unit: "1", Roles: []store.Role{store.RoleResident}},
			{FirstName: "Jane", LastName: "Smith", Unit: "1", Roles: []store.Role{store.RoleResident}},
			{FirstName: "Carlos", LastName: "Rivera", Unit: "3", Roles: []store.Role{store.RoleResident, store.RoleAdmin}},
			{FirstName: "Priya", LastName: "Patel", Unit: "2", Roles: []store.Role{store.RoleAdmin}},
		},
		Devices: store.DeviceInventory{
			Thermostats: []store.Device{
				{ID: "1", Model: "Nest E", Unit: "1", AdminAccessible: true},
			},
			Lights: []store.Device{
				{ID: "2", Model: "Hue Go", Unit: "1", AdminAccessible: false},
				{ID: "3", Model: "Hue Iris", Unit: "3", AdminAccessible: true},
			},
			Locks: []store.Device{
				{ID: "4", Model: "August Pro", Unit: "1", AdminAccessible: false},
			},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	document := testDocument()

	operator := Authenticate(document, "john", "DOE")
	if operator == nil {
		t.Fatal("expected case-insensitive match")
	}
	if operator.FirstName != "John" {
		t.Errorf("got %q, want John", operator.FirstName)
	}

	if Authenticate(document, "Nobody", "Here") != nil {
		t.Error("expected nil for unknown name")
	}
}

func TestAuthenticateReturnsFirstMatch(t *testing.T) {
	document := &store.Document{
		People: []store.Person{
			{FirstName: "Ann", LastName: "Lee", Unit: "12", Roles: []store.Role{store.RoleResident}},
			{FirstName: "Ann", LastName: "Lee", Unit: "13", Roles: []store.Role{store.RoleResident}},
		},
	}

	operator := Authenticate(document, "Ann", "Lee")
	if operator == nil {
		t.Fatal("expected a match")
	}
	if operator.Unit != "12" {
		t.Errorf("got unit %q, want the first record's unit 12", operator.Unit)
	}
}

func TestListUnitAsAdmin(t *testing.T) {
	residents, devices := ListUnit(testDocument(), "Carlos", "Rivera", "1", true)

	if len(residents) != 2 {
		t.Fatalf("got %d residents, want 2", len(residents))
	}

	// Admins see every device in the unit regardless of the
	// visibility flag.
	if len(devices) != 3 {
		t.Fatalf("got %d devices, want 3", len(devices))
	}

	want := []DeviceView{
		{Category: store.CategoryThermostats, Model: "Nest E", ID: "1"},
		{Category: store.CategoryLights, Model: "Hue Go", ID: "2"},
		{Category: store.CategoryLocks, Model: "August Pro", ID: "4"},
	}
	for i, view := range devices {
		if view != want[i] {
			t.Errorf("device %d: got %+v, want %+v", i, view, want[i])
		}
	}
}

func TestListUnitAsResident(t *testing.T) {
	// John asks about his own unit: he sees only himself, and only
	// the devices flagged visible.
	residents, devices := ListUnit(testDocument(), "John", "Doe", "1", false)

	if len(residents) != 1 {
		t.Fatalf("got %d residents, want 1", len(residents))
	}
	if residents[0].FirstName != "John" {
		t.Errorf("got %q, want John", residents[0].FirstName)
	}

	if len(devices) != 1 {
		t.Fatalf("got %d devices, want 1", len(devices))
	}
	if devices[0].Model != "Nest E" {
		t.Errorf("got %q, want the visible thermostat", devices[0].Model)
	}
}

func TestListUnitEmptyResults(t *testing.T) {
	residents, devices := ListUnit(testDocument(), "Carlos", "Rivera", "99", true)

	if residents == nil || devices == nil {
		t.Fatal("empty results must be empty slices, not nil")
	}
	if len(residents) != 0 || len(devices) != 0 {
		t.Errorf("got %d residents and %d devices, want none", len(residents), len(devices))
	}
}

func TestListUnitExcludesNonResidents(t *testing.T) {
	document := testDocument()
	// Priya holds only Admin and lives in unit 2 per her record; an
	// admin listing unit 2 must not show her as a resident.
	residents, _ := ListUnit(document, "Carlos", "Rivera", "2", true)
	if len(residents) != 0 {
		t.Errorf("got %d residents, want 0 (admin-only people are not residents)", len(residents))
	}
}

func TestFindResident(t *testing.T) {
	person, devices := FindResident(testDocument(), "jane", "smith")
	if person == nil {
		t.Fatal("expected to find Jane")
	}

	// Every device in her unit, no visibility filtering.
	if len(devices) != 3 {
		t.Fatalf("got %d devices, want 3", len(devices))
	}
}

func TestFindResidentRequiresResidentRole(t *testing.T) {
	person, devices := FindResident(testDocument(), "Priya", "Patel")
	if person != nil || devices != nil {
		t.Error("admin-only person must not be found by resident lookup")
	}
}

func TestFindResidentUnknownName(t *testing.T) {
	person, devices := FindResident(testDocument(), "Nobody", "Here")
	if person != nil || devices != nil {
		t.Error("expected (nil, nil) for unknown name")
	}
}
