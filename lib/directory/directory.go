// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package directory answers queries over the property document:
// operator authentication, unit listings, and resident lookup. All
// functions are pure reads against the shared document.
package directory

import (
	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// DeviceView is the display projection of a device: category, model,
// and id, with the unit and visibility flag dropped.
type DeviceView struct {
	Category string `json:"category"`
	Model    string `json:"model"`
	ID       string `json:"id"`
}

// Authenticate finds the person named by the case-insensitive pair
// (firstName, lastName). Returns the first match in document order, or
// nil when no entry matches. A nil result is terminal for the session:
// the caller must not enter the menu loop.
func Authenticate(document *store.Document, firstName, lastName string) *store.Person {
	for i := range document.People {
		if document.People[i].NameMatches(firstName, lastName) {
			return &document.People[i]
		}
	}
	return nil
}

// ListUnit returns the residents and devices of a unit, filtered by
// the viewer's privileges.
//
// Residents are always restricted to role Resident in the requested
// unit. A non-admin viewer additionally only ever sees their own
// record, so the caller's name participates in the filter.
//
// Devices are restricted to the requested unit. A non-admin viewer
// only sees devices whose visibility flag is set; an admin sees every
// device in the unit regardless of the flag.
//
// Empty results are returned as empty slices, never as an error.
func ListUnit(document *store.Document, firstName, lastName string, unit store.UnitID, isAdmin bool) ([]store.Person, []DeviceView) {
	residents := []store.Person{}
	for _, person := range document.People {
		if person.Unit != unit || !person.IsResident() {
			continue
		}
		if !isAdmin && !person.NameMatches(firstName, lastName) {
			continue
		}
		residents = append(residents, person)
	}

	devices := []DeviceView{}
	for _, bucket := range document.Devices.All() {
		for _, device := range bucket.Devices {
			if device.Unit != unit {
				continue
			}
			if !isAdmin && !bool(device.AdminAccessible) {
				continue
			}
			devices = append(devices, DeviceView{
				Category: bucket.Category,
				Model:    device.Model,
				ID:       string(device.ID),
			})
		}
	}

	return residents, devices
}

// FindResident looks up a person by case-insensitive name, requiring
// role Resident: a person holding only the Admin role is not found.
// On success it returns every device installed in the person's unit,
// all categories, with no visibility filtering. Returns (nil, nil)
// when no matching resident exists.
func FindResident(document *store.Document, firstName, lastName string) (*store.Person, []DeviceView) {
	for i := range document.People {
		person := &document.People[i]
		if !person.NameMatches(firstName, lastName) || !person.IsResident() {
			continue
		}

		devices := []DeviceView{}
		for _, bucket := range document.Devices.All() {
			for _, device := range bucket.Devices {
				if device.Unit != person.Unit {
					continue
				}
				devices = append(devices, DeviceView{
					Category: bucket.Category,
					Model:    device.Model,
					ID:       string(device.ID),
				})
			}
		}
		return person, devices
	}
	return nil, nil
}
