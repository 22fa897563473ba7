// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package lifecycle implements the roster mutations: moving residents
// in and out. Each operation checks its precondition against the
// in-memory document, applies the mutation, and then persists a full
// snapshot. The mutation is committed to memory unconditionally; a
// failed persist is returned for reporting but never rolled back or
// retried.
package lifecycle

import (
	"fmt"
	"log/slog"

	"github.com/RajashekarPunna/property-management-system/lib/store"
)

// Outcome is the result of a lifecycle operation.
type Outcome int

const (
	// OutcomeMoved means a new resident record was appended.
	OutcomeMoved Outcome = iota
	// OutcomeAlreadyResident means the person already lives in that
	// unit; nothing was mutated.
	OutcomeAlreadyResident
	// OutcomeRemoved means every record matching the name was
	// removed.
	OutcomeRemoved
	// OutcomeNotFound means no record matched the name; nothing was
	// mutated.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAlreadyResident:
		return "already-resident"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Service applies roster mutations against a store.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService returns a Service mutating the given store.
func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// MoveIn appends a new resident record for the named person in the
// given unit and persists a snapshot. If a person with the same
// case-insensitive name already exists in that same unit, nothing is
// mutated and the outcome is OutcomeAlreadyResident.
//
// The conflict check is scoped to the unit: the same name in a
// different unit is not a conflict and produces a second record. That
// matches how move-out matches by name across all units; both are
// roster policy, not an oversight in this code.
//
// A non-nil error is a persistence failure. The new record is already
// in memory when it is returned.
func (s *Service) MoveIn(firstName, lastName string, unit store.UnitID) (Outcome, error) {
	document := s.store.Document()

	for _, person := range document.People {
		if person.NameMatches(firstName, lastName) && person.Unit == unit {
			return OutcomeAlreadyResident, nil
		}
	}

	document.People = append(document.People, store.Person{
		FirstName: firstName,
		LastName:  lastName,
		Unit:      unit,
		Roles:     []store.Role{store.RoleResident},
	})

	s.logger.Info("resident moved in",
		"first_name", firstName,
		"last_name", lastName,
		"unit", string(unit))

	return OutcomeMoved, s.store.Persist()
}

// MoveOut removes every record matching the case-insensitive name,
// across all units, and persists a snapshot. If no record matches,
// nothing is mutated and the outcome is OutcomeNotFound.
//
// A non-nil error is a persistence failure; the removal has already
// happened in memory.
func (s *Service) MoveOut(firstName, lastName string) (Outcome, error) {
	document := s.store.Document()

	// Build a fresh slice rather than compacting in place: the
	// session controller holds a pointer to the operator's record in
	// the current backing array, and an in-place shift would rewrite
	// the operator's slot mid-session.
	kept := make([]store.Person, 0, len(document.People))
	removed := 0
	for _, person := range document.People {
		if person.NameMatches(firstName, lastName) {
			removed++
			continue
		}
		kept = append(kept, person)
	}

	if removed == 0 {
		return OutcomeNotFound, nil
	}

	document.People = kept

	s.logger.Info("resident moved out",
		"first_name", firstName,
		"last_name", lastName,
		"records_removed", removed)

	return OutcomeRemoved, s.store.Persist()
}
