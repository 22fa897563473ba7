// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/RajashekarPunna/property-management-system/lib/store"
)

const seedDocument = `{
  "people": [
    {"first_name": "John", "last_name": "Doe", "unit": "1", "roles": ["Resident"]}
  ],
  "devices": {"thermostats": [], "lights": [], "locks": []}
}
`

func testService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	directory := t.TempDir()
	source := filepath.Join(directory, "property_data.json")
	if err := os.WriteFile(source, []byte(seedDocument), 0644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.Open(source, filepath.Join(directory, "property_data_changes.json"), logger)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return NewService(st, logger), st
}

func countNamed(document *store.Document, first, last string) int {
	count := 0
	for _, person := range document.People {
		if person.NameMatches(first, last) {
			count++
		}
	}
	return count
}

func TestMoveIn(t *testing.T) {
	service, st := testService(t)

	outcome, err := service.MoveIn("Ann", "Lee", "12")
	if err != nil {
		t.Fatalf("MoveIn: %v", err)
	}
	if outcome != OutcomeMoved {
		t.Fatalf("got %v, want moved", outcome)
	}

	document := st.Document()
	if countNamed(document, "Ann", "Lee") != 1 {
		t.Fatal("expected exactly one Ann Lee record")
	}
	added := document.People[len(document.People)-1]
	if added.Unit != "12" {
		t.Errorf("unit: got %q, want 12", added.Unit)
	}
	if len(added.Roles) != 1 || added.Roles[0] != store.RoleResident {
		t.Errorf("roles: got %v, want [Resident]", added.Roles)
	}

	// The snapshot was written.
	if _, err := store.Load(st.Destination()); err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
}

func TestMoveInSameUnitTwice(t *testing.T) {
	service, st := testService(t)

	if outcome, _ := service.MoveIn("Ann", "Lee", "12"); outcome != OutcomeMoved {
		t.Fatalf("first move-in: got %v, want moved", outcome)
	}
	if outcome, _ := service.MoveIn("ann", "lee", "12"); outcome != OutcomeAlreadyResident {
		t.Fatalf("second move-in: got %v, want already-resident", outcome)
	}

	if countNamed(st.Document(), "Ann", "Lee") != 1 {
		t.Error("duplicate record created for the same unit")
	}
}

func TestMoveInSameNameDifferentUnit(t *testing.T) {
	service, st := testService(t)

	// Conflict checking is scoped to the unit: the same name moving
	// into a different unit produces a second record.
	if outcome, _ := service.MoveIn("Ann", "Lee", "12"); outcome != OutcomeMoved {
		t.Fatalf("first move-in: got %v, want moved", outcome)
	}
	if outcome, _ := service.MoveIn("Ann", "Lee", "13"); outcome != OutcomeMoved {
		t.Fatalf("second move-in: got %v, want moved", outcome)
	}

	if countNamed(st.Document(), "Ann", "Lee") != 2 {
		t.Error("expected two Ann Lee records in different units")
	}
}

func TestMoveOutRemovesAllUnits(t *testing.T) {
	service, st := testService(t)

	service.MoveIn("Ann", "Lee", "12")
	service.MoveIn("Ann", "Lee", "13")

	outcome, err := service.MoveOut("ANN", "lee")
	if err != nil {
		t.Fatalf("MoveOut: %v", err)
	}
	if outcome != OutcomeRemoved {
		t.Fatalf("got %v, want removed", outcome)
	}

	// Removal is bulk by name: both units are cleared.
	if countNamed(st.Document(), "Ann", "Lee") != 0 {
		t.Error("expected zero Ann Lee records after move-out")
	}
	// Unrelated people survive.
	if countNamed(st.Document(), "John", "Doe") != 1 {
		t.Error("unrelated record removed")
	}
}

func TestMoveOutPreservesHeldRecords(t *testing.T) {
	directory := t.TempDir()
	source := filepath.Join(directory, "property_data.json")
	seed := `{
  "people": [
    {"first_name": "John", "last_name": "Doe", "unit": "1", "roles": ["Resident"]},
    {"first_name": "Carlos", "last_name": "Rivera", "unit": "3", "roles": ["Resident", "Admin"]},
    {"first_name": "Jane", "last_name": "Smith", "unit": "1", "roles": ["Resident"]}
  ],
  "devices": {"thermostats": [], "lights": [], "locks": []}
}
`
	if err := os.WriteFile(source, []byte(seed), 0644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.Open(source, filepath.Join(directory, "property_data_changes.json"), logger)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	service := NewService(st, logger)

	// The session controller holds the operator as a pointer into the
	// roster for the whole session. Removing an earlier record must
	// not rewrite what that pointer sees.
	operator := &st.Document().People[1]

	if outcome, _ := service.MoveOut("John", "Doe"); outcome != OutcomeRemoved {
		t.Fatalf("MoveOut: got %v, want removed", outcome)
	}

	if operator.FirstName != "Carlos" || !operator.IsAdmin() {
		t.Errorf("held record changed identity after move-out: got %s %s %v",
			operator.FirstName, operator.LastName, operator.Roles)
	}
}

func TestMoveOutNotFound(t *testing.T) {
	service, st := testService(t)

	outcome, err := service.MoveOut("Nobody", "Here")
	if err != nil {
		t.Fatalf("MoveOut: %v", err)
	}
	if outcome != OutcomeNotFound {
		t.Fatalf("got %v, want not-found", outcome)
	}
	if len(st.Document().People) != 1 {
		t.Error("document mutated by a not-found move-out")
	}
}

func TestMoveInPersistFailureKeepsMutation(t *testing.T) {
	directory := t.TempDir()
	source := filepath.Join(directory, "property_data.json")
	if err := os.WriteFile(source, []byte(seedDocument), 0644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Destination in a directory that does not exist: every persist
	// fails.
	st, err := store.Open(source, filepath.Join(directory, "missing", "out.json"), logger)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	service := NewService(st, logger)

	outcome, err := service.MoveIn("Ann", "Lee", "12")
	if outcome != OutcomeMoved {
		t.Fatalf("got %v, want moved", outcome)
	}
	if err == nil {
		t.Fatal("expected a persistence error")
	}

	// Best-effort persistence: memory keeps the mutation.
	if countNamed(st.Document(), "Ann", "Lee") != 1 {
		t.Error("mutation rolled back on persist failure")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeMoved, "moved"},
		{OutcomeAlreadyResident, "already-resident"},
		{OutcomeRemoved, "removed"},
		{OutcomeNotFound, "not-found"},
		{Outcome(42), "outcome(42)"},
	}
	for _, test := range tests {
		if got := test.outcome.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
