// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package store loads, holds, and persists the property document.
//
// The document is read once at startup from a seed file and held in
// memory as the authoritative working copy. Mutations persist by
// rewriting a full snapshot to a separate destination file, so the
// seed is never overwritten in place. Persistence is best-effort: a
// failed save is reported but does not roll back the in-memory
// mutation, and is not retried.
//
// Seed files are operator-edited, so Load accepts JSONC (JSON with
// // comments and trailing commas). Snapshots are written as plain
// JSON in normalized form: string unit identifiers and real bools.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Sentinel errors for startup failures. Both are fatal: the caller
// must not enter an interactive session without a document.
var (
	// ErrNotFound means the source file does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrParse means the source file exists but is not a valid
	// document.
	ErrParse = errors.New("document malformed")
)

// Load reads and decodes the document at path. The content may be
// JSONC. Returns ErrNotFound or ErrParse (wrapped with the path) on
// the corresponding failure.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	stripped := jsonc.ToJSON(data)

	var document Document
	if err := json.Unmarshal(stripped, &document); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrParse, err)
	}

	document.normalize()
	return &document, nil
}

// Save writes a full snapshot of document to path, replacing any
// previous content. The write goes through a temporary file and a
// rename so a failed save never leaves a truncated snapshot behind.
func Save(document *Document, path string) error {
	document.normalize()

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	data = append(data, '\n')

	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary snapshot: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary snapshot: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary snapshot: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming snapshot into place: %w", err)
	}

	if parent, err := os.Open(filepath.Dir(path)); err == nil {
		parent.Sync()
		parent.Close()
	}

	return nil
}

// Store owns the in-memory working copy of the document for the
// lifetime of the process. There is exactly one Store per process and
// no locking: the program is single-threaded by design.
type Store struct {
	document    *Document
	destination string
	logger      *slog.Logger
}

// Open loads the document from source and returns a Store that will
// persist snapshots to destination.
func Open(source, destination string, logger *slog.Logger) (*Store, error) {
	document, err := Load(source)
	if err != nil {
		return nil, err
	}

	logger.Info("document loaded",
		"source", source,
		"people", len(document.People))

	return &Store{
		document:    document,
		destination: destination,
		logger:      logger,
	}, nil
}

// Document returns the working copy. Callers share the single
// instance; queries must not mutate it.
func (s *Store) Document() *Document {
	return s.document
}

// Destination returns the snapshot path Persist writes to.
func (s *Store) Destination() string {
	return s.destination
}

// Persist writes the working copy to the destination. A failure is
// returned for reporting but the working copy stays authoritative;
// callers continue the session either way.
func (s *Store) Persist() error {
	if err := Save(s.document, s.destination); err != nil {
		s.logger.Warn("snapshot save failed",
			"destination", s.destination,
			"error", err)
		return err
	}
	s.logger.Info("snapshot saved",
		"destination", s.destination,
		"people", len(s.document.People))
	return nil
}
