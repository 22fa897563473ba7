// Copyright 2026 The Property Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the property
// console: a pflag-backed command tree with synthesized help,
// closest-match suggestions for mistyped subcommands and flags,
// exit-code errors, JSON output, and structured logging setup.
package cli
