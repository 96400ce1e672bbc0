// Package model defines the domain types and value objects for the
// numlab CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Domain, ComparisonResult, OverflowReport, VectorReport)
// are transient representations of single-shot numeric computations —
// there is no persistent state of any kind.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
