// Package model defines the domain types for the numlab CLI.
//
// All values here are transient: constructed, computed over, and printed
// within a single command invocation. Reports carry everything the CLI
// layer needs to render either a text table or structured JSON, so the
// computation packages never format output themselves.
package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid inputs. All messages share the "numlab: "
// prefix for consistency and easy grepping across output. Callers match
// them with errors.Is; the CLI layer wraps them in CLIError to attach
// exit codes.
var (
	// ErrInvalidBitWidth is returned when an overflow check is requested
	// for a bit width outside the supported range (2-64).
	ErrInvalidBitWidth = errors.New("numlab: invalid bit width")

	// ErrOperandOutOfRange is returned when an overflow-check operand is
	// not representable at the requested bit width.
	ErrOperandOutOfRange = errors.New("numlab: operand out of range for bit width")

	// ErrInvalidDomain is returned when a comparison domain fails
	// validation (min > max, or fewer than one sample point).
	ErrInvalidDomain = errors.New("numlab: invalid domain")

	// ErrInvalidTolerance is returned when a relative tolerance is
	// negative or not finite.
	ErrInvalidTolerance = errors.New("numlab: invalid relative tolerance")

	// ErrInvalidSize is returned when a vector comparison is requested
	// for a non-positive element count.
	ErrInvalidSize = errors.New("numlab: invalid vector size")

	// ErrUnknownPair is returned when a formula-pair name is not in the
	// built-in registry.
	ErrUnknownPair = errors.New("numlab: unknown formula pair")
)

// DefaultRelTolerance is the relative-error threshold above which a
// comparison point is flagged as divergent. 1% is well clear of ordinary
// rounding noise (a few ULPs) while catching every point inside a
// catastrophic-cancellation regime.
const DefaultRelTolerance = 0.01

// Domain describes the sampling grid for a formula comparison:
// Points evenly spaced x values across the closed interval [Min, Max].
//
// A single-point domain (Points == 1) samples only Min; Min == Max is
// allowed and samples the same x repeatedly.
type Domain struct {
	// Min is the inclusive lower bound of the sampled interval.
	Min float64 `json:"min" yaml:"min"`

	// Max is the inclusive upper bound of the sampled interval.
	Max float64 `json:"max" yaml:"max"`

	// Points is the number of evenly spaced samples, including both
	// endpoints. Must be at least 1.
	Points int `json:"points" yaml:"points"`
}

// Validate checks that the domain describes a usable sampling grid.
// It returns ErrInvalidDomain (wrapped with detail) on failure.
func (d Domain) Validate() error {
	if d.Points < 1 {
		return fmt.Errorf("%w: points must be at least 1, got %d", ErrInvalidDomain, d.Points)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%w: min %g exceeds max %g", ErrInvalidDomain, d.Min, d.Max)
	}
	// NaN comparisons are always false, so the min>max check above does
	// not catch NaN bounds. Reject them explicitly.
	if d.Min != d.Min || d.Max != d.Max {
		return fmt.Errorf("%w: bounds must not be NaN", ErrInvalidDomain)
	}
	return nil
}

// String returns a compact human-readable form of the domain,
// e.g. "[0, 70] x71".
func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g] x%d", d.Min, d.Max, d.Points)
}

// ComparisonPoint records the evaluation of two mathematically equivalent
// formulas at a single x and how far apart floating-point arithmetic
// pulled them.
type ComparisonPoint struct {
	// X is the sample position.
	X float64 `json:"x"`

	// A is the first formula's value at X.
	A float64 `json:"a"`

	// B is the second formula's value at X.
	B float64 `json:"b"`

	// AbsError is the signed pointwise difference A - B.
	AbsError float64 `json:"absError"`

	// RelError is |A-B| / max(|A|, |B|). Only meaningful when
	// RelDefined is true.
	RelError float64 `json:"relError"`

	// RelDefined reports whether RelError carries a value. It is false
	// when both formulas produced exactly zero (the underflow sentinel
	// case: zero absolute error, undefined relative error) and when
	// either formula produced a non-finite value.
	RelDefined bool `json:"relDefined"`

	// Flagged is true when the point's relative error exceeds the
	// comparison's tolerance, or when a formula produced a non-finite
	// value. Both-underflow points are never flagged.
	Flagged bool `json:"flagged"`
}

// ComparisonResult aggregates a full formula-pair sweep across a domain.
type ComparisonResult struct {
	// PairName identifies the formula pair, when the comparison was run
	// through the registry. Empty for ad-hoc callable pairs.
	PairName string `json:"pairName,omitempty"`

	// Domain is the sampling grid the comparison ran over.
	Domain Domain `json:"domain"`

	// RelTolerance is the flagging threshold used.
	RelTolerance float64 `json:"relTolerance"`

	// Points holds one entry per sample, in domain order.
	Points []ComparisonPoint `json:"points"`

	// FlaggedCount is the number of flagged points.
	FlaggedCount int `json:"flaggedCount"`

	// MaxAbsError is the largest |AbsError| across finite points.
	MaxAbsError float64 `json:"maxAbsError"`

	// MaxRelError is the largest RelError across points where the
	// relative error is defined.
	MaxRelError float64 `json:"maxRelError"`

	// FirstFlaggedX is the x of the first flagged point in domain order.
	// Only meaningful when FlaggedCount > 0.
	FirstFlaggedX float64 `json:"firstFlaggedX,omitempty"`
}

// OverflowReport records one fixed-width addition checked against
// arbitrary precision.
type OverflowReport struct {
	// BitWidth is the two's-complement width the addition wrapped at.
	BitWidth uint `json:"bitWidth"`

	// A and B are the operands.
	A int64 `json:"a"`
	B int64 `json:"b"`

	// Wrapped is the signed result under two's-complement wraparound
	// at BitWidth.
	Wrapped int64 `json:"wrapped"`

	// Exact is the arbitrary-precision result, as a decimal string so
	// values outside int64 survive JSON round-trips losslessly.
	Exact string `json:"exact"`

	// Overflowed reports whether the wrapped result differs from the
	// exact result.
	Overflowed bool `json:"overflowed"`

	// MinValue and MaxValue are the representable bounds at BitWidth
	// (-2^(w-1) and 2^(w-1)-1).
	MinValue int64 `json:"minValue"`
	MaxValue int64 `json:"maxValue"`
}

// VectorReport records one vectorized-vs-scalar elementwise addition run.
type VectorReport struct {
	// Size is the element count of each operand slice.
	Size int `json:"size"`

	// BitIdentical reports whether every element of the vectorized
	// result matched the scalar result bit-for-bit.
	BitIdentical bool `json:"bitIdentical"`

	// MismatchIndex is the first index where the results differed,
	// or -1 when BitIdentical is true.
	MismatchIndex int `json:"mismatchIndex"`

	// VectorizedNs and ScalarNs are single-shot wall-clock timings in
	// nanoseconds for the batched and loop paths respectively. They
	// illustrate relative cost only; they are not benchmark statistics.
	VectorizedNs int64 `json:"vectorizedNs"`
	ScalarNs     int64 `json:"scalarNs"`
}

// RoundoffExample is one canned IEEE-754 rounding demonstration:
// an expression a reader would expect to be exact, the value double
// precision actually produces, and a one-line explanation.
type RoundoffExample struct {
	// Expression is the source-level arithmetic being demonstrated.
	Expression string `json:"expression"`

	// Value is the computed result rendered with enough digits to show
	// the discrepancy (via strconv's shortest round-trip formatting).
	Value string `json:"value"`

	// Note explains what the result demonstrates.
	Note string `json:"note"`
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates a numeric input failed validation
	// (bad bit width, bad domain, bad tolerance, bad vector size).
	ExitInvalidArgument ExitCode = 2

	// ExitUnknownPair indicates the named formula pair is not in the
	// built-in registry.
	ExitUnknownPair ExitCode = 3

	// ExitScenarioError indicates a scenario file could not be read,
	// parsed, or validated.
	ExitScenarioError ExitCode = 4

	// ExitFlaggedPoints indicates a comparison produced flagged points
	// while --fail-on-flagged was set.
	ExitFlaggedPoints ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
