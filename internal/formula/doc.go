// Package formula provides the built-in catalog of mathematically
// equivalent formula pairs used by the comparison harness.
//
// Every pair evaluates a quantity that decays toward zero as the exponent
// x grows (the small quantity is t = 2^-x), written once in a numerically
// stable form and once in a form that suffers catastrophic cancellation.
// Sweeping a pair across its suggested domain shows the exact x where the
// naive form collapses.
//
// Pairs are identified by short names (decay, expm1, log1p, sqrt-cancel)
// and resolved through Lookup; scenario files reference them by the same
// names.
package formula
