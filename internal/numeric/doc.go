// Package numeric implements the numeric-pitfall demonstration harness
// for the numlab CLI.
//
// Three independent single-shot computations live here:
//
//   - CompareFormulas evaluates two mathematically equivalent callables
//     across a sampled domain and reports where floating-point
//     representation pulls them apart (catastrophic cancellation).
//   - CheckOverflow performs fixed-width two's-complement addition and
//     compares it against the arbitrary-precision result (math/big).
//   - CompareVectorScalar performs the same elementwise addition through
//     a batched array operation and a scalar loop, verifying bit-for-bit
//     identity and timing both paths.
//
// All operations are synchronous, deterministic, pure functions of their
// numeric inputs. Rendering is left entirely to the caller.
package numeric
