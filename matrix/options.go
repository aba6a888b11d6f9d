// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options are a per-instance property preserved by Clone, Move and every
//     pure kernel that derives its result from a single operand.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultGuardNaNInf toggles finite-value validation on Set, Apply and
// ReadText. Off by default so that writes keep plain Go arithmetic semantics
// for every element type; integer kinds are never affected.
const DefaultGuardNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	guardNaNInf bool // DefaultGuardNaNInf
}

// WithNaNInfGuard makes the matrix reject NaN and ±Inf on every write path
// (Set, Apply, SetDiagonal, SetTriangular, SetUpperFrom, SetLowerFrom,
// ReadText) with ErrNaNInf.
//
// AI-Hints:
//   - Enable on matrices fed from untrusted text; inverse of a nearly singular
//     float matrix can still overflow into ±Inf through the pure kernels,
//     which do not consult the guard.
func WithNaNInfGuard() Option {
	return func(o *Options) { o.guardNaNInf = true }
}

// WithoutNaNInfGuard disables the guard (restores the default).
func WithoutNaNInfGuard() Option {
	return func(o *Options) { o.guardNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{guardNaNInf: DefaultGuardNaNInf}
}

// gatherOptions resolves opts left to right over the defaults.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// GuardNaNInf reports whether the NaN/Inf guard is enabled.
func (o Options) GuardNaNInf() bool { return o.guardNaNInf }
