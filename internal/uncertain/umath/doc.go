// Package umath provides elementary functions over uncertain.Value.
//
// Each single-argument function computes the ordinary nominal result,
// validates its domain, and scales the input's entire derivative map by
// f'(nominal) — the single-variable chain rule. The two-argument functions
// (Atan2, Hypot) merge weighted contributions from both operands, so
// expressions that reuse the same atomic variable stay correlated.
//
// Functions whose domain (or whose derivative's domain) is restricted return
// an error wrapping uncertain.ErrDomain; the rest are total and return the
// value directly, mirroring the split in the math package between functions
// that can and cannot fail.
package umath
