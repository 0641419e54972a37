// Package uncertainty exposes correlation-aware uncertainty propagation
// as a tool provider.
//
// Values are created, combined, and read through tools operating on opaque
// string handles. Every tool that produces a value returns a new handle;
// correlation between handles derived from the same measurements is
// preserved, so uncertainty.subtract applied to a handle and itself yields
// an exact zero.
package uncertainty
