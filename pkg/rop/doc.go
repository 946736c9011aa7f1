// Package rop holds the small value-level collaborators shared by the
// pipeline packages.
//
// Key pieces:
// - IsNullish/AreNullish: nil (including typed nils) or NaN, never 0/false/""
// - Coalesce: first non-nullish value
// - Result[T]: outcome record of one attempt (success, failure, or failure with fallback)
package rop
