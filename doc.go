// Package aria provides typed WAI-ARIA attribute helpers.
//
// Each helper maps a strongly-typed value to the canonical string the
// ARIA specification requires and pairs it with its fixed attribute
// name, producing an Attr. Closed token sets (roles, aria-current
// values, live-region politeness, and so on) are typed enums, so
// illegal tokens cannot be constructed; the zero value of each
// optional enum encodes that attribute's own absent sentinel
// ("false" for aria-current, "none" for aria-sort, "undefined" for
// aria-orientation).
//
// # Usage
//
// Helpers are pure and stateless; the resulting Attr pairs are meant
// to be attached to markup nodes by a host UI layer:
//
//	aria.Role(aria.RoleButton)         // role="button"
//	aria.Pressed(aria.TristateMixed)   // aria-pressed="mixed"
//	aria.LabelledBy("title", "sub")    // aria-labelledby="title sub"
//	aria.Expanded(aria.StateUndefined) // aria-expanded="undefined"
//
// The package performs no validation beyond what the types enforce:
// element IDs are not checked for existence, and numeric ranges stated
// by the ARIA spec (e.g. aria-level >= 1) are the caller's
// responsibility.
package aria
