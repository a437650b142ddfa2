// Package foundation renders form fields as Foundation 6 grid rows with
// Abide client-side validation attributes.
//
// Each input spans a full row: a right aligned label column shown on large
// screens, and an input column holding a second label for small screens, the
// input itself and a help text paragraph referenced through
// aria-describedby. Length constraints without an explicit pattern are
// translated into a synthesised pattern registered with an abide.Registry so
// the page can ship a single patterns script.
package foundation
