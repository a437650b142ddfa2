// Package model defines the form and field types consumed by the renderers
// together with the capability interfaces validators implement. A validator
// always implements Validator; it may additionally expose a client-side
// pattern (PatternProvider), length bounds (LengthConstraint, with Unbounded
// marking an open end) or mark the field as required (RequiredFlagger).
// Renderers only ever look at these capabilities, never at concrete
// validator types, so custom validators participate in HTML attribute
// derivation by implementing the relevant interface.
package model
