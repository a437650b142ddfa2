// Package openapi builds form definitions from OpenAPI 3 request bodies.
//
// Scalar properties of an operation's request body become fields; their
// constraints become validators so the rendered inputs carry the same rules
// the API enforces:
//
//	required            -> validators.Required
//	minLength/maxLength -> validators.Length
//	format: email       -> validators.Email
//	pattern             -> validators.Pattern (validators.Regexp next to email)
package openapi
