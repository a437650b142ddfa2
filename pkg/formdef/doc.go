// Package formdef loads form definitions, including their validator chains,
// from JSON or YAML files so applications and the CLI can describe forms
// without writing Go.
package formdef
