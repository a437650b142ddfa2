// Package orchestrator wires form sources, decorators and renderers into a
// single Generate call used by the CLI and by applications that want HTML
// from a form definition in one step.
package orchestrator
