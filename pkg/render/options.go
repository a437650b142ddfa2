package render

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the form definition.
type RenderOptions struct {
	// Action and Method override the form's submission target.
	Action string
	Method string
	// Values pre-populates inputs keyed by field id. Values win over the
	// field's own Value.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field id
	// (see MapErrorPayload for normalising arbitrary payload keys). Messages
	// are appended to any errors already stored on the field.
	Errors map[string][]string
}
