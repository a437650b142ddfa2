package foundation

// Foundation 6 grid and Abide classes used by the row layout.
const (
	ClassRow          = "row"
	ClassLabelColumn  = "large-2 columns show-for-large"
	ClassLabel        = "text-right middle"
	ClassInputColumn  = "small-12 large-10 columns"
	ClassInlineLabel  = "hide-for-large"
	ClassHelpText     = "help-text"
	ClassInvalidInput = "is-invalid-input"
	ClassFormError    = "form-error is-visible"
)

// DescriptionSuffix is appended to the field id to form the help text id
// referenced by aria-describedby.
const DescriptionSuffix = "-desc"
