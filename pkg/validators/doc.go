// Package validators provides server-side validators whose rules renderers can
// mirror into client-side markup.
//
// Email follows the WHATWG "valid e-mail address" production, which is also
// what Foundation's Abide uses for its built-in `email` pattern. Length and
// Pattern expose their constraints through the model capability interfaces;
// Regexp deliberately does not, so arbitrary server-side expressions are not
// leaked into the page unless the caller opts in.
//
// Default messages are resolved through a golang.org/x/text message catalog.
// Pass a translator from NewTranslator or TranslatorFor to model.Form.Validate
// to localise them; a caller supplied Message is always used verbatim.
package validators
