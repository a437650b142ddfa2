// Package render holds the renderer contract shared by output formats, a
// registry to select renderers by name, per-request RenderOptions, helpers
// that map server error payloads onto form fields, and a page renderer that
// wraps fragments in a Foundation-ready HTML document.
package render
