package abide

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry records the patterns synthesised for fields so the client-side
// Abide configuration can be generated alongside the markup. Entries are keyed
// by field id and live as long as the registry.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]string
	logger   *zap.SugaredLogger
}

// NewRegistry creates an empty registry. A nil logger disables conflict
// warnings.
func NewRegistry(logger *zap.SugaredLogger) *Registry {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Registry{
		patterns: make(map[string]string),
		logger:   logger,
	}
}

// Register stores pattern under id. Replacing a different pattern for the same
// id is allowed but logged, since it usually means two fields in the
// application share an id. The return value reports whether an existing,
// different pattern was replaced.
func (r *Registry) Register(id, pattern string) bool {
	r.mu.Lock()
	previous, exists := r.patterns[id]
	r.patterns[id] = pattern
	r.mu.Unlock()

	if exists && previous != pattern {
		r.logger.Warnw("field validation pattern overridden; field id may not be unique application wide",
			"field", id,
			"previous", previous,
			"pattern", pattern,
		)
		return true
	}
	return false
}

// Lookup returns the pattern stored for id.
func (r *Registry) Lookup(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pattern, ok := r.patterns[id]
	return pattern, ok
}

// Patterns returns a copy of the registered patterns.
func (r *Registry) Patterns() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.patterns))
	for id, pattern := range r.patterns {
		out[id] = pattern
	}
	return out
}

// IDs returns the registered field ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.patterns))
	for id := range r.patterns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of registered patterns.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}

// Script renders the registry as Abide configuration statements, one per
// field, ready to be placed in a <script> element before Foundation is
// initialised:
//
//	Foundation.Abide.defaults.patterns['username'] = /^(.){3,10}$/;
func (r *Registry) Script() string {
	patterns := r.Patterns()
	if len(patterns) == 0 {
		return ""
	}
	ids := make([]string, 0, len(patterns))
	for id := range patterns {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var builder strings.Builder
	for _, id := range ids {
		builder.WriteString("Foundation.Abide.defaults.patterns['")
		builder.WriteString(jsStringEscaper.Replace(id))
		builder.WriteString("'] = /")
		builder.WriteString(regexLiteral(patterns[id]))
		builder.WriteString("/;\n")
	}
	return builder.String()
}

var jsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\x3c`,
	">", `\x3e`,
)

// regexLiteral escapes unescaped forward slashes and characters that would
// terminate a JavaScript regex literal or the surrounding script element.
func regexLiteral(pattern string) string {
	var builder strings.Builder
	builder.Grow(len(pattern) + 4)
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			builder.WriteRune(r)
			escaped = false
		case r == '\\':
			builder.WriteRune(r)
			escaped = true
		case r == '/':
			builder.WriteString(`\/`)
		case r == '\n':
			builder.WriteString(`\n`)
		case r == '\r':
			builder.WriteString(`\r`)
		case r == '<':
			builder.WriteString(`\x3c`)
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
