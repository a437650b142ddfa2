package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-abideform/pkg/model"
)

// ErrorMapping splits an error payload into field-level messages keyed by
// field id and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload assigns server error messages to form fields. Keys may be
// bare field ids or names, dotted or slash separated paths (`body.email`,
// `/payload/email`, `items[0].email`); the last segment matching a field id
// or name wins. Keys that match no field become form-level messages so they
// are never dropped.
func MapErrorPayload(form model.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	lookup := make(map[string]string, len(form.Fields)*2)
	for _, field := range form.Fields {
		id := field.EffectiveID()
		if id == "" {
			continue
		}
		lookup[id] = id
		if name := strings.TrimSpace(field.Name); name != "" {
			if _, taken := lookup[name]; !taken {
				lookup[name] = id
			}
		}
	}

	for raw, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		id, ok := resolveErrorKey(raw, lookup)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[id] = normalizeMessages(append(mapping.Fields[id], normalized...))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func resolveErrorKey(raw string, lookup map[string]string) (string, bool) {
	key := strings.TrimSpace(raw)
	if isFormLevelKey(key) {
		return "", false
	}
	if id, ok := lookup[key]; ok {
		return id, true
	}

	segments := splitErrorPath(key)
	for idx := len(segments) - 1; idx >= 0; idx-- {
		if id, ok := lookup[segments[idx]]; ok {
			return id, true
		}
	}
	return "", false
}

func splitErrorPath(path string) []string {
	replacer := strings.NewReplacer("[", ".", "]", "", "#", "", "$", "")
	parts := strings.FieldsFunc(replacer.Replace(path), func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
