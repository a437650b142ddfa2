package openapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-abideform/pkg/model"
	"github.com/goliatone/go-abideform/pkg/validators"
	"github.com/goliatone/go-abideform/pkg/widgets"
)

var defaultMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger routes notices about skipped properties to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithIDPrefix prefixes every field id, keeping ids unique when several
// operations share property names on one page.
func WithIDPrefix(prefix string) Option {
	return func(b *Builder) {
		b.idPrefix = strings.TrimSpace(prefix)
	}
}

// WithMediaTypes sets the request body media types considered, in order of
// preference.
func WithMediaTypes(mediaTypes ...string) Option {
	return func(b *Builder) {
		if len(mediaTypes) > 0 {
			b.mediaTypes = append([]string(nil), mediaTypes...)
		}
	}
}

// Builder converts operation request bodies into forms.
type Builder struct {
	logger     *zap.SugaredLogger
	idPrefix   string
	mediaTypes []string
}

// NewBuilder constructs a Builder.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		logger:     zap.NewNop().Sugar(),
		mediaTypes: defaultMediaTypes,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Form builds the form for operationID. Fields follow the property order
// given by an `x-order` list on the body schema, then the remaining
// properties alphabetically.
func (b *Builder) Form(ctx context.Context, doc *Document, operationID string) (model.Form, error) {
	if err := ctx.Err(); err != nil {
		return model.Form{}, err
	}
	op, err := doc.Operation(operationID)
	if err != nil {
		return model.Form{}, err
	}

	schema, err := b.requestSchema(op)
	if err != nil {
		return model.Form{}, err
	}

	form := model.Form{
		ID:     op.ID,
		Action: op.Path,
		Method: op.Method,
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok, err := b.field(name, ref.Value, required[name])
		if err != nil {
			return model.Form{}, fmt.Errorf("openapi: operation %q property %q: %w", op.ID, name, err)
		}
		if !ok {
			b.logger.Debugw("skipping non scalar property",
				"operation", op.ID,
				"property", name,
			)
			continue
		}
		form.Fields = append(form.Fields, field)
	}
	return form, nil
}

func (b *Builder) requestSchema(op Operation) (*openapi3.Schema, error) {
	body := op.op.RequestBody
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", op.ID)
	}
	for _, mediaType := range b.mediaTypes {
		mt := body.Value.Content.Get(mediaType)
		if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
			continue
		}
		schema := mt.Schema.Value
		if !schema.Type.Is(openapi3.TypeObject) && len(schema.Properties) == 0 {
			return nil, fmt.Errorf("openapi: operation %q %s body is not an object", op.ID, mediaType)
		}
		return schema, nil
	}
	return nil, fmt.Errorf("openapi: operation %q has no request body for %s", op.ID, strings.Join(b.mediaTypes, ", "))
}

func (b *Builder) field(name string, schema *openapi3.Schema, required bool) (model.Field, bool, error) {
	kind := schemaType(schema)
	switch kind {
	case openapi3.TypeString, openapi3.TypeInteger, openapi3.TypeNumber, openapi3.TypeBoolean:
	default:
		return model.Field{}, false, nil
	}

	field := model.Field{
		ID:          b.idPrefix + name,
		Name:        name,
		Label:       label(name, schema.Title),
		Description: schema.Description,
		Value:       defaultValue(schema.Default),
		InputType:   inputType(kind, schema.Format),
	}

	if required {
		field.Validators = append(field.Validators, validators.Required{})
	}

	if schema.MinLength > 0 || schema.MaxLength != nil {
		minLen, maxLen := model.Unbounded, model.Unbounded
		if schema.MinLength > 0 {
			minLen = int(schema.MinLength)
		}
		if schema.MaxLength != nil {
			maxLen = int(*schema.MaxLength)
		}
		length, err := validators.NewLength(minLen, maxLen, "")
		if err != nil {
			return model.Field{}, false, err
		}
		field.Validators = append(field.Validators, length)
	}

	isEmail := strings.EqualFold(schema.Format, "email")
	if isEmail {
		field.Validators = append(field.Validators, validators.Email{})
	}

	if schema.Pattern != "" {
		// Only one validator may mirror a pattern; next to email the
		// expression is enforced server side only.
		if isEmail {
			re, err := validators.NewRegexp(schema.Pattern, false, "")
			if err != nil {
				return model.Field{}, false, err
			}
			field.Validators = append(field.Validators, re)
		} else {
			pattern, err := validators.NewPattern(schema.Pattern, "")
			if err != nil {
				return model.Field{}, false, err
			}
			field.Validators = append(field.Validators, pattern)
		}
	}
	return field, true, nil
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		if schema.Format != "" || schema.Pattern != "" || schema.MaxLength != nil {
			return openapi3.TypeString
		}
		return ""
	}
	for _, candidate := range schema.Type.Slice() {
		if candidate != openapi3.TypeNull {
			return candidate
		}
	}
	return ""
}

func inputType(kind, format string) string {
	switch strings.ToLower(format) {
	case "email":
		return widgets.Email.Name
	case "password":
		return widgets.Password.Name
	case "uri", "url":
		return widgets.URL.Name
	case "date":
		return widgets.Date.Name
	}
	switch kind {
	case openapi3.TypeInteger, openapi3.TypeNumber:
		return widgets.Number.Name
	case openapi3.TypeBoolean:
		return widgets.Checkbox.Name
	}
	return ""
}

func propertyOrder(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	seen := make(map[string]bool, len(schema.Properties))

	if raw, ok := schema.Extensions["x-order"].([]any); ok {
		for _, entry := range raw {
			name, ok := entry.(string)
			if !ok || seen[name] {
				continue
			}
			if _, exists := schema.Properties[name]; exists {
				names = append(names, name)
				seen[name] = true
			}
		}
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func label(name, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
	for idx, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[idx] = string(runes)
	}
	return strings.Join(words, " ")
}

func defaultValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
