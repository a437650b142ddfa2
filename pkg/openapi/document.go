package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when a document has no operation with the
// requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Document wraps a parsed OpenAPI document together with its origin.
type Document struct {
	location string
	spec     *openapi3.T
}

// Operation summarises an operation that accepts a request body.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string

	op *openapi3.Operation
}

// Load parses raw document bytes (JSON or YAML) and validates them.
func Load(ctx context.Context, data []byte, location string) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("openapi: document %s is empty", location)
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", location, err)
	}
	return newDocument(ctx, spec, location)
}

// LoadFile reads and parses a document from disk, resolving relative
// references against its directory.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	clean := filepath.Clean(path)
	spec, err := loader.LoadFromFile(clean)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", clean, err)
	}
	return newDocument(ctx, spec, clean)
}

// LoadFS parses the named document from fsys. External references are
// resolved inside fsys.
func LoadFS(ctx context.Context, fsys fs.FS, name string) (*Document, error) {
	if fsys == nil {
		return nil, errors.New("openapi: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(_ *openapi3.Loader, location *url.URL) ([]byte, error) {
		return fs.ReadFile(fsys, strings.TrimPrefix(location.Path, "/"))
	}

	spec, err := loader.LoadFromDataWithPath(data, &url.URL{Path: name})
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", name, err)
	}
	return newDocument(ctx, spec, name)
}

func newDocument(ctx context.Context, spec *openapi3.T, location string) (*Document, error) {
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate %s: %w", location, err)
	}
	return &Document{location: location, spec: spec}, nil
}

// Location reports where the document was loaded from.
func (d *Document) Location() string {
	if d == nil {
		return ""
	}
	return d.location
}

// Operations lists operations that declare a request body, sorted by id.
// Operations without an operationId are keyed as `method:path`.
func (d *Document) Operations() []Operation {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return nil
	}

	var out []Operation
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.RequestBody == nil {
				continue
			}
			id := strings.TrimSpace(op.OperationID)
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, Operation{
				ID:      id,
				Method:  strings.ToUpper(method),
				Path:    path,
				Summary: op.Summary,
				op:      op,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Operation returns the operation with the supplied id.
func (d *Document) Operation(id string) (Operation, error) {
	for _, op := range d.Operations() {
		if op.ID == id {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
}
