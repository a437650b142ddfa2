// Package testsupport holds fixture and golden file helpers shared by tests.
package testsupport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-abideform/pkg/formdef"
	"github.com/goliatone/go-abideform/pkg/model"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// LoadForm parses a form definition file and returns the form with formID.
func LoadForm(path, formID string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: read form definition: %w", err)
	}
	store, err := formdef.Parse(data, filepath.Base(path))
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: parse form definition: %w", err)
	}
	form, ok := store.Form(formID)
	if !ok {
		return model.Form{}, fmt.Errorf("testsupport: form %q not found in %s", formID, path)
	}
	return form, nil
}

// MustLoadForm is LoadForm for tests.
func MustLoadForm(t *testing.T, path, formID string) model.Form {
	t.Helper()
	form, err := LoadForm(path, formID)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
