package abideform_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	abideform "github.com/goliatone/go-abideform"
	"github.com/goliatone/go-abideform/pkg/orchestrator"
)

const contactDefinition = `
forms:
  contact:
    action: /contact
    method: post
    fields:
      - name: email
        label: Email
        validators:
          - kind: required
          - kind: email
`

func TestGenerateHTML(t *testing.T) {
	source, err := abideform.LoadDefinitions(fstest.MapFS{
		"forms/contact.yaml": &fstest.MapFile{Data: []byte(contactDefinition)},
	})
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}

	out, err := abideform.GenerateHTML(context.Background(), source, "contact", "")
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}

	html := string(out)
	for _, snippet := range []string{
		`<form action="/contact" data-abide id="contact" method="post" novalidate>`,
		`pattern="email" required type="email"`,
	} {
		if !strings.Contains(html, snippet) {
			t.Fatalf("expected output to contain %q, got:\n%s", snippet, html)
		}
	}
}

func TestGenerateHTMLUnknownForm(t *testing.T) {
	source, err := abideform.LoadDefinitions(nil)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	_, err = abideform.GenerateHTML(context.Background(), source, "missing", "")
	if !errors.Is(err, orchestrator.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestPageTemplates(t *testing.T) {
	if _, err := fs.Stat(abideform.PageTemplates(), "templates/page.tpl"); err != nil {
		t.Fatalf("expected embedded page template: %v", err)
	}
}
