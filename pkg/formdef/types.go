package formdef

import (
	"sort"

	"github.com/goliatone/go-abideform/pkg/model"
)

// Store holds the forms parsed from one or more definition files.
type Store struct {
	forms   map[string]model.Form
	sources map[string]string
}

// Form returns a copy of the form with the supplied id.
func (s *Store) Form(id string) (model.Form, bool) {
	if s == nil {
		return model.Form{}, false
	}
	form, ok := s.forms[id]
	if !ok {
		return model.Form{}, false
	}
	form.Fields = append([]model.Field(nil), form.Fields...)
	return form, true
}

// Source reports the file a form was loaded from.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs lists form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Action string      `json:"action" yaml:"action"`
	Method string      `json:"method" yaml:"method"`
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Label       string          `json:"label" yaml:"label"`
	Description string          `json:"description" yaml:"description"`
	Value       string          `json:"value" yaml:"value"`
	Required    bool            `json:"required" yaml:"required"`
	Type        string          `json:"type" yaml:"type"`
	Validators  []validatorFile `json:"validators" yaml:"validators"`
}

// validatorFile describes one entry of a field's validator chain. Min and Max
// are pointers so an omitted bound reads as unbounded rather than zero.
type validatorFile struct {
	Kind       string `json:"kind" yaml:"kind"`
	Min        *int   `json:"min" yaml:"min"`
	Max        *int   `json:"max" yaml:"max"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	IgnoreCase bool   `json:"ignoreCase" yaml:"ignoreCase"`
	Message    string `json:"message" yaml:"message"`
}
