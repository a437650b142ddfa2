package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-abideform/pkg/model"
)

// LoadFS walks fsys and parses every JSON/YAML definition file. Form ids must
// be unique across files and field ids unique within a file. A nil fsys yields
// an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a single definition document. source names the document in
// error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{
		forms:   make(map[string]model.Form),
		sources: make(map[string]string),
	}
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	fieldOwners := make(map[string]string)
	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("formdef: file %s defines an empty form id", source)
		}
		if _, exists := s.forms[id]; exists {
			return fmt.Errorf("formdef: duplicate form %q (file %s, first defined in %s)", id, source, s.sources[id])
		}

		form, err := normaliseForm(raw, id, source)
		if err != nil {
			return err
		}
		for _, field := range form.Fields {
			fieldID := field.EffectiveID()
			if owner, taken := fieldOwners[fieldID]; taken {
				return fmt.Errorf("formdef: file %s uses field id %q in forms %q and %q", source, fieldID, owner, id)
			}
			fieldOwners[fieldID] = id
		}

		s.forms[id] = form
		s.sources[id] = source
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formdef: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("formdef: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(raw formFile, id, source string) (model.Form, error) {
	form := model.Form{
		ID:     id,
		Action: strings.TrimSpace(raw.Action),
		Method: strings.ToUpper(strings.TrimSpace(raw.Method)),
		Fields: make([]model.Field, 0, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, rawField := range raw.Fields {
		field := model.Field{
			ID:          strings.TrimSpace(rawField.ID),
			Name:        strings.TrimSpace(rawField.Name),
			Label:       rawField.Label,
			Description: rawField.Description,
			Value:       rawField.Value,
			Required:    rawField.Required,
			InputType:   strings.ToLower(strings.TrimSpace(rawField.Type)),
		}
		fieldID := field.EffectiveID()
		if fieldID == "" {
			return model.Form{}, fmt.Errorf("formdef: form %q (file %s) field %d has neither id nor name", id, source, idx)
		}
		if field.Name == "" {
			field.Name = fieldID
		}
		if _, exists := seen[fieldID]; exists {
			return model.Form{}, fmt.Errorf("formdef: form %q (file %s) defines duplicate field id %q", id, source, fieldID)
		}
		seen[fieldID] = struct{}{}

		for vIdx, rawValidator := range rawField.Validators {
			validator, err := buildValidator(rawValidator)
			if err != nil {
				return model.Form{}, fmt.Errorf("formdef: form %q (file %s) field %q validator %d: %w", id, source, fieldID, vIdx, err)
			}
			field.Validators = append(field.Validators, validator)
		}
		form.Fields = append(form.Fields, field)
	}
	return form, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
