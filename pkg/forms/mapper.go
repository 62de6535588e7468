package forms

import (
	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
)

// MappedField is one resolved form field with its presentation metadata.
type MappedField struct {
	Value             any
	Kind              FieldKind
	Label             string
	Description       string
	Missing           bool
	ValidationMessage string
}

// FieldSet is the mapper's output for one (form, case record) pair. It is
// consumed immediately by the renderer and not retained.
type FieldSet struct {
	FormID string
	Title  string
	Order  []string
	Fields map[string]MappedField
}

// Field returns the mapped field for a key, zero-valued when absent.
func (s *FieldSet) Field(key string) MappedField {
	return s.Fields[key]
}

// MapperOption customises a Mapper.
type MapperOption func(*Mapper)

// WithLocale selects the label/placeholder language. Defaults to English;
// unknown locales fall back to English per label.
func WithLocale(locale string) MapperOption {
	return func(m *Mapper) {
		if locale != "" {
			m.locale = locale
		}
	}
}

// Mapper fills form definitions from canonical case records.
type Mapper struct {
	catalog *Catalog
	locale  string
}

// NewMapper builds a Mapper over a catalog.
func NewMapper(catalog *Catalog, options ...MapperOption) *Mapper {
	m := &Mapper{catalog: catalog, locale: "en"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

var missingPlaceholders = map[string]string{
	"en": "Information not provided",
	"fr": "Information non fournie",
}

// Map resolves every field mapping of a form against the case record.
// Required fields that resolve to Missing are collected and reported together
// in one MissingFieldError; the mapper never emits a partial field set for a
// form with missing required fields. Optional missing fields carry the
// localized placeholder instead.
func (m *Mapper) Map(formID string, file *casefile.File) (*FieldSet, error) {
	def, err := m.catalog.Definition(formID)
	if err != nil {
		return nil, err
	}

	set := &FieldSet{
		FormID: def.ID,
		Title:  m.title(def),
		Order:  append([]string(nil), def.FieldOrder...),
		Fields: make(map[string]MappedField, len(def.FieldOrder)),
	}

	var missing []string
	for _, key := range def.FieldOrder {
		mapping := def.Fields[key]
		field := MappedField{
			Kind:        mapping.Kind,
			Label:       m.label(mapping),
			Description: m.description(mapping),
		}

		value := mapping.Resolve(file)
		if value == nil || answers.IsMissing(value) {
			if mapping.Required {
				missing = append(missing, field.Label)
				continue
			}
			field.Missing = true
			field.Value = m.placeholder()
			set.Fields[key] = field
			continue
		}

		if mapping.Format != nil {
			field.Value = mapping.Format(value)
		} else {
			field.Value = value
		}
		if mapping.Validate != nil {
			if err := mapping.Validate(field.Value); err != nil {
				field.ValidationMessage = err.Error()
			}
		}
		set.Fields[key] = field
	}

	if len(missing) > 0 {
		return nil, &MissingFieldError{FormID: def.ID, Labels: missing}
	}
	return set, nil
}

func (m *Mapper) title(def Definition) string {
	if m.locale == "fr" && def.TitleFR != "" {
		return def.TitleFR
	}
	return def.Title
}

func (m *Mapper) label(mapping FieldMapping) string {
	if m.locale == "fr" && mapping.LabelFR != "" {
		return mapping.LabelFR
	}
	return mapping.Label
}

func (m *Mapper) description(mapping FieldMapping) string {
	if m.locale == "fr" && mapping.DescriptionFR != "" {
		return mapping.DescriptionFR
	}
	return mapping.Description
}

func (m *Mapper) placeholder() string {
	if p, ok := missingPlaceholders[m.locale]; ok {
		return p
	}
	return missingPlaceholders["en"]
}
