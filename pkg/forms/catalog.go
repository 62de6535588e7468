// Package forms holds the New Brunswick family-law form catalog: which forms a
// case type requires, and how each form's fields are produced from the
// canonical case record.
package forms

import (
	"time"

	"github.com/goliatone/go-courtforms/pkg/casefile"
)

// FieldKind tells the renderer how to draw a mapped field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDate
	KindNumber
	KindCurrency
	KindCheckbox
	KindSignature
)

// FieldMapping describes how one form field is produced from the canonical
// case record. Resolve returns answers.Missing when the record cannot supply
// the value.
type FieldMapping struct {
	Label         string
	LabelFR       string
	Description   string
	DescriptionFR string
	Kind          FieldKind
	Required      bool
	Options       []string
	Resolve       func(*casefile.File) any
	Format        func(any) string
	Validate      func(any) error
}

// Definition is one catalog entry, keyed by form ID. Definitions are built at
// catalog construction and never mutated afterwards.
type Definition struct {
	ID                  string
	Title               string
	TitleFR             string
	ApplicableCaseTypes []string
	RequiredFieldPaths  []string
	Fields              map[string]FieldMapping
	FieldOrder          []string
}

// Option customises a Catalog.
type Option func(*Catalog)

// WithClock overrides the timestamp source used by generated values such as
// court file numbers. Useful in tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Catalog) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Catalog answers which forms a case needs and what each form contains.
type Catalog struct {
	definitions map[string]Definition
	clock       func() time.Time
}

// NewCatalog builds the catalog applying any provided options.
func NewCatalog(options ...Option) *Catalog {
	c := &Catalog{clock: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.definitions = definitions(c.clock)
	return c
}

// Definition returns the catalog entry for a form ID.
func (c *Catalog) Definition(formID string) (Definition, error) {
	def, ok := c.definitions[formID]
	if !ok {
		return Definition{}, &UnknownFormError{FormID: formID}
	}
	return def, nil
}

// baseForms maps a case type to its starter form list. Conditional forms are
// appended by DetermineRequired.
var baseForms = map[string][]string{
	"Simple or joint divorce":      {"72B"},
	"Separation with other issues": {"72A"},
	"Child Support":                {"72A", "72J"},
	"Spousal Support":              {"72A", "72J"},
	"Property Division":            {"72A", "72J"},
}

// DetermineRequired returns the deduplicated, order-stable form list for a
// case type and its derived circumstances. Conditional forms append after the
// base list; the first occurrence of an ID wins its position.
func (c *Catalog) DetermineRequired(caseType string, circumstances casefile.Circumstances) []string {
	ids := append([]string(nil), baseForms[caseType]...)
	if circumstances.HasChildren {
		ids = append(ids, "72J")
	}
	if !circumstances.IsJointApplication {
		ids = append(ids, "72U")
	}
	if circumstances.InternationalElements {
		ids = append(ids, "72G")
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
