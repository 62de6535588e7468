// Package validation evaluates declarative field rules against a flat or
// nested answer record, producing localized messages as data rather than
// errors so callers can surface them inline.
package validation

import (
	"regexp"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

// Kind enumerates the typed rule families. New kinds are a compile-time
// addition; every consumer switches exhaustively over this set.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPhone
	KindPostalCode
	KindDate
	KindNumber
	KindCurrency
	KindFile
)

// DateBound supplies a date limit, either fixed or computed from other
// answers (e.g. a separation date may not precede the marriage date).
type DateBound struct {
	Date string
	Fn   func(record answers.Record) string
}

func (b DateBound) resolve(record answers.Record) string {
	if b.Fn != nil {
		return b.Fn(record)
	}
	return b.Date
}

func (b DateBound) isSet() bool {
	return b.Date != "" || b.Fn != nil
}

// FileValue carries upload facts for KindFile rules.
type FileValue struct {
	Name     string
	MimeType string
	Size     int64
}

// Rules is the declarative constraint set for one field. Evaluation
// short-circuits on the first failing rule, in the order: required presence,
// kind-specific checks, string length, pattern, cross-field match, custom.
type Rules struct {
	Required bool
	Kind     Kind

	// Country selects the postal-code pattern; defaults to CA.
	Country string

	MinLength int
	MaxLength int

	Min *float64
	Max *float64

	MinDate DateBound
	MaxDate DateBound
	MinAge  int

	Pattern    *regexp.Regexp
	PatternKey string

	// Match names another field path whose value must equal this one.
	Match    string
	MatchKey string

	MaxSizeMB int64
	Accept    []string

	// Check runs last; its error message is reported verbatim.
	Check func(value any, record answers.Record) error
}

// Schema maps dotted field paths to their rules.
type Schema map[string]Rules

// Result is the outcome of validating a record against a schema. Errors map
// field paths to localized messages; it is data, never a thrown failure.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// FieldResult reports one field's outcome.
type FieldResult struct {
	Valid   bool
	Message string
}
