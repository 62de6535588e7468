// Package documents owns the legal-category pathway tables: which supporting
// documents a case requires, conditional requirements, and upload quality
// checks.
package documents

import "fmt"

// CheckKind selects the category-specific secondary validation that runs after
// the base required-document coverage check. The set is closed; consumers
// switch exhaustively over it.
type CheckKind string

const (
	CheckNone        CheckKind = "none"
	CheckDivorce     CheckKind = "divorce"
	CheckChildren    CheckKind = "children"
	CheckSupport     CheckKind = "support"
	CheckProperty    CheckKind = "property"
	CheckEnforcement CheckKind = "enforcement"
)

// UnmarshalYAML validates the check kind at load time so a typo in the table
// is a startup failure, not a silently skipped validation.
func (k *CheckKind) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch kind := CheckKind(raw); kind {
	case CheckNone, CheckDivorce, CheckChildren, CheckSupport, CheckProperty, CheckEnforcement:
		*k = kind
		return nil
	default:
		return fmt.Errorf("documents: unknown check kind %q", raw)
	}
}

// Condition gates a requirement on an answer value: the document is required
// only when the answer at Field equals Value.
type Condition struct {
	Field string `yaml:"field"`
	Value any    `yaml:"value"`
}

// Requirement describes one supporting document within a pathway.
type Requirement struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Optional    bool       `yaml:"optional"`
	Conditional *Condition `yaml:"conditional"`
}

// Pathway is the document/form requirement set for one legal category.
type Pathway struct {
	Checks        CheckKind     `yaml:"checks"`
	EstimatedTime int           `yaml:"estimatedTime"`
	Urgent        bool          `yaml:"urgent"`
	Requirements  []Requirement `yaml:"requiredDocuments"`
}

// Uploaded carries the facts the upload/analysis service reports per
// document. The pipeline only reads these fields.
type Uploaded struct {
	ID       string
	Name     string
	Type     string
	MimeType string
	Size     int64
	Quality  float64
	Verified bool
}

// MissingDocument names a required document absent from the uploads.
type MissingDocument struct {
	ID      string
	Name    string
	Message string
}

// QualityIssue reports an upload that failed a quality gate. Issues are
// per-document and never block unrelated documents.
type QualityIssue struct {
	DocumentID string
	Message    string
}

// Result is the outcome of document validation for one category.
type Result struct {
	Valid   bool
	Missing []MissingDocument
	Errors  map[string]string
	Quality []QualityIssue
}
