package documents

import (
	_ "embed"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

//go:embed pathways.yaml
var pathwaysYAML []byte

var (
	builtinOnce     sync.Once
	builtinPathways map[string]Pathway
)

// Option customises a Table.
type Option func(*Table)

// WithLogger injects the logger used for the fail-open warning. Defaults to a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithPathways replaces the embedded pathway table.
func WithPathways(pathways map[string]Pathway) Option {
	return func(t *Table) {
		if pathways != nil {
			t.pathways = pathways
		}
	}
}

// Table answers document-requirement questions for legal categories.
type Table struct {
	pathways map[string]Pathway
	logger   *zap.Logger
}

// NewTable builds a Table over the embedded pathway data unless WithPathways
// says otherwise.
func NewTable(options ...Option) *Table {
	t := &Table{
		pathways: builtin(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// LoadPathways parses a YAML pathway table.
func LoadPathways(raw []byte) (map[string]Pathway, error) {
	var doc struct {
		Pathways map[string]Pathway `yaml:"pathways"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("documents: parse pathway table: %w", err)
	}
	if len(doc.Pathways) == 0 {
		return nil, fmt.Errorf("documents: pathway table is empty")
	}
	return doc.Pathways, nil
}

// builtin loads the embedded table once. A parse failure is a build defect.
func builtin() map[string]Pathway {
	builtinOnce.Do(func() {
		pathways, err := LoadPathways(pathwaysYAML)
		if err != nil {
			panic(err)
		}
		builtinPathways = pathways
	})
	return builtinPathways
}

// Pathway looks up the pathway for a category.
func (t *Table) Pathway(category string) (Pathway, bool) {
	pathway, ok := t.pathways[category]
	return pathway, ok
}

// Requirements returns the document requirements for a category so callers
// can render live checklists. Unknown categories yield nil.
func (t *Table) Requirements(category string) []Requirement {
	pathway, ok := t.pathways[category]
	if !ok {
		t.warnUnknown(category)
		return nil
	}
	out := make([]Requirement, len(pathway.Requirements))
	copy(out, pathway.Requirements)
	return out
}

// ValidateRequired checks uploaded-document coverage for a category. The
// required list is first filtered by conditional rules against the answer
// record, then coverage is checked by document type, then category-specific
// secondary checks and per-document quality gates run.
//
// An unknown category logs a warning and reports valid. This fail-open
// behaviour is deliberate: the wizard offers informational categories with no
// filing pathway, and blocking them would strand the user. It is policy, not
// an oversight.
func (t *Table) ValidateRequired(category string, uploaded []Uploaded, record answers.Record) Result {
	result := Result{Valid: true, Errors: make(map[string]string)}

	pathway, ok := t.pathways[category]
	if !ok {
		t.warnUnknown(category)
		return result
	}

	for _, requirement := range pathway.Requirements {
		if requirement.Optional || !conditionMet(requirement, record) {
			continue
		}
		if !hasType(uploaded, requirement.ID) {
			result.Missing = append(result.Missing, MissingDocument{
				ID:      requirement.ID,
				Name:    requirement.Name,
				Message: fmt.Sprintf("Missing required document: %s", requirement.Name),
			})
		}
	}

	t.runChecks(pathway.Checks, uploaded, result.Errors)
	result.Quality = qualityIssues(uploaded)

	result.Valid = len(result.Missing) == 0 && len(result.Errors) == 0 && len(result.Quality) == 0
	return result
}

func (t *Table) runChecks(kind CheckKind, uploaded []Uploaded, errors map[string]string) {
	switch kind {
	case CheckNone:
	case CheckDivorce:
		if !hasVerified(uploaded, "marriage_certificate") {
			errors["marriageCertificate"] = "A verified marriage certificate is required for divorce applications."
		}
	case CheckChildren:
		if !hasVerified(uploaded, "children_birth_certificates") {
			errors["childBirthCertificates"] = "Verified birth certificates are required for all children involved in the application."
		}
	case CheckSupport:
		if !hasVerified(uploaded, "financial_statement") {
			errors["financialStatement"] = "A verified financial statement is required for support applications."
		}
		if !hasVerified(uploaded, "income_proof") {
			errors["incomeProof"] = "Verified proof of income is required for support calculations."
		}
	case CheckProperty:
		if !hasVerified(uploaded, "financial_statement") {
			errors["financialStatement"] = "A financial statement is required to assess property division."
		}
		if !hasVerified(uploaded, "property_documents") {
			errors["propertyDocuments"] = "Relevant property documents (deeds, mortgage statements) are required."
		}
	case CheckEnforcement:
		if !hasVerified(uploaded, "domestic_contract") {
			errors["domesticContract"] = "A verified copy of the domestic contract is required for enforcement."
		}
	}
}

func (t *Table) warnUnknown(category string) {
	t.logger.Warn("pathway requirements not found for category",
		zap.String("category", category))
}

func conditionMet(requirement Requirement, record answers.Record) bool {
	if requirement.Conditional == nil {
		return true
	}
	value := answers.Resolve(record, requirement.Conditional.Field)
	if answers.IsMissing(value) {
		return false
	}
	return equalValue(value, requirement.Conditional.Value)
}

// equalValue compares an answer value with a YAML-sourced condition value,
// normalizing the numeric types the two decoders produce.
func equalValue(a, b any) bool {
	if af, ok := asNumber(a); ok {
		if bf, ok := asNumber(b); ok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func hasType(uploaded []Uploaded, docType string) bool {
	for _, doc := range uploaded {
		if doc.Type == docType {
			return true
		}
	}
	return false
}

func hasVerified(uploaded []Uploaded, docType string) bool {
	for _, doc := range uploaded {
		if doc.Type == docType && doc.Verified {
			return true
		}
	}
	return false
}
