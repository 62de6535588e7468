// Package pipeline wires the generation flow end to end: validate the
// submission, transform answers into the canonical case record, determine the
// required forms, map and render each one, and serialize the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
	"github.com/goliatone/go-courtforms/pkg/documents"
	"github.com/goliatone/go-courtforms/pkg/forms"
	"github.com/goliatone/go-courtforms/pkg/layout"
	"github.com/goliatone/go-courtforms/pkg/renderers"
	"github.com/goliatone/go-courtforms/pkg/renderers/pdf"
	"github.com/goliatone/go-courtforms/pkg/renderers/transcript"
	"github.com/goliatone/go-courtforms/pkg/validation"
)

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithLogger injects the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLocale selects the language for validation messages, field labels, and
// placeholders. Defaults to English.
func WithLocale(locale string) Option {
	return func(p *Pipeline) {
		if locale != "" {
			p.locale = locale
		}
	}
}

// WithSchema replaces the default submission rule set.
func WithSchema(schema validation.Schema) Option {
	return func(p *Pipeline) {
		if schema != nil {
			p.schema = schema
		}
	}
}

// WithDocumentTable replaces the built-in pathway table.
func WithDocumentTable(table *documents.Table) Option {
	return func(p *Pipeline) {
		if table != nil {
			p.table = table
		}
	}
}

// WithFormCatalog replaces the built-in form catalog.
func WithFormCatalog(catalog *forms.Catalog) Option {
	return func(p *Pipeline) {
		if catalog != nil {
			p.catalog = catalog
		}
	}
}

// WithPolicy overrides the page geometry used by the renderer.
func WithPolicy(policy layout.Policy) Option {
	return func(p *Pipeline) {
		p.policy = &policy
	}
}

// WithRegistry replaces the serializer registry. The default registry carries
// the pdf and transcript serializers.
func WithRegistry(registry *renderers.Registry) Option {
	return func(p *Pipeline) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithOutputFormat selects the serializer by name. Defaults to "pdf".
func WithOutputFormat(format string) Option {
	return func(p *Pipeline) {
		if format != "" {
			p.format = format
		}
	}
}

// WithClock overrides the timestamp source for submission dates and generated
// court file numbers. Useful in tests.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// Pipeline is the core call surface the wizard talks to. It holds no
// per-submission state; one instance serves many submissions.
type Pipeline struct {
	logger      *zap.Logger
	locale      string
	schema      validation.Schema
	engine      *validation.Engine
	transformer *casefile.Transformer
	table    *documents.Table
	catalog  *forms.Catalog
	mapper   *forms.Mapper
	renderer *layout.Renderer
	registry *renderers.Registry
	policy   *layout.Policy
	format   string
	clock    func() time.Time
}

// New builds a Pipeline with defaults for every collaborator not overridden
// by an option.
func New(options ...Option) (*Pipeline, error) {
	p := &Pipeline{
		logger: zap.NewNop(),
		locale: "en",
		schema: DefaultSchema(),
		format: "pdf",
		clock:  time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	p.engine = validation.NewEngine(
		validation.WithLocale(p.locale),
		validation.WithClock(p.clock),
	)
	p.transformer = casefile.NewTransformer(casefile.WithClock(p.clock))
	if p.table == nil {
		p.table = documents.NewTable(documents.WithLogger(p.logger))
	}
	if p.catalog == nil {
		p.catalog = forms.NewCatalog(forms.WithClock(p.clock))
	}
	p.mapper = forms.NewMapper(p.catalog, forms.WithLocale(p.locale))

	if p.policy != nil {
		p.renderer = layout.NewRenderer(layout.WithPolicy(*p.policy))
	} else {
		p.renderer = layout.NewRenderer()
	}

	if p.registry == nil {
		registry := renderers.NewRegistry()
		registry.MustRegister(pdf.New())
		text, err := transcript.New()
		if err != nil {
			return nil, fmt.Errorf("pipeline: build transcript serializer: %w", err)
		}
		registry.MustRegister(text)
		p.registry = registry
	}
	if !p.registry.Has(p.format) {
		return nil, fmt.Errorf("pipeline: output format %q not registered", p.format)
	}
	return p, nil
}

// SubmissionResult is the pre-flight validation outcome. Field and document
// findings are returned as data so the wizard can render inline errors.
type SubmissionResult struct {
	Valid       bool
	FieldErrors map[string]string
	Documents   documents.Result
}

// ValidateSubmission runs the field rules and the document-completeness check
// for the submission's case type. Both passes always run so the user sees
// every problem at once.
func (p *Pipeline) ValidateSubmission(record answers.Record, uploaded []documents.Uploaded) SubmissionResult {
	fields := p.engine.ValidateForm(record, p.schema)
	docs := p.table.ValidateRequired(answers.String(record, "caseType"), uploaded, record)
	return SubmissionResult{
		Valid:       fields.Valid && docs.Valid,
		FieldErrors: fields.Errors,
		Documents:   docs,
	}
}

// GeneratedForm is one rendered, serialized court form.
type GeneratedForm struct {
	FormID      string
	Title       string
	ContentType string
	Document    *layout.Document
	Data        []byte
}

// GenerateForms runs the full flow for a completed submission. Per-form
// failures are aggregated; when any required form fails to map or render, no
// output is returned at all rather than a partial set.
func (p *Pipeline) GenerateForms(ctx context.Context, record answers.Record) ([]GeneratedForm, error) {
	file := p.transformer.Transform(answers.Clean(record))
	formIDs := p.catalog.DetermineRequired(file.Metadata.CaseType, file.Case.Circumstances)
	if len(formIDs) == 0 {
		return nil, fmt.Errorf("pipeline: no forms for case type %q", file.Metadata.CaseType)
	}

	serializer, err := p.registry.Get(p.format)
	if err != nil {
		return nil, err
	}

	var (
		out  []GeneratedForm
		errs []error
	)
	for _, formID := range formIDs {
		set, err := p.mapper.Map(formID, file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		doc, err := p.renderer.RenderForm(formID, set)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data, err := serializer.Serialize(ctx, doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("pipeline: serialize form %s: %w", formID, err))
			continue
		}
		out = append(out, GeneratedForm{
			FormID:      formID,
			Title:       set.Title,
			ContentType: serializer.ContentType(),
			Document:    doc,
			Data:        data,
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	p.logger.Debug("generated court forms",
		zap.String("caseType", file.Metadata.CaseType),
		zap.Strings("forms", formIDs))
	return out, nil
}

// DetermineRequiredForms exposes the catalog decision so the wizard can show
// a live form checklist without running generation.
func (p *Pipeline) DetermineRequiredForms(caseType string, circumstances casefile.Circumstances) []string {
	return p.catalog.DetermineRequired(caseType, circumstances)
}

// RequiredDocuments exposes the pathway requirements for a category.
func (p *Pipeline) RequiredDocuments(category string) []documents.Requirement {
	return p.table.Requirements(category)
}
