// Package courtforms generates New Brunswick Court of King's Bench family-law
// forms from wizard answer records: it validates submissions, determines the
// required forms and supporting documents, and renders court-ready output.
//
// The package root re-exports the pipeline surface; the pkg/ tree holds the
// individual stages for callers that need finer control.
package courtforms

import (
	"context"
	"sync"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
	"github.com/goliatone/go-courtforms/pkg/documents"
	"github.com/goliatone/go-courtforms/pkg/pipeline"
)

// Record is the raw nested answer mapping produced by the intake wizard.
type Record = answers.Record

// Circumstances are the derived case flags driving conditional forms.
type Circumstances = casefile.Circumstances

// GeneratedForm is one rendered, serialized court form.
type GeneratedForm = pipeline.GeneratedForm

// SubmissionResult is the pre-flight validation outcome.
type SubmissionResult = pipeline.SubmissionResult

// Option customises the pipeline behind the package-level functions when
// passed to New.
type Option = pipeline.Option

// New builds a generation pipeline. See the pipeline package for options.
func New(options ...Option) (*pipeline.Pipeline, error) {
	return pipeline.New(options...)
}

var (
	defaultOnce     sync.Once
	defaultPipeline *pipeline.Pipeline
	defaultErr      error
)

func shared() (*pipeline.Pipeline, error) {
	defaultOnce.Do(func() {
		defaultPipeline, defaultErr = pipeline.New()
	})
	return defaultPipeline, defaultErr
}

// ValidateSubmission runs field and document validation with defaults.
func ValidateSubmission(record Record, uploaded []documents.Uploaded) (SubmissionResult, error) {
	p, err := shared()
	if err != nil {
		return SubmissionResult{}, err
	}
	return p.ValidateSubmission(record, uploaded), nil
}

// GenerateForms runs the full generation flow with defaults.
func GenerateForms(ctx context.Context, record Record) ([]GeneratedForm, error) {
	p, err := shared()
	if err != nil {
		return nil, err
	}
	return p.GenerateForms(ctx, record)
}

// DetermineRequiredForms exposes the catalog decision for checklist UIs.
func DetermineRequiredForms(caseType string, circumstances Circumstances) ([]string, error) {
	p, err := shared()
	if err != nil {
		return nil, err
	}
	return p.DetermineRequiredForms(caseType, circumstances), nil
}

// RequiredDocuments returns the supporting-document requirements for a legal
// category, or nil for categories with no filing pathway.
func RequiredDocuments(category string) ([]documents.Requirement, error) {
	p, err := shared()
	if err != nil {
		return nil, err
	}
	return p.RequiredDocuments(category), nil
}
