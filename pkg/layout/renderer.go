package layout

import (
	"github.com/goliatone/go-courtforms/pkg/forms"
)

// Option customises a Renderer.
type Option func(*Renderer)

// WithPolicy overrides the page geometry.
func WithPolicy(policy Policy) Option {
	return func(r *Renderer) {
		r.policy = policy
	}
}

// Renderer turns mapped field sets into paginated documents.
type Renderer struct {
	policy Policy
}

// NewRenderer builds a Renderer applying any provided options.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{policy: Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// RenderForm emits the pages for one form. There is no generic fallback
// layout; a form ID without an emitter is a configuration defect.
func (r *Renderer) RenderForm(formID string, set *forms.FieldSet) (*Document, error) {
	emit, ok := emitters[formID]
	if !ok {
		return nil, &forms.UnknownFormError{FormID: formID}
	}
	w := newWriter(r.policy, formID, set.Title)
	emit(w, set)
	return w.close(), nil
}
