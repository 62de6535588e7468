package transcript

import (
	"context"
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-courtforms/pkg/layout"
	"github.com/goliatone/go-courtforms/pkg/renderers"
)

//go:embed templates
var templatesFS embed.FS

const documentTemplate = "templates/document"

// Serializer renders documents through the transcript template.
type Serializer struct {
	engine *Engine
}

var _ renderers.Serializer = (*Serializer)(nil)

// New constructs a transcript serializer over the embedded template set.
func New(options ...Option) (*Serializer, error) {
	engine, err := NewEngine(options...)
	if err != nil {
		return nil, err
	}
	return &Serializer{engine: engine}, nil
}

func (s *Serializer) Name() string { return "transcript" }

func (s *Serializer) ContentType() string { return "text/plain; charset=utf-8" }

// Serialize flattens each page's draw operations into transcript lines in
// emission order, preserving the one-footer-per-page shape of the document.
func (s *Serializer) Serialize(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("transcript: document has no pages")
	}

	pages := make([]map[string]any, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		lines := make([]string, 0, len(page.Ops))
		for _, op := range page.Ops {
			lines = append(lines, op.Text)
		}
		pages = append(pages, map[string]any{
			"number": page.Number,
			"lines":  lines,
		})
	}

	out, err := s.engine.RenderTemplate(documentTemplate, pongo2.Context{
		"form_id":     doc.FormID,
		"title":       doc.Title,
		"document_id": doc.ID.String(),
		"pages":       pages,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
