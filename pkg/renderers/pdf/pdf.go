// Package pdf serializes paginated documents to PDF. Auto page breaks are
// disabled because the layout engine already decided pagination; each logical
// page maps to exactly one PDF page.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/goliatone/go-courtforms/pkg/layout"
	"github.com/goliatone/go-courtforms/pkg/renderers"
)

// Serializer writes A4 portrait PDFs.
type Serializer struct{}

var _ renderers.Serializer = (*Serializer)(nil)

// New constructs a PDF serializer.
func New() *Serializer {
	return &Serializer{}
}

func (s *Serializer) Name() string { return "pdf" }

func (s *Serializer) ContentType() string { return "application/pdf" }

// Serialize replays the document's draw operations page by page.
func (s *Serializer) Serialize(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("pdf: document has no pages")
	}

	out := fpdf.New("P", "mm", "A4", "")
	out.SetAutoPageBreak(false, 0)
	out.SetTitle(doc.Title, true)

	for _, page := range doc.Pages {
		out.AddPage()
		for _, op := range page.Ops {
			out.SetFont("Helvetica", "", op.Size)
			x := op.X
			if op.Align == layout.AlignCenter {
				x -= out.GetStringWidth(op.Text) / 2
			}
			out.Text(x, op.Y, op.Text)
		}
	}

	var buf bytes.Buffer
	if err := out.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: write document %s: %w", doc.FormID, err)
	}
	return buf.Bytes(), nil
}
