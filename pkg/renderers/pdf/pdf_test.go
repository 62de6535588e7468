package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-courtforms/pkg/layout"
)

func sampleDocument() *layout.Document {
	return &layout.Document{
		ID:     uuid.New(),
		FormID: "72B",
		Title:  "Petition for Divorce",
		Pages: []layout.Page{
			{
				Number: 1,
				Ops: []layout.TextOp{
					{Text: "Province of New Brunswick", X: 105, Y: 20, Size: 16, Align: layout.AlignCenter},
					{Text: "JANE DOE", X: 30, Y: 78, Size: 10},
					{Text: "Page 1", X: 105, Y: 285, Size: 10, Align: layout.AlignCenter},
				},
			},
			{
				Number: 2,
				Ops: []layout.TextOp{
					{Text: "continued", X: 15, Y: 60, Size: 10},
					{Text: "Page 2", X: 105, Y: 285, Size: 10, Align: layout.AlignCenter},
				},
			},
		},
	}
}

func TestSerialize_ProducesPDF(t *testing.T) {
	serializer := New()
	if serializer.Name() != "pdf" || serializer.ContentType() != "application/pdf" {
		t.Fatalf("unexpected identity %q %q", serializer.Name(), serializer.ContentType())
	}

	out, err := serializer.Serialize(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestSerialize_EmptyDocument(t *testing.T) {
	if _, err := New().Serialize(context.Background(), &layout.Document{}); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestSerialize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Serialize(ctx, sampleDocument()); err == nil {
		t.Fatalf("expected context error")
	}
}
