package layout

import "github.com/google/uuid"

// Align positions a text operation relative to its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextOp draws one run of text at a fixed position with a font size.
type TextOp struct {
	Text  string
	X     float64
	Y     float64
	Size  float64
	Align Align
}

// Page is an ordered sequence of draw operations. Number is 1-based.
type Page struct {
	Number int
	Ops    []TextOp
}

// Document is a finalized, paginated rendering of one form. Serializers turn
// it into a portable output format; page numbering and footer placement are
// part of the contract because these are court-facing documents.
type Document struct {
	ID     uuid.UUID
	FormID string
	Title  string
	Pages  []Page
}
