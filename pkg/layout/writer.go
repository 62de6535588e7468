package layout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	headerTopY     = 20
	headerLineStep = 10
)

var headerLines = []string{
	"Province of New Brunswick",
	"Court of King's Bench",
	"Family Division",
}

// writer drives the per-document cursor state machine: current page, current
// Y position, page breaks, and the footer stamped on every finished page.
type writer struct {
	policy  Policy
	doc     *Document
	y       float64
	pageNum int
}

// newWriter opens a document on page 1 with the court header emitted and the
// cursor parked at the header offset.
func newWriter(policy Policy, formID, title string) *writer {
	w := &writer{
		policy: policy,
		doc:    &Document{ID: uuid.New(), FormID: formID, Title: title},
	}
	w.startPage()

	center := policy.PageWidth / 2
	for i, line := range headerLines {
		w.op(TextOp{
			Text:  line,
			X:     center,
			Y:     headerTopY + float64(i)*headerLineStep,
			Size:  policy.HeaderFontSize,
			Align: AlignCenter,
		})
	}
	w.op(TextOp{
		Text:  fmt.Sprintf("Form %s: %s", formID, title),
		X:     center,
		Y:     headerTopY + float64(len(headerLines))*headerLineStep,
		Size:  policy.HeaderFontSize,
		Align: AlignCenter,
	})
	return w
}

func (w *writer) startPage() {
	w.pageNum++
	w.doc.Pages = append(w.doc.Pages, Page{Number: w.pageNum})
	w.y = w.policy.HeaderY
}

func (w *writer) current() *Page {
	return &w.doc.Pages[len(w.doc.Pages)-1]
}

func (w *writer) op(op TextOp) {
	page := w.current()
	page.Ops = append(page.Ops, op)
}

// footer stamps the centered page number on the current page. Called exactly
// once per page, when the page is finished.
func (w *writer) footer() {
	w.op(TextOp{
		Text:  fmt.Sprintf("Page %d", w.current().Number),
		X:     w.policy.PageWidth / 2,
		Y:     w.policy.FooterY,
		Size:  w.policy.FooterFontSize,
		Align: AlignCenter,
	})
}

// ensure breaks to a new page when the next emission of the given height
// would cross the content boundary. Continuation pages restart the cursor at
// the header offset without repeating the court header.
func (w *writer) ensure(height float64) {
	if w.y+height > w.policy.MaxY {
		w.footer()
		w.startPage()
	}
}

func (w *writer) textAt(text string, x, size float64) {
	w.op(TextOp{Text: text, X: x, Y: w.y, Size: size})
}

func (w *writer) centered(text string, size float64) {
	w.op(TextOp{Text: text, X: w.policy.PageWidth / 2, Y: w.y, Size: size, Align: AlignCenter})
}

func (w *writer) advance(height float64) {
	w.y += height
}

// wrapped emits text as word-wrapped lines. The break check runs per line, so
// one long paragraph can cross a page boundary mid-paragraph.
func (w *writer) wrapped(text string, x, width, size float64) {
	for _, line := range wrapText(text, maxChars(width, size, w.policy.CharWidth)) {
		w.ensure(w.policy.LineHeight)
		w.textAt(line, x, size)
		w.advance(w.policy.LineHeight)
	}
}

// close finishes the document, stamping the footer on the last page.
func (w *writer) close() *Document {
	w.footer()
	return w.doc
}

func maxChars(width, size, charWidth float64) int {
	n := int(width / (size * charWidth))
	if n < 1 {
		return 1
	}
	return n
}

// wrapText greedily packs words into lines of at most max characters. Words
// longer than a line are hard-split.
func wrapText(text string, max int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var line string
	flush := func() {
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
	}
	for _, word := range words {
		for len(word) > max {
			flush()
			lines = append(lines, word[:max])
			word = word[max:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= max:
			line += " " + word
		default:
			flush()
			line = word
		}
	}
	flush()
	return lines
}
