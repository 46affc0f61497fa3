// Package types provides type definitions for structured data used throughout the ats-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ColumnsUnknown marks a section whose column count could not be determined
// by the document loader. The compatibility checker treats it as single-column.
const ColumnsUnknown = 0

// DocumentSnapshot is an in-memory view of a loaded document, exposing
// exactly the fields the compatibility checker inspects. It is populated
// once by a document-I/O collaborator and never mutated afterwards.
type DocumentSnapshot struct {
	FileName     string            `json:"file_name"`
	Paragraphs   []Paragraph       `json:"paragraphs"`
	TableCount   int               `json:"table_count"`
	Sections     []DocumentSection `json:"sections"`
	MediaTargets []string          `json:"media_targets"`
}

// Paragraph is a paragraph of document text with its formatting runs.
type Paragraph struct {
	Text string `json:"text"`
	Runs []Run  `json:"runs"`
}

// Run is a contiguous span of identically formatted text.
// FontSizePt is 0 when the run does not carry an explicit size.
type Run struct {
	Text       string  `json:"text"`
	FontName   string  `json:"font_name,omitempty"`
	FontSizePt float64 `json:"font_size_pt,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
}

// DocumentSection describes one layout section of the document.
type DocumentSection struct {
	HeaderParagraphs []string `json:"header_paragraphs"`
	FooterParagraphs []string `json:"footer_paragraphs"`
	Columns          int      `json:"columns"`
}

// Text concatenates all paragraph text with newlines.
func (d *DocumentSnapshot) Text() string {
	if d == nil || len(d.Paragraphs) == 0 {
		return ""
	}
	out := d.Paragraphs[0].Text
	for _, p := range d.Paragraphs[1:] {
		out += "\n" + p.Text
	}
	return out
}
