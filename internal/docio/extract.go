// Package docio loads candidate documents from disk: plain-text extraction
// for matching and quality checks, and full formatting snapshots for the
// ATS compatibility checker.
package docio

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphCloseTag = regexp.MustCompile(`</w:p>`)
	xmlTag            = regexp.MustCompile(`<[^>]+>`)
)

// ExtractText returns the plain text of a document. Supported formats are
// .docx, .pdf, and plain text (.txt, .md).
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return extractDocxText(path)
	case ".pdf":
		return extractPDFText(path)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &LoadError{Path: path, Message: "could not read file", Cause: err}
		}
		return string(data), nil
	default:
		return "", &LoadError{Path: path, Message: "unsupported file type " + filepath.Ext(path)}
	}
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &LoadError{Path: path, Message: "could not open pdf", Cause: err}
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &LoadError{Path: path, Message: "could not open docx", Cause: err}
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags reduces raw WordprocessingML to plain text: paragraph
// boundaries become newlines, every other tag is dropped, and XML entities
// are unescaped.
func stripDocxTags(content string) string {
	content = paragraphCloseTag.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content))
}
