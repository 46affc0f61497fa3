package docio

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Wire shapes for the WordprocessingML parts the snapshot needs. Fields
// match on local element names, so the w: namespace prefix is irrelevant.
type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
	Tables     []struct{}     `xml:"tbl"`
	SectPr     *xmlSectPr     `xml:"sectPr"`
}

type xmlParagraph struct {
	Props *struct {
		SectPr *xmlSectPr `xml:"sectPr"`
	} `xml:"pPr"`
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"rPr"`
	Texts []string     `xml:"t"`
}

type xmlRunProps struct {
	Fonts *struct {
		ASCII string `xml:"ascii,attr"`
	} `xml:"rFonts"`
	Size *struct {
		Val string `xml:"val,attr"`
	} `xml:"sz"`
	Bold *struct {
		Val string `xml:"val,attr"`
	} `xml:"b"`
}

type xmlSectPr struct {
	HeaderRefs []xmlPartRef `xml:"headerReference"`
	FooterRefs []xmlPartRef `xml:"footerReference"`
	Cols       *struct {
		Num string `xml:"num,attr"`
	} `xml:"cols"`
}

type xmlPartRef struct {
	ID string `xml:"id,attr"`
}

// xmlHeaderFooter covers both w:hdr and w:ftr roots.
type xmlHeaderFooter struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlRelationships struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// LoadSnapshot reads a .docx file into a formatting snapshot: paragraph
// and run structure with font info, table count, sections with resolved
// header/footer text and column counts, and the embedded media targets.
func LoadSnapshot(docPath string) (*types.DocumentSnapshot, error) {
	if strings.ToLower(filepath.Ext(docPath)) != ".docx" {
		return nil, &LoadError{Path: docPath, Message: "formatting snapshot requires a .docx file"}
	}

	archive, err := zip.OpenReader(docPath)
	if err != nil {
		return nil, &LoadError{Path: docPath, Message: "could not open docx archive", Cause: err}
	}
	defer archive.Close()

	var doc xmlDocument
	if err := readXMLPart(&archive.Reader, "word/document.xml", &doc); err != nil {
		return nil, &LoadError{Path: docPath, Message: "could not parse word/document.xml", Cause: err}
	}

	relTargets := map[string]string{}
	var mediaTargets []string
	var rels xmlRelationships
	if err := readXMLPart(&archive.Reader, "word/_rels/document.xml.rels", &rels); err == nil {
		for _, rel := range rels.Relationships {
			relTargets[rel.ID] = rel.Target
			mediaTargets = append(mediaTargets, rel.Target)
		}
	}

	snapshot := &types.DocumentSnapshot{
		FileName:     filepath.Base(docPath),
		TableCount:   len(doc.Body.Tables),
		MediaTargets: mediaTargets,
	}

	var sectPrs []*xmlSectPr
	for _, p := range doc.Body.Paragraphs {
		snapshot.Paragraphs = append(snapshot.Paragraphs, buildParagraph(p))
		if p.Props != nil && p.Props.SectPr != nil {
			sectPrs = append(sectPrs, p.Props.SectPr)
		}
	}
	if doc.Body.SectPr != nil {
		sectPrs = append(sectPrs, doc.Body.SectPr)
	}

	if len(sectPrs) == 0 {
		snapshot.Sections = []types.DocumentSection{{Columns: types.ColumnsUnknown}}
		return snapshot, nil
	}

	for _, sectPr := range sectPrs {
		section := types.DocumentSection{Columns: sectionColumns(sectPr)}
		for _, ref := range sectPr.HeaderRefs {
			section.HeaderParagraphs = append(section.HeaderParagraphs,
				partParagraphTexts(&archive.Reader, relTargets[ref.ID])...)
		}
		for _, ref := range sectPr.FooterRefs {
			section.FooterParagraphs = append(section.FooterParagraphs,
				partParagraphTexts(&archive.Reader, relTargets[ref.ID])...)
		}
		snapshot.Sections = append(snapshot.Sections, section)
	}

	return snapshot, nil
}

func readXMLPart(archive *zip.Reader, name string, v interface{}) error {
	for _, file := range archive.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		return xml.Unmarshal(data, v)
	}
	return &LoadError{Path: name, Message: "part not found in archive"}
}

func buildParagraph(p xmlParagraph) types.Paragraph {
	paragraph := types.Paragraph{}
	var sb strings.Builder
	for _, r := range p.Runs {
		text := strings.Join(r.Texts, "")
		sb.WriteString(text)
		paragraph.Runs = append(paragraph.Runs, types.Run{
			Text:       text,
			FontName:   runFontName(r.Props),
			FontSizePt: runFontSize(r.Props),
			Bold:       runBold(r.Props),
		})
	}
	paragraph.Text = sb.String()
	return paragraph
}

func runFontName(props *xmlRunProps) string {
	if props == nil || props.Fonts == nil {
		return ""
	}
	return props.Fonts.ASCII
}

// runFontSize converts the half-point w:sz value to points.
func runFontSize(props *xmlRunProps) float64 {
	if props == nil || props.Size == nil {
		return 0
	}
	halfPoints, err := strconv.ParseFloat(props.Size.Val, 64)
	if err != nil {
		return 0
	}
	return halfPoints / 2
}

func runBold(props *xmlRunProps) bool {
	if props == nil || props.Bold == nil {
		return false
	}
	val := props.Bold.Val
	return val != "false" && val != "0"
}

// sectionColumns reads the column count for a section. A missing cols
// element means the count is unknown; a cols element without a num
// attribute defaults to one column.
func sectionColumns(sectPr *xmlSectPr) int {
	if sectPr.Cols == nil {
		return types.ColumnsUnknown
	}
	if sectPr.Cols.Num == "" {
		return 1
	}
	n, err := strconv.Atoi(sectPr.Cols.Num)
	if err != nil {
		return types.ColumnsUnknown
	}
	return n
}

// partParagraphTexts extracts the paragraph texts of a header or footer
// part. Unresolvable parts contribute nothing.
func partParagraphTexts(archive *zip.Reader, target string) []string {
	if target == "" {
		return nil
	}
	name := target
	if !strings.HasPrefix(name, "word/") {
		name = path.Join("word", name)
	}
	var part xmlHeaderFooter
	if err := readXMLPart(archive, name, &part); err != nil {
		return nil
	}
	var texts []string
	for _, p := range part.Paragraphs {
		var sb strings.Builder
		for _, r := range p.Runs {
			sb.WriteString(strings.Join(r.Texts, ""))
		}
		texts = append(texts, sb.String())
	}
	return texts
}
