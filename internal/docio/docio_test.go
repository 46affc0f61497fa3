package docio

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <w:body>
    <w:p>
      <w:r>
        <w:rPr><w:rFonts w:ascii="Calibri"/><w:sz w:val="32"/><w:b/></w:rPr>
        <w:t>Jane Doe</w:t>
      </w:r>
    </w:p>
    <w:p>
      <w:r>
        <w:rPr><w:rFonts w:ascii="Futura"/><w:sz w:val="22"/></w:rPr>
        <w:t>Data </w:t><w:t>Analyst</w:t>
      </w:r>
    </w:p>
    <w:tbl></w:tbl>
    <w:sectPr>
      <w:headerReference r:id="rId1"/>
      <w:footerReference r:id="rId2"/>
      <w:cols w:num="2"/>
    </w:sectPr>
  </w:body>
</w:document>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`

const testHeaderXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p><w:r><w:t>Jane Doe - CV</w:t></w:r></w:p>
</w:hdr>`

const testFooterXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p><w:r><w:t>Page 1</w:t></w:r></w:p>
</w:ftr>`

func writeDocx(t *testing.T, parts map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadSnapshot_FullDocument(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/_rels/document.xml.rels": testRelsXML,
		"word/header1.xml":             testHeaderXML,
		"word/footer1.xml":             testFooterXML,
	})

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.docx", snapshot.FileName)
	require.Len(t, snapshot.Paragraphs, 2)

	first := snapshot.Paragraphs[0]
	assert.Equal(t, "Jane Doe", first.Text)
	require.Len(t, first.Runs, 1)
	assert.Equal(t, "Calibri", first.Runs[0].FontName)
	assert.Equal(t, 16.0, first.Runs[0].FontSizePt) // w:sz is half-points
	assert.True(t, first.Runs[0].Bold)

	second := snapshot.Paragraphs[1]
	assert.Equal(t, "Data Analyst", second.Text)
	assert.Equal(t, "Futura", second.Runs[0].FontName)
	assert.Equal(t, 11.0, second.Runs[0].FontSizePt)
	assert.False(t, second.Runs[0].Bold)

	assert.Equal(t, 1, snapshot.TableCount)

	require.Len(t, snapshot.Sections, 1)
	section := snapshot.Sections[0]
	assert.Equal(t, 2, section.Columns)
	assert.Equal(t, []string{"Jane Doe - CV"}, section.HeaderParagraphs)
	assert.Equal(t, []string{"Page 1"}, section.FooterParagraphs)

	assert.Contains(t, snapshot.MediaTargets, "media/image1.png")
}

func TestLoadSnapshot_NoSectionProperties(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Minimal</w:t></w:r></w:p></w:body>
</w:document>`
	path := writeDocx(t, map[string]string{"word/document.xml": doc})

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, snapshot.Sections, 1)
	assert.Equal(t, types.ColumnsUnknown, snapshot.Sections[0].Columns)
	assert.Empty(t, snapshot.Sections[0].HeaderParagraphs)
	assert.Equal(t, 0, snapshot.TableCount)
}

func TestLoadSnapshot_MissingHeaderPartIgnored(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/_rels/document.xml.rels": testRelsXML,
	})

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Sections[0].HeaderParagraphs)
}

func TestLoadSnapshot_WrongExtension(t *testing.T) {
	_, err := LoadSnapshot("resume.pdf")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadSnapshot_MissingDocumentPart(t *testing.T) {
	path := writeDocx(t, map[string]string{"word/other.xml": "<x/>"})
	_, err := LoadSnapshot(path)
	assert.Error(t, err)
}

func TestLoadSnapshot_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))
	_, err := LoadSnapshot(path)
	assert.Error(t, err)
}

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nData Analyst"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nData Analyst", text)
}

func TestExtractText_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Jane Doe"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe", text)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText("resume.pages")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "unsupported file type")
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>Jane &amp; Joe</w:t></w:r></w:p><w:p><w:r><w:t>Analysts</w:t></w:r></w:p>`
	assert.Equal(t, "Jane & Joe\nAnalysts", stripDocxTags(content))
}
