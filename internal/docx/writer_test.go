// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unzip reads every part of a serialized package into a name -> content map.
func unzip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(body)
	}
	return parts
}

func render(t *testing.T, d *Document) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	return unzip(t, buf.Bytes())
}

func TestWritePackageLayout(t *testing.T) {
	d := New()
	d.AddText(Style{}, "hello")

	parts := render(t, d)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
	} {
		assert.Contains(t, parts, name)
	}

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `<w:t xml:space="preserve">hello</w:t>`)
	assert.Contains(t, doc, `<w:pgSz`, "section properties carry the page size")
	assert.Contains(t, parts["word/styles.xml"], "Times New Roman")
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Target="styles.xml"`)

	// Readers locate the main part through the package-root relationships.
	rels := parts["_rels/.rels"]
	assert.Contains(t, rels, `relationships/officeDocument`)
	assert.Contains(t, rels, `Target="word/document.xml"`)
}

func TestParagraphStyles(t *testing.T) {
	d := New()
	d.AddText(Style{Bold: true, Align: AlignCenter, NoIndent: true, SizeHalfPt: 24}, "caption")
	d.AddParagraph(Style{}, Run{Text: "plain "}, Run{Text: "strong", Bold: true}, Run{Text: "slant", Italic: true})
	d.AddText(Style{Color: "808080"}, "muted")

	doc := render(t, d)["word/document.xml"]
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)
	assert.Contains(t, doc, `<w:ind w:firstLine="0"/>`)
	assert.Contains(t, doc, `<w:sz w:val="24"/>`)
	assert.Contains(t, doc, `<w:b/>`)
	assert.Contains(t, doc, `<w:i/>`)
	assert.Contains(t, doc, `<w:color w:val="808080"/>`)
}

func TestTextEscaping(t *testing.T) {
	d := New()
	d.AddText(Style{}, `a < b && "c"`)

	doc := render(t, d)["word/document.xml"]
	assert.Contains(t, doc, "a &lt; b &amp;&amp; &#34;c&#34;")
	assert.NotContains(t, doc, `a < b`)
}

func TestPageBreak(t *testing.T) {
	d := New()
	d.AddPageBreak()
	assert.Contains(t, render(t, d)["word/document.xml"], `<w:br w:type="page"/>`)
}

func TestAddImage(t *testing.T) {
	d := New()
	d.AddImage([]byte("png-bytes"), ".png", 10, 5)
	d.AddImage([]byte("jpg-bytes"), ".jpg", 2, 2)

	parts := render(t, d)
	assert.Equal(t, "png-bytes", parts["word/media/lab_image1.png"])
	assert.Equal(t, "jpg-bytes", parts["word/media/lab_image2.jpg"])

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `cx="3600000" cy="1800000"`, "10 x 5 cm in EMUs")
	assert.Contains(t, doc, `r:embed="rIdLab1"`)
	assert.Contains(t, doc, `r:embed="rIdLab2"`)

	rels := parts["word/_rels/document.xml.rels"]
	assert.Contains(t, rels, `Id="rIdLab1"`)
	assert.Contains(t, rels, `Target="media/lab_image1.png"`)

	ct := parts["[Content_Types].xml"]
	assert.Contains(t, ct, `Extension="png" ContentType="image/png"`)
	assert.Contains(t, ct, `Extension="jpg" ContentType="image/jpeg"`)
}

func TestAddImageKeepsTiffAndWebp(t *testing.T) {
	d := New()
	d.AddImage([]byte("webp-bytes"), ".webp", 1, 1)
	d.AddImage([]byte("tiff-bytes"), ".tiff", 1, 1)

	parts := render(t, d)
	assert.Equal(t, "webp-bytes", parts["word/media/lab_image1.webp"])
	assert.Equal(t, "tiff-bytes", parts["word/media/lab_image2.tiff"])

	ct := parts["[Content_Types].xml"]
	assert.Contains(t, ct, `Extension="webp" ContentType="image/webp"`)
	assert.Contains(t, ct, `Extension="tiff" ContentType="image/tiff"`)
}

func TestAddImageUnknownExtension(t *testing.T) {
	d := New()
	d.AddImage([]byte("data"), ".xyz", 1, 1)

	parts := render(t, d)
	assert.Contains(t, parts, "word/media/lab_image1.png", "unknown extensions fall back to PNG")
	assert.Contains(t, parts["[Content_Types].xml"], `Extension="png" ContentType="image/png"`)
}

func TestSaveWithTemplate(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.docx")
	outPath := filepath.Join(dir, "out.docx")

	tpl := New()
	tpl.AddText(Style{Bold: true, Align: AlignCenter}, "TITLE PAGE")
	tpl.AddPageBreak()
	require.NoError(t, tpl.Save(tplPath))

	d := New()
	d.AddText(Style{}, "report body")
	d.AddImage([]byte("img"), ".png", 4, 3)
	require.NoError(t, d.SaveWithTemplate(tplPath, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	parts := unzip(t, data)

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "TITLE PAGE", "template content survives")
	assert.Contains(t, doc, "report body")
	assert.Less(t, bytes.Index([]byte(doc), []byte("TITLE PAGE")),
		bytes.Index([]byte(doc), []byte("report body")),
		"body is appended after the template content")
	assert.Less(t, bytes.Index([]byte(doc), []byte("report body")),
		bytes.Index([]byte(doc), []byte("<w:sectPr")),
		"body lands before the closing section properties")

	assert.Equal(t, "img", parts["word/media/lab_image1.png"])
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Id="rIdLab1"`)
	assert.Contains(t, parts["[Content_Types].xml"], `Extension="png"`)
}

func TestSaveWithTemplateMissing(t *testing.T) {
	d := New()
	err := d.SaveWithTemplate(filepath.Join(t.TempDir(), "nope.docx"), filepath.Join(t.TempDir(), "out.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open template")
}

func TestSpliceBodyWithoutSectPr(t *testing.T) {
	got := spliceBody("<w:document><w:body><w:p/></w:body></w:document>", "<w:p>new</w:p>")
	assert.Equal(t, "<w:document><w:body><w:p/><w:p>new</w:p></w:body></w:document>", got)
}
