package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen-server/internal/models"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Quarterly_Report.docx", Filename("Quarterly Report", "docx"))
	assert.Equal(t, "Pitch.pptx", Filename("Pitch", "pptx"))
	assert.Equal(t, "a_b_c.docx", Filename("a b c", "docx"))
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;", escapeXML(`a & b <c> "d" 'e'`))
	assert.Equal(t, "plain", escapeXML("plain"))
}

func TestSplitParagraphs(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, splitParagraphs("one\n\ntwo\n"))
	assert.Equal(t, []string{"only"}, splitParagraphs("only"))
	assert.Empty(t, splitParagraphs("  \n \n"))
}

func readZipEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = string(content)
	}
	return entries
}

func readZipNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}

func TestWriteDocx(t *testing.T) {
	project := &models.Project{
		ID:    uuid.New(),
		Name:  "Quarterly Report",
		Type:  models.ProjectTypeWord,
		Topic: "Q3 sales & growth",
	}
	content := "First paragraph.\n\nSecond paragraph."
	sections := []models.Section{
		{ID: uuid.New(), Header: "Introduction", Content: &content, Position: 0},
		{ID: uuid.New(), Header: "Results <unreviewed>", Position: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDocx(&buf, project, sections, ThemeByName("professional_blue")))

	// Part order is fixed; a rebuilt package lays out identically.
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	}, readZipNames(t, buf.Bytes()))

	entries := readZipEntries(t, buf.Bytes())

	doc := entries["word/document.xml"]
	assert.Contains(t, doc, "Quarterly Report")
	assert.Contains(t, doc, "Introduction")
	assert.Contains(t, doc, "First paragraph.")
	assert.Contains(t, doc, "Second paragraph.")
	// Special characters must be escaped, never raw.
	assert.Contains(t, doc, "Results &lt;unreviewed&gt;")
	assert.NotContains(t, doc, "<unreviewed>")
	assert.Contains(t, entries["docProps/core.xml"], "Q3 sales &amp; growth")
}

func TestWritePptx(t *testing.T) {
	project := &models.Project{
		ID:    uuid.New(),
		Name:  "Pitch Deck",
		Type:  models.ProjectTypePowerPoint,
		Topic: "Series A fundraising",
	}
	content := "Point one.\nPoint two."
	slides := []models.Slide{
		{ID: uuid.New(), Title: "Overview", Content: &content, Position: 0},
		{ID: uuid.New(), Title: "Roadmap", Position: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePptx(&buf, project, slides, ThemeByName("modern_minimal")))

	// Part order is fixed: package metadata first, then slide1 (title slide)
	// and the content slides in project order.
	names := readZipNames(t, buf.Bytes())
	assert.Equal(t, "[Content_Types].xml", names[0])
	require.Len(t, names, 18)
	assert.Equal(t, []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide3.xml.rels",
	}, names[12:])

	entries := readZipEntries(t, buf.Bytes())
	for _, name := range []string{
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slideMasters/slideMaster1.xml",
	} {
		assert.Contains(t, entries, name)
	}
	assert.NotContains(t, entries, "ppt/slides/slide4.xml")

	assert.Contains(t, entries["ppt/slides/slide1.xml"], "Pitch Deck")
	assert.Contains(t, entries["ppt/slides/slide1.xml"], "Series A fundraising")
	assert.Contains(t, entries["ppt/slides/slide2.xml"], "Overview")
	assert.Contains(t, entries["ppt/slides/slide2.xml"], "Point one.")
	assert.Contains(t, entries["ppt/slides/slide3.xml"], "Roadmap")

	// Slide count in presentation.xml matches title slide plus content slides.
	assert.Equal(t, 3, strings.Count(entries["ppt/presentation.xml"], "<p:sldId "))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "professional_blue", ThemeByName("").Name)
	assert.Equal(t, "professional_blue", ThemeByName("no-such-theme").Name)
	assert.Equal(t, "creative_vibrant", ThemeByName("creative_vibrant").Name)
}
