package export

import (
	"archive/zip"
	"fmt"
	"strings"
	"time"
)

// Filename derives the download filename for a project: spaces become
// underscores and the format extension is appended.
func Filename(projectName, ext string) string {
	return strings.ReplaceAll(projectName, " ", "_") + "." + ext
}

// escapeXML replaces the five XML special characters in text content.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// splitParagraphs breaks generated content on newlines, dropping blanks.
func splitParagraphs(content string) []string {
	parts := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// packagePart is one named entry of an OOXML package.
type packagePart struct {
	name    string
	content string
}

// addZipFile writes one entry into the package.
func addZipFile(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create zip entry %s: %w", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	return nil
}

// corePropertiesXML renders docProps/core.xml shared by both formats.
func corePropertiesXML(title, subject string) string {
	created := time.Now().UTC().Format(time.RFC3339)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escapeXML(title) + `</dc:title>` +
		`<dc:subject>` + escapeXML(subject) + `</dc:subject>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + created + `</dcterms:created>` +
		`</cp:coreProperties>`
}
