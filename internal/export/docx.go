package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"docgen-server/internal/models"
)

// WriteDocx renders a word project into a .docx package: a centered title,
// the topic as an italic subtitle, then each section as a Heading 1 block
// followed by its body paragraphs.
func WriteDocx(w io.Writer, project *models.Project, sections []models.Section, theme Theme) error {
	zw := zip.NewWriter(w)

	// Parts are written in a fixed order, [Content_Types].xml first, so the
	// same project always produces an identical package.
	entries := []packagePart{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"docProps/core.xml", corePropertiesXML(project.Name, project.Topic)},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStylesXML(theme)},
		{"word/document.xml", docxDocumentXML(project, sections)},
	}
	for _, part := range entries {
		if err := addZipFile(zw, part.name, part.content); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize docx package: %w", err)
	}
	return nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

// docxStylesXML renders the style sheet: Calibri throughout, headings in
// the theme's primary color.
func docxStylesXML(theme Theme) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/><w:color w:val="` + theme.Text + `"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="56"/><w:color w:val="` + theme.Primary + `"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/><w:color w:val="` + theme.Primary + `"/></w:rPr></w:style>
</w:styles>`
}

func docxDocumentXML(project *models.Project, sections []models.Section) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Centered document title.
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr><w:r><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(project.Name))
	b.WriteString(`</w:t></w:r></w:p>`)

	// Topic as an italic, centered subtitle.
	b.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(project.Topic))
	b.WriteString(`</w:t></w:r></w:p><w:p/>`)

	for _, section := range sections {
		b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(section.Header))
		b.WriteString(`</w:t></w:r></w:p>`)

		if section.Content != nil {
			for _, para := range splitParagraphs(*section.Content) {
				b.WriteString(`<w:p><w:r><w:rPr><w:sz w:val="22"/></w:rPr><w:t xml:space="preserve">`)
				b.WriteString(escapeXML(para))
				b.WriteString(`</w:t></w:r></w:p>`)
			}
		}
		b.WriteString(`<w:p/>`)
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`)
	return b.String()
}
