package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// titleLinePattern recognizes "Role — Company" style lines in the
// experience section, which render bold instead of bulleted.
var titleLinePattern = regexp.MustCompile(`^[A-Z][\w\s]+\s*[—\-–]\s*\w`)

// renderOrder is the canonical section order in the output document.
// Sections absent from the input are skipped. "other" sections and
// unlisted categories render after the canonical block in document
// order, each under its own preserved heading.
var renderOrder = []string{
	types.CategoryHeader,
	types.CategorySummary,
	types.CategoryExperience,
	types.CategoryEducation,
	types.CategorySkills,
	types.CategoryCertifications,
	types.CategoryProjects,
	types.CategoryAwards,
	types.CategoryLanguages,
	types.CategoryReferences,
}

// Font sizes in half-points, colors as RRGGBB hex.
const (
	nameSize    = 36
	headingSize = 22
	bodySize    = 20

	nameColor    = "1A1A1A"
	contactColor = "555555"
	headingColor = "2C3E50"
	ruleColor    = "CCCCCC"
)

// Page margins in twips: 0.5" top/bottom, 0.75" left/right.
const (
	marginVertical   = 720
	marginHorizontal = 1080
)

const bulletPrefix = "• "

// Render serializes a segmented document to .docx bytes. Output is
// deterministic: identical documents produce byte-identical archives
// because every zip header is written with a zeroed timestamp.
func Render(doc *types.SegmentedDocument) ([]byte, error) {
	if doc == nil || len(doc.Sections) == 0 {
		return nil, &RenderError{Message: "document has no sections"}
	}
	for _, section := range doc.Sections {
		if section.Category == "" {
			return nil, &RenderError{Message: fmt.Sprintf("section %q has no category", section.Heading)}
		}
	}

	documentXML := buildDocumentXML(doc)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	files := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML},
	}
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.name, Method: zip.Deflate})
		if err != nil {
			return nil, &RenderError{Message: "create " + f.name, Cause: err}
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			return nil, &RenderError{Message: "write " + f.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "close archive", Cause: err}
	}

	return out.Bytes(), nil
}

func buildDocumentXML(doc *types.SegmentedDocument) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	rendered := make(map[string]bool, len(renderOrder))
	for _, category := range renderOrder {
		section, ok := doc.Section(category)
		if !ok || len(section.Content) == 0 {
			continue
		}
		rendered[category] = true
		writeSection(&b, section)
	}
	for _, section := range doc.Sections {
		if rendered[section.Category] || len(section.Content) == 0 {
			continue
		}
		writeSection(&b, section)
	}

	fmt.Fprintf(&b,
		`<w:sectPr><w:pgMar w:top="%d" w:bottom="%d" w:left="%d" w:right="%d"/></w:sectPr>`,
		marginVertical, marginVertical, marginHorizontal, marginHorizontal)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeSection(b *strings.Builder, section types.Section) {
	if section.Category == types.CategoryHeader {
		writeHeader(b, section)
		return
	}

	heading := section.Heading
	if heading == "" {
		heading = titleCase(section.Category)
	}
	writeHeadingParagraph(b, strings.ToUpper(heading))
	writeRule(b)

	for _, line := range section.Content {
		switch {
		case section.Category == types.CategoryExperience && isTitleLine(line):
			writeParagraph(b, line, runProps{Bold: true, Size: bodySize})
		case section.Category == types.CategoryExperience:
			writeParagraph(b, bulletPrefix+line, runProps{Size: bodySize})
		default:
			writeParagraph(b, line, runProps{Size: bodySize})
		}
	}
}

// writeHeader renders the name/contact block: first line large and
// bold, remaining lines muted, all centered, rule underneath.
func writeHeader(b *strings.Builder, section types.Section) {
	writeParagraph(b, section.Content[0], runProps{
		Bold:     true,
		Size:     nameSize,
		Color:    nameColor,
		Centered: true,
	})
	for _, line := range section.Content[1:] {
		writeParagraph(b, line, runProps{
			Size:     bodySize,
			Color:    contactColor,
			Centered: true,
		})
	}
	writeRule(b)
}

type runProps struct {
	Bold     bool
	Size     int
	Color    string
	Centered bool
}

func writeParagraph(b *strings.Builder, text string, props runProps) {
	b.WriteString(`<w:p>`)
	if props.Centered {
		b.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	b.WriteString(`<w:r><w:rPr>`)
	if props.Bold {
		b.WriteString(`<w:b/>`)
	}
	fmt.Fprintf(b, `<w:sz w:val="%d"/>`, props.Size)
	if props.Color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, props.Color)
	}
	b.WriteString(`</w:rPr>`)
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	b.WriteString(`</w:r></w:p>`)
}

// writeHeadingParagraph emits a heading-styled paragraph so that
// re-parsing sees the explicit structural marker, not just bold text.
func writeHeadingParagraph(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>`)
	fmt.Fprintf(b, `<w:r><w:rPr><w:b/><w:sz w:val="%d"/><w:color w:val="%s"/></w:rPr>`, headingSize, headingColor)
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	b.WriteString(`</w:r></w:p>`)
}

// writeRule emits an empty paragraph carrying a thin bottom border.
// Re-parsing drops it because it holds no text.
func writeRule(b *strings.Builder) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="4" w:space="1" w:color="%s"/></w:pBdr></w:pPr></w:p>`,
		ruleColor)
}

// isTitleLine mirrors the rewriting package's notion of a job-title
// line inside the experience section.
func isTitleLine(line string) bool {
	return titleLinePattern.MatchString(line) || strings.Contains(line, " | ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
