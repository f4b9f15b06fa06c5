// Package segmenting splits styled resume paragraphs into labeled sections.
package segmenting

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Paragraph is one source paragraph with the style hints the document
// adapter extracted alongside its text.
type Paragraph struct {
	Text    string
	Heading bool // explicit structural heading style on the paragraph
	Bold    bool // every non-empty run in the paragraph is emphasized
}

const (
	// maxBoldHeadingLen bounds the bold-and-short heuristic: longer
	// bold lines are body text, not headings.
	maxBoldHeadingLen   = 50
	maxBoldHeadingWords = 6
)

var bulletPrefixes = []string{"•", "‣", "◦", "⁃", "∙", "-", "*"}

// Segment groups styled paragraphs into labeled sections.
//
// A paragraph opens a new section when one of three signals fires, in
// priority order: an explicit heading style, a bold-and-short line, or
// a match against the heading synonym table. Headings that match no
// synonym open a section with category "other" but keep their original
// text. Content before the first heading forms the implicit header
// block, and a name line at the top of the document stays in the
// header rather than opening an "other" section, whether bold or
// heading styled.
//
// Identical input always yields an identical document.
func Segment(paragraphs []Paragraph) *types.SegmentedDocument {
	doc := &types.SegmentedDocument{}
	rawLines := make([]string, 0, len(paragraphs))
	current := -1

	for _, p := range paragraphs {
		text := strings.TrimSpace(p.Text)
		rawLines = append(rawLines, p.Text)
		if text == "" {
			continue
		}

		category, known := ClassifyHeading(text)
		isHeading := p.Heading || (p.Bold && isShortLine(text)) || known

		// A leading line that matches no synonym is the candidate's
		// name, not a section heading, whatever its styling.
		if isHeading && !known && len(doc.Sections) == 0 {
			isHeading = false
		}

		if isHeading {
			if !known {
				category = types.CategoryOther
			}
			doc.Sections = append(doc.Sections, types.Section{
				Heading:  text,
				Category: category,
			})
			current = len(doc.Sections) - 1
			continue
		}

		line := stripBulletPrefix(text)
		if line == "" {
			continue
		}
		if current >= 0 {
			doc.Sections[current].Content = append(doc.Sections[current].Content, line)
			continue
		}

		// Content before any heading goes into the implicit header.
		if len(doc.Sections) == 0 || doc.Sections[0].Category != types.CategoryHeader {
			doc.Sections = append([]types.Section{{Category: types.CategoryHeader}}, doc.Sections...)
		}
		doc.Sections[0].Content = append(doc.Sections[0].Content, line)
	}

	doc.RawText = strings.Join(rawLines, "\n")
	return doc
}

func isShortLine(text string) bool {
	return len(text) < maxBoldHeadingLen && len(strings.Fields(text)) <= maxBoldHeadingWords
}

func stripBulletPrefix(line string) string {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}
