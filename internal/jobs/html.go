package jobs

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/resume-matcher/internal/types"
)

// containerSelectors are tried in order to locate the posting body
// before falling back to the whole page.
var containerSelectors = []string{
	`[class*="job-description"]`,
	`[class*="job_description"]`,
	`[class*="jobDescription"]`,
	`[class*="posting"]`,
	`[id*="job-description"]`,
	`[id*="job_description"]`,
	"article",
	"main",
	`[role="main"]`,
}

// blockTags are HTML elements that terminate a text line.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "ul": {}, "ol": {}, "br": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"section": {}, "tr": {}, "td": {}, "table": {},
}

// FromHTML parses a job posting out of raw HTML. It scans known
// container structures first and then applies the same line heuristic
// as FromText to the extracted text.
func FromHTML(rawHTML string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse job posting HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header, noscript").Remove()

	container := doc.Find("body")
	for _, selector := range containerSelectors {
		if found := doc.Find(selector); found.Length() > 0 {
			container = found.First()
			break
		}
	}

	text := blockText(container)
	posting := FromText(text)

	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		posting.Title = title
	}

	return posting, nil
}

// blockText renders a selection to text with one line per block-level
// element, which preserves the heading/content line structure the text
// heuristic depends on.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&sb, node)
	}
	return sb.String()
}

func writeNodeText(sb *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		sb.WriteString(node.Data)
	case html.ElementNode:
		_, block := blockTags[node.Data]
		if block {
			sb.WriteString("\n")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeNodeText(sb, child)
		}
		if block {
			sb.WriteString("\n")
		}
	default:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeNodeText(sb, child)
		}
	}
}
