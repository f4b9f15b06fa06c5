// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Resume-side section categories. Every section carries exactly one of
// these; CategoryOther is the catch-all for headings that match no
// known synonym.
const (
	CategoryHeader         = "header"
	CategorySummary        = "summary"
	CategoryExperience     = "experience"
	CategoryEducation      = "education"
	CategorySkills         = "skills"
	CategoryCertifications = "certifications"
	CategoryProjects       = "projects"
	CategoryAwards         = "awards"
	CategoryLanguages      = "languages"
	CategoryReferences     = "references"
	CategoryOther          = "other"
)

// Job-posting section categories.
const (
	JobResponsibilities = "responsibilities"
	JobRequirements     = "requirements"
	JobPreferred        = "preferred"
	JobBenefits         = "benefits"
	JobAbout            = "about"
)

// Section is a contiguous block of document content labeled with a
// normalized category. Heading preserves the original heading text,
// which may be empty for the implicit header block.
type Section struct {
	Heading  string   `json:"heading"`
	Category string   `json:"category"`
	Content  []string `json:"content"`
}

// SegmentedDocument is an ordered sequence of sections plus the full
// original text. Order is meaningful: the first section is
// conventionally the header block.
type SegmentedDocument struct {
	Sections []Section `json:"sections"`
	RawText  string    `json:"raw_text"`
}

// Section returns the logical section for a category. Duplicate
// sections of the same category accumulate into one bucket in source
// order; the returned heading is the first occurrence's heading.
func (d *SegmentedDocument) Section(category string) (Section, bool) {
	var merged Section
	found := false
	for _, s := range d.Sections {
		if s.Category != category {
			continue
		}
		if !found {
			merged.Heading = s.Heading
			merged.Category = s.Category
			found = true
		}
		merged.Content = append(merged.Content, s.Content...)
	}
	return merged, found
}

// Has reports whether any section with the given category exists.
func (d *SegmentedDocument) Has(category string) bool {
	for _, s := range d.Sections {
		if s.Category == category {
			return true
		}
	}
	return false
}

// Text flattens all section content into a single space-joined string.
func (d *SegmentedDocument) Text() string {
	var parts []string
	for _, s := range d.Sections {
		parts = append(parts, s.Content...)
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy. Stages that rewrite a document operate on
// a clone so the input is never mutated.
func (d *SegmentedDocument) Clone() *SegmentedDocument {
	if d == nil {
		return nil
	}
	out := &SegmentedDocument{RawText: d.RawText}
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		copied := Section{Heading: s.Heading, Category: s.Category}
		if s.Content != nil {
			copied.Content = append([]string(nil), s.Content...)
		}
		out.Sections[i] = copied
	}
	return out
}

// ToMap converts the document to the plain nested key-value shape used
// at the transport boundary: category -> {heading, content}, plus
// raw_text. Duplicate categories merge in source order.
func (d *SegmentedDocument) ToMap() map[string]any {
	sections := make(map[string]any, len(d.Sections))
	for _, s := range d.Sections {
		existing, ok := sections[s.Category].(map[string]any)
		if !ok {
			sections[s.Category] = map[string]any{
				"heading": s.Heading,
				"content": append([]string(nil), s.Content...),
			}
			continue
		}
		existing["content"] = append(existing["content"].([]string), s.Content...)
	}
	return map[string]any{
		"raw_text": d.RawText,
		"sections": sections,
	}
}
