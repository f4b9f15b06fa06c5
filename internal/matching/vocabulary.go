package matching

import (
	"regexp"
	"strings"
)

// minKeywordLen drops tokens too short to be meaningful; short
// acronyms survive as part of compound terms.
const minKeywordLen = 3

var (
	punctPattern = regexp.MustCompile(`[^\w\s/\+\#\.]`)
	digitPattern = regexp.MustCompile(`^\d+$`)
)

// compoundIndex maps the first word of each compound term to the
// candidate terms, longest first, for greedy longest-match scanning.
var compoundIndex = buildCompoundIndex()

func buildCompoundIndex() map[string][][]string {
	index := make(map[string][][]string)
	for _, term := range compoundTerms {
		words := strings.Fields(term)
		if len(words) < 2 {
			continue
		}
		index[words[0]] = append(index[words[0]], words)
	}
	for first := range index {
		candidates := index[first]
		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				if len(candidates[j]) > len(candidates[i]) {
					candidates[i], candidates[j] = candidates[j], candidates[i]
				}
			}
		}
	}
	return index
}

// normalize lowercases text and strips punctuation that is not part of
// technical tokens (slashes, pluses, hashes, and dots survive so terms
// like c++, c#, node.js, and ci/cd stay intact).
func normalize(text string) string {
	return strings.TrimSpace(punctPattern.ReplaceAllString(strings.ToLower(text), " "))
}

// ExtractKeywords tokenizes text into a deduplicated keyword list in
// first-occurrence order. Adjacent tokens forming a known compound term
// re-merge into one unit, longest match first; stop words, short
// tokens, and pure numbers are dropped.
func ExtractKeywords(text string) []string {
	words := strings.Fields(normalize(text))
	seen := make(map[string]struct{})
	var out []string

	add := func(keyword string) {
		if _, dup := seen[keyword]; dup {
			return
		}
		seen[keyword] = struct{}{}
		out = append(out, keyword)
	}

	for i := 0; i < len(words); i++ {
		word := strings.Trim(words[i], ".,;:()")

		if matched := matchCompound(words, i, word); matched > 0 {
			parts := make([]string, matched)
			for j := range parts {
				parts[j] = strings.Trim(words[i+j], ".,;:()")
			}
			add(strings.Join(parts, " "))
			i += matched - 1
			continue
		}

		if len(word) < minKeywordLen {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if digitPattern.MatchString(word) {
			continue
		}
		add(word)
	}

	return out
}

// matchCompound returns the word count of the longest compound term
// starting at position i, or 0 when none matches.
func matchCompound(words []string, i int, first string) int {
	for _, candidate := range compoundIndex[first] {
		if i+len(candidate) > len(words) {
			continue
		}
		match := true
		for j, part := range candidate {
			if strings.Trim(words[i+j], ".,;:()") != part {
				match = false
				break
			}
		}
		if match {
			return len(candidate)
		}
	}
	return 0
}

// KeywordSet returns the keywords of a text as a lookup set.
func KeywordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, kw := range ExtractKeywords(text) {
		set[kw] = struct{}{}
	}
	return set
}

// containsKeyword reports whether a normalized line mentions the
// keyword as a whole token sequence.
func containsKeyword(line, keyword string) bool {
	fields := strings.Fields(normalize(line))
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".,;:()")
	}
	normalized := " " + strings.Join(fields, " ") + " "
	return strings.Contains(normalized, " "+keyword+" ")
}
