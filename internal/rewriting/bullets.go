package rewriting

import (
	"regexp"
	"strings"
)

// titleLinePattern recognizes job-title lines such as
// "Senior Engineer — Acme Corp", which must never be augmented.
var titleLinePattern = regexp.MustCompile(`^[A-Z][\w\s]+\s*[—\-–]\s*\w`)

// isBullet reports whether a line is an augmentable bullet rather than
// a job-title or company line.
func isBullet(line string) bool {
	if titleLinePattern.MatchString(line) {
		return false
	}
	return !strings.Contains(line, " | ")
}

// contextTokens builds the token set a bullet is scored against. The
// keyword's job-side context lines are preferred; when the analyzer
// found none, the keyword's own tokens stand in.
func contextTokens(keyword string, contexts map[string][]string) map[string]bool {
	tokens := map[string]bool{}
	for _, line := range contexts[keyword] {
		for token := range tokenize(line) {
			tokens[token] = true
		}
	}
	if len(tokens) == 0 {
		for token := range tokenize(keyword) {
			tokens[token] = true
		}
	}
	return tokens
}

// tokenize lowercases a line and splits it into trimmed tokens.
func tokenize(line string) map[string]bool {
	tokens := map[string]bool{}
	for _, field := range strings.Fields(strings.ToLower(line)) {
		field = strings.Trim(field, ".,;:()")
		if field != "" {
			tokens[field] = true
		}
	}
	return tokens
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for token := range a {
		if b[token] {
			count++
		}
	}
	return count
}
