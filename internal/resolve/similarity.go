package resolve

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// stopWords are filler tokens that carry no meaning for label matching
// "total" stays in: it separates aggregates from their components.
var stopWords = map[string]bool{
	"and": true, "of": true, "the": true, "net": true,
}

// NormalizeLabel lowercases a label, strips punctuation, splits camel case
// tag remainders and collapses whitespace.
func NormalizeLabel(label string) string {
	// Strip a namespace prefix if the raw tag was passed directly
	if idx := strings.Index(label, ":"); idx >= 0 && !strings.Contains(label[:idx], " ") {
		label = label[idx+1:]
	}

	label = splitCamelCase(label)
	label = strings.ToLower(label)
	label = nonAlnum.ReplaceAllString(label, " ")

	words := strings.Fields(label)
	kept := words[:0]
	for _, w := range words {
		if stopWords[w] {
			continue
		}
		kept = append(kept, singular(w))
	}
	return strings.Join(kept, " ")
}

// singular trims a plural-s so "revenues" and "revenue" compare equal.
// Both sides of every comparison pass through this, so the crude rule
// stays self-consistent.
func singular(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}

// splitCamelCase inserts spaces at lower→upper boundaries so XBRL tag
// names compare against human labels ("GrossProfit" → "Gross Profit")
func splitCamelCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(s[i-1])
			if prev >= 'a' && prev <= 'z' {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Similarity computes word-set similarity between two normalized labels,
// in [0,1]. Exact normalized equality is 1.0; otherwise Jaccard overlap
// over words.
func Similarity(a, b string) float64 {
	a = NormalizeLabel(a)
	b = NormalizeLabel(b)

	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}

	intersection := 0
	seen := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		if seen[w] {
			continue
		}
		seen[w] = true
		if setA[w] {
			intersection++
		}
	}

	union := len(setA) + len(seen) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
