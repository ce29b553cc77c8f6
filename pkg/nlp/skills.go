package nlp

import (
	"sort"
	"strings"
)

// Recognizer extracts known catalog skills from user input.
type Recognizer struct {
	known map[string]struct{}
}

// NewRecognizer builds a recognizer over a set of known skills.
// Keys are lowercased, so callers may pass the catalog set as is.
func NewRecognizer(known map[string]struct{}) *Recognizer {
	k := make(map[string]struct{}, len(known))
	for s := range known {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		k[s] = struct{}{}
	}
	return &Recognizer{known: k}
}

// FromTokens returns the subsequence of tokens that exactly equal a known skill.
// Duplicates are kept; matching downstream is set based.
func (r *Recognizer) FromTokens(tokens []string) []string {
	out := []string{}
	for _, t := range tokens {
		if _, ok := r.known[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// FromText tokenizes extracted document text and runs FromTokens.
func (r *Recognizer) FromText(text string) []string {
	return r.FromTokens(Tokenize(text))
}

// FromManual handles the free-form skills field.
//
// With a comma the input is a list: segments are trimmed, empties dropped and
// kept verbatim without catalog validation. Without a comma every known skill
// that occurs as a substring of the lowercased input is returned, so "java"
// also hits "javascript". Document mode matches whole tokens instead.
func (r *Recognizer) FromManual(input string) []string {
	out := []string{}
	if strings.TrimSpace(input) == "" {
		return out
	}
	if strings.Contains(input, ",") {
		for _, seg := range strings.Split(input, ",") {
			if seg = strings.TrimSpace(seg); seg != "" {
				out = append(out, seg)
			}
		}
		return out
	}
	lower := strings.ToLower(input)
	for s := range r.known {
		if strings.Contains(lower, s) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
