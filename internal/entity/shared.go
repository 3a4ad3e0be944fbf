package entity

import (
	"strings"
	"unicode"
)

// NormalizeAnswer canonicalizes learner input before comparison: everything
// that is not a letter or whitespace is dropped, runs of whitespace collapse
// to a single space, and the result is lower-cased. The function is total and
// idempotent; answer equality is defined over its output.
func NormalizeAnswer(answer string) string {
	var b strings.Builder
	b.Grow(len(answer))
	for _, r := range answer {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), " "))
}

// AnswersEqual reports whether two answers are equal after normalization.
func AnswersEqual(a, b string) bool {
	return NormalizeAnswer(a) == NormalizeAnswer(b)
}

// TokenizeAnswer splits a phrase into its normalized word tokens.
func TokenizeAnswer(answer string) []string {
	return strings.Fields(NormalizeAnswer(answer))
}
