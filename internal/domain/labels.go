package domain

import (
	"strings"
	"unicode"
)

// Report forms historically sent decorated option strings, e.g.
// "🛣️ Road - Potholes or road damage" or "🔴 High - Requires immediate
// attention". The workflow only ever reasons over the canonical label
// ("Road", "High"), so decoration is stripped at the boundary and never
// stored.

// CanonicalProblemType normalizes a possibly decorated problem type to its
// canonical category label. ok is false when the value maps to no known
// category.
func CanonicalProblemType(s string) (string, bool) {
	return canonical(s, ProblemTypes)
}

// CanonicalPriority normalizes a possibly decorated priority to its canonical
// label.
func CanonicalPriority(s string) (string, bool) {
	return canonical(s, Priorities)
}

func canonical(s string, allowed []string) (string, bool) {
	label := stripDecoration(s)
	for _, a := range allowed {
		if strings.EqualFold(label, a) {
			return a, true
		}
	}
	return label, false
}

// stripDecoration drops a leading emoji/symbol prefix and a trailing
// " - description" suffix, e.g. "🟡 Medium - Needs attention" -> "Medium".
func stripDecoration(s string) string {
	s = strings.TrimSpace(s)
	if head, _, found := strings.Cut(s, " - "); found {
		s = head
	}
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(s)
}
