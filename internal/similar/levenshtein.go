package similar

// Levenshtein computes the edit distance (insertions, deletions and
// substitutions of single bytes) between two strings.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// a is the shorter string, so the rows are as small as possible
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Score is 1 for identical identifiers and 0 for completely different
// ones, computed on their normalised forms.
func Score(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(max(len(na), len(nb)))
}

// Threshold is the lowest Score Closest accepts.
const Threshold = 0.5

// Closest returns the candidate most similar to name, if any scores at
// least Threshold. Ties keep the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", Threshold

	found := false
	for _, c := range candidates {
		if c == "" {
			continue
		}

		if s := Score(name, c); s > bestScore || (!found && s == bestScore) {
			best, bestScore, found = c, s, true
		}
	}

	return best, found
}

// Hint renders Closest as a message suffix, or "" when nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return ` (did you mean "` + c + `"?)`
	}

	return ""
}
