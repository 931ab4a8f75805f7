// Package matching scores how well a transcript corresponds to a recurring
// meeting. All scores are in [0, 1].
package matching

import (
	"math"
	"strings"
	"time"
)

// StringSimilarity compares two strings case-insensitively.
// Exact matches score 1.0, containment scores the length ratio, anything
// else falls back to normalized Levenshtein distance.
func StringSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	score := 1.0 - float64(levenshtein(a, b))/float64(maxLen)
	return math.Max(0, score)
}

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// TimeProximity scores how close two instants are. The score decays
// linearly from 1.0 at zero distance to 0 at 24 hours apart or more.
func TimeProximity(a, b time.Time) float64 {
	hours := math.Abs(a.Sub(b).Hours())
	return math.Max(0, 1.0-hours/24.0)
}

// SetOverlap computes the Jaccard index of two string sets.
// Comparison is case-insensitive; two empty sets score 0.
func SetOverlap(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for item := range setA {
		if setB[item] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = true
		}
	}
	return set
}

// LocalPart extracts the lowercased local part of an email address. A value
// without '@' is returned lowercased as-is.
func LocalPart(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if idx := strings.Index(email, "@"); idx >= 0 {
		return email[:idx]
	}
	return email
}
