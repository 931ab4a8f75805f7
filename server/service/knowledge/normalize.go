package knowledge

import (
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

// Normalize replaces every literal glossary term occurrence with its
// canonical name and returns the result with the total replacement count.
// Longer terms are applied first so that overlapping terms do not clobber
// each other.
func Normalize(text string, entries []*store.GlossaryEntry) (string, int) {
	if text == "" || len(entries) == 0 {
		return text, 0
	}

	sorted := make([]*store.GlossaryEntry, len(entries))
	copy(sorted, entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j].Term) > len(sorted[j-1].Term); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	total := 0
	for _, entry := range sorted {
		if entry.Term == "" || entry.Term == entry.CanonicalName {
			continue
		}
		count := strings.Count(text, entry.Term)
		if count == 0 {
			continue
		}
		text = strings.ReplaceAll(text, entry.Term, entry.CanonicalName)
		total += count
	}
	return text, total
}
