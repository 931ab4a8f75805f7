package store

// GlossaryEntry is one ubiquitous-language dictionary entry owned by a user.
// Normalization replaces occurrences of Term with CanonicalName.
type GlossaryEntry struct {
	ID        int32
	CreatorID int32
	CreatedTs int64

	Term          string
	CanonicalName string
	Description   string
}

// FindGlossaryEntry is the find condition for glossary entries.
type FindGlossaryEntry struct {
	ID        *int32
	CreatorID *int32
}

// DeleteGlossaryEntry is the delete request for a glossary entry.
type DeleteGlossaryEntry struct {
	ID int32
}
