package store

// Reference-window bounds for agent settings.
const (
	// MinTranscriptCount and MaxTranscriptCount bound how many most-recent
	// transcripts per linked meeting are pulled into generation context.
	MinTranscriptCount = 0
	MaxTranscriptCount = 10
	// DefaultTranscriptCount is applied to newly created agents.
	DefaultTranscriptCount = 3

	// MinChatWindowDays and MaxChatWindowDays bound the chat lookback window
	// used when no better anchor exists.
	MinChatWindowDays = 1
	MaxChatWindowDays = 30
	// DefaultChatWindowDays is applied to newly created agents.
	DefaultChatWindowDays = 7
)

// Agent is a named meeting-context profile that anchors agenda generation
// to one or more recurring meetings.
type Agent struct {
	ID        int32
	UID       string
	CreatorID int32
	CreatedTs int64
	UpdatedTs int64

	Name        string
	Description string
	// ChatChannelID is the optional chat channel linked to this agent.
	ChatChannelID string
	// TranscriptCount is how many most-recent transcripts per linked meeting
	// to pull into generation context (0-10).
	TranscriptCount int32
	// ChatWindowDays is the chat lookback window in days when no transcript
	// or knowledge anchor exists (1-30).
	ChatWindowDays int32
}

// FindAgent is the find condition for agents.
type FindAgent struct {
	ID        *int32
	UID       *string
	CreatorID *int32
}

// UpdateAgent is the update request for an agent.
type UpdateAgent struct {
	ID              int32
	UpdatedTs       *int64
	Name            *string
	Description     *string
	ChatChannelID   *string
	TranscriptCount *int32
	ChatWindowDays  *int32
}

// DeleteAgent is the delete request for an agent.
type DeleteAgent struct {
	ID int32
}
