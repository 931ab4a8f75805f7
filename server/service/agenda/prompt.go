package agenda

import (
	"fmt"
	"strings"

	"github.com/agendapilot/agendapilot/plugin/chat"
	"github.com/agendapilot/agendapilot/store"
)

// Prompt assembly limits. Chat and transcripts are truncated, never dropped
// wholesale, so the model always sees the newest material.
const (
	maxChatMessages       = 50
	maxTranscriptChars    = 2000
	transcriptEntryFormat = "%s (%s): %s"
)

// AnnotatedTranscript is a transcript tagged with its meeting title for
// display inside the generation context.
type AnnotatedTranscript struct {
	MeetingTitle string
	Transcript   *store.MeetingTranscript
}

// buildPrompt assembles the generation prompt from the aggregated context
// bundle. Sections with no content are omitted.
func buildPrompt(agent *store.Agent, knowledge *store.Knowledge, transcripts []AnnotatedTranscript, messages []chat.Message, glossary []*store.GlossaryEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create the next meeting agenda for %q.\n", agent.Name)
	if agent.Description != "" {
		fmt.Fprintf(&b, "Profile: %s\n", agent.Description)
	}

	if len(glossary) > 0 {
		b.WriteString("\n## Glossary\n")
		for _, entry := range glossary {
			fmt.Fprintf(&b, "- %s: %s", entry.Term, entry.CanonicalName)
			if entry.Description != "" {
				fmt.Fprintf(&b, " (%s)", entry.Description)
			}
			b.WriteString("\n")
		}
	}

	if knowledge != nil {
		b.WriteString("\n## Latest meeting notes\n")
		fmt.Fprintf(&b, "Date: %s\n", knowledge.MeetingDate().Format("2006-01-02"))
		b.WriteString(knowledge.NormalizedText)
		b.WriteString("\n")
	}

	if len(transcripts) > 0 {
		b.WriteString("\n## Recent transcripts (latest first)\n")
		for _, annotated := range transcripts {
			transcript := annotated.Transcript
			fmt.Fprintf(&b, "\n### %s — %s\n", annotated.MeetingTitle, transcript.MeetingDate().Format("2006-01-02"))
			b.WriteString(truncate(formatEntries(transcript), maxTranscriptChars))
			b.WriteString("\n")
		}
	}

	if len(messages) > 0 {
		b.WriteString("\n## Recent chat messages\n")
		start := 0
		if len(messages) > maxChatMessages {
			start = len(messages) - maxChatMessages
		}
		for _, msg := range messages[start:] {
			fmt.Fprintf(&b, "- %s: %s\n", msg.UserName, msg.Text)
		}
	}

	b.WriteString("\nProduce a concise markdown agenda with follow-ups from the notes, open threads from the transcripts and chat, and time for new topics.\n")
	return b.String()
}

func formatEntries(transcript *store.MeetingTranscript) string {
	if len(transcript.Entries) == 0 {
		return transcript.RawText
	}
	lines := make([]string, 0, len(transcript.Entries))
	for _, entry := range transcript.Entries {
		lines = append(lines, fmt.Sprintf(transcriptEntryFormat, entry.Speaker, entry.Timestamp, entry.Text))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
