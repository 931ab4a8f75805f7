package transcript

import (
	"regexp"
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

// speakerPattern matches a speaker marker line like "Alice (10:02)".
var speakerPattern = regexp.MustCompile(`^(.+?)\s*\((\d{1,2}:\d{2})\)\s*$`)

// Parse structures raw transcript text into ordered entries. A block starts
// at a speaker marker line and collects the non-empty lines until the next
// marker; multi-line utterances are joined. Blocks with no utterance text
// are dropped. Non-matching input yields zero entries, not an error.
func Parse(rawText string) []store.TranscriptEntry {
	if strings.TrimSpace(rawText) == "" {
		return nil
	}

	var entries []store.TranscriptEntry
	var speaker, timestamp string
	var textLines []string

	flush := func() {
		if speaker == "" {
			return
		}
		text := strings.TrimSpace(strings.Join(textLines, "\n"))
		if text != "" {
			entries = append(entries, store.TranscriptEntry{
				Speaker:   speaker,
				Timestamp: timestamp,
				Text:      text,
			})
		}
	}

	for _, line := range strings.Split(rawText, "\n") {
		if match := speakerPattern.FindStringSubmatch(line); match != nil {
			flush()
			speaker = match[1]
			timestamp = match[2]
			textLines = textLines[:0]
			continue
		}
		if strings.TrimSpace(line) != "" {
			textLines = append(textLines, line)
		}
	}
	flush()

	return entries
}

// ExtractSpeakers returns the de-duplicated speaker labels of parsed entries.
func ExtractSpeakers(entries []store.TranscriptEntry) []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, entry := range entries {
		if !seen[entry.Speaker] {
			seen[entry.Speaker] = true
			speakers = append(speakers, entry.Speaker)
		}
	}
	return speakers
}
