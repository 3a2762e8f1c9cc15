package history

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/cloudtranslate/internal/storage"
)

const (
	// maxEntries caps the log, oldest entries fall off first.
	maxEntries = 500

	timeFormat = "2006-01-02 15:04:05"
	previewLen = 60
)

// Entry is one recorded translation
type Entry struct {
	Timestamp      string `json:"timestamp"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	Chars          int    `json:"chars"`
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
}

// NewEntry stamps a translation record with the current local time.
func NewEntry(sourceLang, targetLang, sourceText, translatedText string, chars int) Entry {
	return Entry{
		Timestamp:      time.Now().Format(timeFormat),
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		Chars:          chars,
		SourceText:     sourceText,
		TranslatedText: translatedText,
	}
}

// document is the persisted shape of history.json
type document struct {
	Entries []Entry `json:"entries"`
}

// Log is the capped, newest-first translation history
type Log struct {
	path string
	doc  document
}

// Load reads the history at path, creating an empty log on first run.
// A document without an entries key is treated as empty.
func Load(path string) (*Log, error) {
	l := &Log{path: path}

	err := storage.ReadJSON(path, &l.doc)
	if errors.Is(err, os.ErrNotExist) {
		l.doc = document{Entries: []Entry{}}
		if err := storage.WriteJSON(path, l.doc); err != nil {
			return nil, err
		}
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Record prepends e, enforces the entry cap and persists the log. The
// in-memory log is updated even when the save fails.
func (l *Log) Record(e Entry) error {
	l.doc.Entries = append([]Entry{e}, l.doc.Entries...)
	if len(l.doc.Entries) > maxEntries {
		l.doc.Entries = l.doc.Entries[:maxEntries]
	}
	return storage.WriteJSON(l.path, l.doc)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.doc.Entries)
}

// Entries returns a copy of the recorded entries, newest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.doc.Entries))
	copy(out, l.doc.Entries)
	return out
}

// Lines renders the log for display: entries grouped under date
// headers in stored order, previews collapsed to one line each. The
// lines are derived fresh on every call.
func (l *Log) Lines() []string {
	if len(l.doc.Entries) == 0 {
		return []string{"No history yet."}
	}

	var lines []string
	currentDate := ""
	for _, e := range l.doc.Entries {
		dateStr, timeStr := splitTimestamp(e.Timestamp)
		if dateStr != currentDate {
			if currentDate != "" {
				lines = append(lines, "")
			}
			currentDate = dateStr
			lines = append(lines, fmt.Sprintf("=== %s ===", currentDate))
		}
		lines = append(lines,
			fmt.Sprintf("[%s] %s->%s (%d chars)", timeStr, e.SourceLang, e.TargetLang, e.Chars),
			"  "+preview(e.SourceText),
			"  → "+preview(e.TranslatedText),
		)
	}
	return lines
}

// splitTimestamp returns the date and clock parts of a stored
// timestamp. An unparseable timestamp degrades to a raw split on the
// first space so the entry still renders.
func splitTimestamp(ts string) (date, clock string) {
	if t, err := time.Parse(timeFormat, ts); err == nil {
		return t.Format("2006-01-02"), t.Format("15:04")
	}
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[:i], ""
	}
	return ts, ""
}

// preview collapses newlines and truncates to previewLen runes.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen]) + "..."
	}
	return s
}
