package cli

import (
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/cloudtranslate/internal"
	"codeberg.org/snonux/cloudtranslate/internal/lang"
	"codeberg.org/snonux/cloudtranslate/internal/quota"
)

// RenderUsage formats the monthly usage summary with the next reset
// date on a second line. A zero reset time means the stored month key
// could not be parsed, so only the generic note is shown.
func RenderUsage(d quota.Decision, nextReset time.Time) string {
	line := fmt.Sprintf("Usage this month: %s / %s chars (Remaining: %s)",
		internal.FormatNumber(d.Used),
		internal.FormatNumber(d.Limit),
		internal.FormatNumber(d.Remaining()))

	if nextReset.IsZero() {
		return line + "\nResets monthly"
	}
	return line + "\nResets around: " + nextReset.Format("2006-01-02")
}

// RenderLanguages returns the selectable languages, one per line, with
// the separator rows kept as visual group headings.
func RenderLanguages() string {
	return strings.Join(lang.DisplayList(), "\n")
}
