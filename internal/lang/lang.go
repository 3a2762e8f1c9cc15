package lang

import (
	"fmt"
	"strings"
)

// Entry is one row of the language catalog, either a selectable
// language or a visual separator. Separator rows have an empty code
// and a name starting with "---".
type Entry struct {
	Code string
	Name string
}

// catalog is the fixed language offering, in display order.
var catalog = []Entry{
	{Code: "en", Name: "English"},
	{Code: "th", Name: "Thai"},
	{Name: "--- WHO Languages ---"},
	{Code: "ar", Name: "Arabic"},
	{Code: "zh", Name: "Chinese"},
	{Code: "fr", Name: "French"},
	{Code: "ru", Name: "Russian"},
	{Code: "es", Name: "Spanish"},
	{Name: "--- Extra Languages ---"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "de", Name: "German"},
}

// IsSeparator reports whether a display string is a separator row
// rather than a selectable language.
func IsSeparator(display string) bool {
	return strings.HasPrefix(strings.TrimSpace(display), "---")
}

// Display returns the display form of an entry, "Name (code)" for
// languages and the bare text for separators.
func (e Entry) Display() string {
	if e.Code == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Code)
}

// DisplayList returns all catalog display strings in catalog order,
// separators included.
func DisplayList() []string {
	list := make([]string, len(catalog))
	for i, e := range catalog {
		list[i] = e.Display()
	}
	return list
}

// ParseCode extracts the language code from a display string such as
// "English (en)". The code between the last "(" and the trailing ")"
// wins, so names containing parentheses still parse. Input without a
// trailing parenthesised code is returned unchanged, which lets bare
// codes pass through.
func ParseCode(display string) string {
	if strings.Contains(display, "(") && strings.HasSuffix(display, ")") {
		return display[strings.LastIndex(display, "(")+1 : len(display)-1]
	}
	return display
}

// DisplayForCode returns the display string of the language with the
// given code. Unknown codes fall back to the first catalog entry.
func DisplayForCode(code string) string {
	for _, e := range catalog {
		if e.Code != "" && e.Code == code {
			return e.Display()
		}
	}
	return catalog[0].Display()
}
