package translation

import "context"

// Translator translates text between two languages given by their
// codes. Implementations do not detect languages, the source is
// always explicit.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
