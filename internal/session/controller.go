package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"codeberg.org/snonux/cloudtranslate/internal"
	"codeberg.org/snonux/cloudtranslate/internal/history"
	"codeberg.org/snonux/cloudtranslate/internal/quota"
	"codeberg.org/snonux/cloudtranslate/internal/translation"
)

// largeTextThreshold is the character count from which a translation
// needs explicit confirmation before spending quota.
const largeTextThreshold = 5000

// Confirmation gate kinds
const (
	ConfirmSameLanguage  = "same-language"
	ConfirmLargeText     = "large-text"
	ConfirmQuotaExceeded = "quota-exceeded"
)

var (
	// ErrEmptyInput is returned when there is no text to translate.
	ErrEmptyInput = errors.New("no text to translate")

	// ErrCanceled is returned when the user declines a confirmation
	// gate. Nothing was charged or recorded.
	ErrCanceled = errors.New("translation cancelled")
)

// Confirmation is one yes/no question put to the user before a
// billable call proceeds
type Confirmation struct {
	Kind    string
	Message string
}

// Confirmer answers confirmation gates. Implementations block until
// an answer is available; returning false aborts the translation.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) bool
}

// Config assembles a Controller. All fields are required.
type Config struct {
	Translator translation.Translator
	Ledger     *quota.Ledger
	History    *history.Log
	Confirmer  Confirmer
	Logger     *slog.Logger
}

// Controller orchestrates translation sessions over its injected
// collaborators. It performs no retries, no caching and holds no
// global state.
type Controller struct {
	translator translation.Translator
	ledger     *quota.Ledger
	history    *history.Log
	confirmer  Confirmer
	logger     *slog.Logger
}

// New validates cfg and assembles a Controller.
func New(cfg Config) (*Controller, error) {
	if cfg.Translator == nil {
		return nil, fmt.Errorf("translator is required")
	}
	if cfg.Ledger == nil {
		return nil, fmt.Errorf("usage ledger is required")
	}
	if cfg.History == nil {
		return nil, fmt.Errorf("history log is required")
	}
	if cfg.Confirmer == nil {
		return nil, fmt.Errorf("confirmer is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Controller{
		translator: cfg.Translator,
		ledger:     cfg.Ledger,
		history:    cfg.History,
		confirmer:  cfg.Confirmer,
		logger:     cfg.Logger,
	}, nil
}

// Translate runs one full translation: input validation, the
// confirmation gates in order, the provider call, then usage and
// history bookkeeping. Declining any gate returns ErrCanceled with no
// state changed. Usage and history are written only after a
// successful provider call; their save failures are logged, never
// returned.
func (c *Controller) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	if sourceLang == targetLang {
		ok := c.confirmer.Confirm(ctx, Confirmation{
			Kind:    ConfirmSameLanguage,
			Message: "Source and target languages are the same. Continue?",
		})
		if !ok {
			return "", ErrCanceled
		}
	}

	// Characters are counted the way the API bills them, by code
	// points, on the trimmed text.
	charCount := utf8.RuneCountInString(text)

	if charCount >= largeTextThreshold {
		ok := c.confirmer.Confirm(ctx, Confirmation{
			Kind:    ConfirmLargeText,
			Message: fmt.Sprintf("This translation will use %s characters.\nContinue?", internal.FormatNumber(charCount)),
		})
		if !ok {
			return "", ErrCanceled
		}
	}

	if d := c.ledger.Precheck(charCount); d.WouldExceed {
		ok := c.confirmer.Confirm(ctx, Confirmation{
			Kind: ConfirmQuotaExceeded,
			Message: fmt.Sprintf("This will exceed your monthly limit of %s characters.\nCurrent used: %s\nThis text: %s\n\nContinue anyway?",
				internal.FormatNumber(d.Limit), internal.FormatNumber(d.Used), internal.FormatNumber(d.Chars)),
		})
		if !ok {
			return "", ErrCanceled
		}
	}

	c.logger.Debug("translating", "source", sourceLang, "target", targetLang, "chars", charCount)
	translated, err := c.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	if err := c.ledger.Commit(charCount); err != nil {
		c.logger.Warn("failed to save usage", "error", err)
	}
	if err := c.history.Record(history.NewEntry(sourceLang, targetLang, text, translated, charCount)); err != nil {
		c.logger.Warn("failed to save history", "error", err)
	}

	return translated, nil
}

// Usage returns the current quota snapshot.
func (c *Controller) Usage() quota.Decision {
	return c.ledger.Summary()
}

// NextReset returns the date the monthly usage resets, or the zero
// time when it cannot be computed.
func (c *Controller) NextReset() time.Time {
	return c.ledger.NextReset()
}

// HistoryLines returns the rendered history display lines.
func (c *Controller) HistoryLines() []string {
	return c.history.Lines()
}
