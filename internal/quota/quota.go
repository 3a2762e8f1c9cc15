package quota

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"codeberg.org/snonux/cloudtranslate/internal/storage"
)

const monthKeyFormat = "2006-01"

// document is the persisted shape of usage.json
type document struct {
	MonthKey     string `json:"month_key"`
	UsedChars    int    `json:"used_chars"`
	MonthlyLimit int    `json:"monthly_limit"`
}

// Ledger tracks translated characters against the monthly limit.
// All mutation goes through Commit; Precheck and Summary never change
// state.
type Ledger struct {
	path string
	doc  document
}

// Decision is a quota snapshot for a prospective translation of Chars
// characters.
type Decision struct {
	Used        int
	Limit       int
	Chars       int
	Projected   int
	WouldExceed bool
}

// Remaining returns the characters left this month, never negative.
func (d Decision) Remaining() int {
	if r := d.Limit - d.Used; r > 0 {
		return r
	}
	return 0
}

// Load reads the ledger at path, creating it on first run. The stored
// document is migrated at read time: a month key other than the
// current month resets the counter, and the monthly limit always
// tracks the configured value. The reconciled document is persisted
// before the ledger is returned.
func Load(path string, monthlyLimit int, logger *slog.Logger) (*Ledger, error) {
	l := &Ledger{path: path}
	current := time.Now().Format(monthKeyFormat)

	err := storage.ReadJSON(path, &l.doc)
	if errors.Is(err, os.ErrNotExist) {
		l.doc = document{MonthKey: current, UsedChars: 0, MonthlyLimit: monthlyLimit}
		if err := storage.WriteJSON(path, l.doc); err != nil {
			return nil, err
		}
		return l, nil
	}
	if err != nil {
		return nil, err
	}

	if l.doc.MonthKey != current {
		logger.Info("new month, resetting usage",
			"previous", l.doc.MonthKey, "current", current, "used", l.doc.UsedChars)
		l.doc.MonthKey = current
		l.doc.UsedChars = 0
	}
	l.doc.MonthlyLimit = monthlyLimit
	if err := storage.WriteJSON(path, l.doc); err != nil {
		return nil, err
	}
	return l, nil
}

// Precheck reports how n more characters would land against the limit.
func (l *Ledger) Precheck(n int) Decision {
	return Decision{
		Used:        l.doc.UsedChars,
		Limit:       l.doc.MonthlyLimit,
		Chars:       n,
		Projected:   l.doc.UsedChars + n,
		WouldExceed: l.doc.UsedChars+n > l.doc.MonthlyLimit,
	}
}

// Summary returns the current quota snapshot.
func (l *Ledger) Summary() Decision {
	return l.Precheck(0)
}

// Commit adds n translated characters and persists the ledger. The
// in-memory count is updated even when the save fails.
func (l *Ledger) Commit(n int) error {
	l.doc.UsedChars += n
	return storage.WriteJSON(l.path, l.doc)
}

// NextReset returns the first day of the month after the ledger's
// month key. December rolls over to January of the following year.
func (l *Ledger) NextReset() time.Time {
	return nextReset(l.doc.MonthKey)
}

func nextReset(monthKey string) time.Time {
	t, err := time.Parse(monthKeyFormat, monthKey)
	if err != nil {
		return time.Time{}
	}
	if t.Month() == time.December {
		return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.Local)
}
