package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

const (
	breakerFailureThreshold = 3
	breakerOpenFor          = 30 * time.Second
)

// Breaker wraps a Translator in a circuit breaker so repeated
// provider failures fail fast instead of hammering a paid API. It
// never retries and never alters a successful result.
type Breaker struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

// withBreaker wraps t in a named circuit breaker that opens after
// three consecutive failures and stays open for thirty seconds.
func withBreaker(name string, t Translator) *Breaker {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
	}
	return &Breaker{
		inner: t,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped provider while the circuit is
// closed and fails fast with a TransportError while it is open.
func (b *Breaker) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text, sourceLang, targetLang)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &TransportError{Provider: b.cb.Name(), Err: err}
		}
		return "", err
	}
	return result.(string), nil
}
