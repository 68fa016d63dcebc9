package forward

import (
	"context"
	"errors"
	"fmt"
)

// Delivery order modes accepted by OrderTargets.
const (
	ModeDirectFirst = "direct-first"
	ModeProxyFirst  = "proxy-first"
)

// ErrNoTargets is returned when no delivery target is configured.
var ErrNoTargets = errors.New("forward: no delivery targets configured")

// DeliveryError aggregates a fully exhausted fallback run. It keeps the last
// per-target failure, which is what the caller surfaces.
type DeliveryError struct {
	Attempts int
	Last     *AttemptError
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("forward: all %d delivery targets failed: %v", e.Attempts, e.Last)
}

func (e *DeliveryError) Unwrap() error { return e.Last }

// OrderTargets builds the fallback order from the configured direct and
// proxy targets. Targets without a URL are skipped; mode selects which one
// goes first, defaulting to direct-first.
func OrderTargets(direct, proxy Target, mode string) []Target {
	candidates := []Target{direct, proxy}
	if mode == ModeProxyFirst {
		candidates = []Target{proxy, direct}
	}
	targets := make([]Target, 0, len(candidates))
	for _, t := range candidates {
		if t.URL != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

// Fallback tries each target strictly in order and stops at the first
// success. Targets are never attempted in parallel and there is no backoff:
// one ordered pass, then a DeliveryError wrapping the last failure.
func (a *Attempter) Fallback(ctx context.Context, targets []Target, contentType string, body []byte) (*Result, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	var last *AttemptError
	attempts := 0
	for _, target := range targets {
		attempts++
		res, err := a.Deliver(ctx, target, contentType, body)
		if err == nil {
			return res, nil
		}
		var ae *AttemptError
		if errors.As(err, &ae) {
			last = ae
		} else {
			last = &AttemptError{Kind: KindNoResponse, Target: target.URL, Err: err}
		}
		a.logger.Warn().
			Str("target", target.URL).
			Str("role", target.Role).
			Str("kind", string(last.Kind)).
			Msg("forward: delivery attempt failed")
	}
	return nil, &DeliveryError{Attempts: attempts, Last: last}
}
