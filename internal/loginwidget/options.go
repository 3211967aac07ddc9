package loginwidget

import "time"

// DefaultAllowedTimeOffset is how far auth_date may be from the current time
// when no other offset is configured.
const DefaultAllowedTimeOffset = 30 * time.Second

// Option customizes an Authenticator at construction time.
type Option func(*Authenticator)

// WithAllowedTimeOffset sets the initial freshness window.
func WithAllowedTimeOffset(d time.Duration) Option {
	return func(a *Authenticator) {
		a.SetAllowedTimeOffset(d)
	}
}

// WithClock replaces the wall clock used for the freshness check.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		if now != nil {
			a.now = now
		}
	}
}
