// Package timex provides a time.Duration wrapper that can be read from JSON
// either as a Go duration string ("30s", "1m") or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// MaxSeconds is the largest whole number of seconds a time.Duration holds.
const MaxSeconds = math.MaxInt64 / int64(time.Second)

// ErrSecondsOutOfRange is returned by Seconds for negative or too large
// values.
var ErrSecondsOutOfRange = errors.New("seconds out of range")

// Seconds converts n whole seconds to a time.Duration. n must be between 0
// and MaxSeconds; anything else would wrap around.
func Seconds(n int64) (time.Duration, error) {
	if n < 0 || n > MaxSeconds {
		return 0, fmt.Errorf("%w: %d (allowed 0..%d)", ErrSecondsOutOfRange, n, MaxSeconds)
	}
	return time.Duration(n) * time.Second, nil
}

// Duration wraps time.Duration for JSON decoding.
type Duration struct {
	time.Duration
}

// MarshalJSON writes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "1m30s" style strings or a JSON number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}
