package loginwidget

import (
	"encoding/hex"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/common"
	"github.com/dmitrijs2005/loginwidget/internal/cryptox"
)

// Authenticator checks widget payloads signed with one bot token.
//
// It is safe for concurrent use, including Close: a check that starts after
// Close returns common.ErrClosed, and Close waits for running checks.
type Authenticator struct {
	mu     sync.RWMutex
	key    [cryptox.KeySize]byte
	closed bool
	offset atomic.Int64
	now    func() time.Time
}

// New derives the signing key from token and returns an Authenticator with
// a freshness window of DefaultAllowedTimeOffset.
func New(token string, opts ...Option) (*Authenticator, error) {
	if token == "" {
		return nil, common.ErrEmptyToken
	}

	a := &Authenticator{
		key: cryptox.DeriveKey(token),
		now: time.Now,
	}
	a.offset.Store(int64(DefaultAllowedTimeOffset))

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AllowedTimeOffset returns the current freshness window.
func (a *Authenticator) AllowedTimeOffset() time.Duration {
	return time.Duration(a.offset.Load())
}

// SetAllowedTimeOffset changes the freshness window. It is read on every
// check and only whole seconds are significant. A negative offset rejects
// every payload as TooOld.
func (a *Authenticator) SetAllowedTimeOffset(d time.Duration) {
	a.offset.Store(int64(d))
}

// CheckAuthorization validates fields and reports the outcome.
//
// Problems with the payload are reported through the returned Authorization
// and a nil error. An error is returned only for a nil field set
// (common.ErrNilFields) or a closed Authenticator (common.ErrClosed).
// fields is not modified.
func (a *Authenticator) CheckAuthorization(fields Fields) (Authorization, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return InvalidHash, common.ErrClosed
	}
	if fields == nil {
		return InvalidHash, common.ErrNilFields
	}

	if len(fields) < minFields {
		return MissingFields, nil
	}

	_, hasID := fields[FieldID]
	authDate, hasAuthDate := fields[FieldAuthDate]
	hash, hasHash := fields[FieldHash]
	if !hasID || !hasAuthDate || !hasHash {
		return MissingFields, nil
	}

	if len(hash) != cryptox.HexSize {
		return InvalidHash, nil
	}

	ts, ok := parseAuthDate(authDate)
	if !ok {
		return InvalidAuthDateFormat, nil
	}

	if !a.fresh(ts) {
		return TooOld, nil
	}

	sig := cryptox.Sign(a.key[:], []byte(fields.DataCheckString()))
	if !cryptox.HexEqual(hash, sig) {
		return InvalidHash, nil
	}

	return Valid, nil
}

// Sign returns the hex signature the widget would attach to fields. Any hash
// field present is ignored.
func (a *Authenticator) Sign(fields Fields) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return "", common.ErrClosed
	}
	if fields == nil {
		return "", common.ErrNilFields
	}

	sig := cryptox.Sign(a.key[:], []byte(fields.DataCheckString()))
	return hex.EncodeToString(sig), nil
}

// Close wipes the signing key. Subsequent calls return common.ErrClosed.
// Calling Close more than once is a no-op.
func (a *Authenticator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	cryptox.Wipe(a.key[:])
	return nil
}

// fresh reports whether |now - ts| is within the allowed offset, both
// measured in whole seconds. The difference is taken in uint64 so that
// timestamps near the int64 limits cannot overflow.
func (a *Authenticator) fresh(ts int64) bool {
	limit := a.AllowedTimeOffset() / time.Second
	if limit < 0 {
		return false
	}

	now := a.now().Unix()
	var diff uint64
	if now >= ts {
		diff = uint64(now) - uint64(ts)
	} else {
		diff = uint64(ts) - uint64(now)
	}
	return diff <= uint64(limit)
}

// parseAuthDate accepts an optionally signed base-10 integer surrounded by
// ASCII white space. Values outside the int64 range are rejected.
func parseAuthDate(s string) (int64, bool) {
	s = strings.Trim(s, " \t\n\v\f\r")
	if s == "" {
		return 0, false
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}
