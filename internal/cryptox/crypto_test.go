package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_IsSHA256OfToken(t *testing.T) {
	want := sha256.Sum256([]byte("test-token"))
	got := DeriveKey("test-token")
	assert.Equal(t, want, got)
	assert.Len(t, got, KeySize)
}

func TestSign_MatchesHMAC(t *testing.T) {
	key := DeriveKey("k")
	msg := []byte("auth_date=1\nid=2")

	mac := hmac.New(sha256.New, key[:])
	mac.Write(msg)

	assert.Equal(t, mac.Sum(nil), Sign(key[:], msg))
	assert.Equal(t, Sign(key[:], msg), Sign(key[:], msg), "signing must be deterministic")
}

func TestHexDigit_AllNibbles(t *testing.T) {
	const digits = "0123456789abcdef"
	for n := 0; n < 16; n++ {
		assert.Equal(t, int(digits[n]), hexDigit(n), "nibble %d", n)
	}
}

func TestHexEqual(t *testing.T) {
	key := DeriveKey("secret")
	digest := Sign(key[:], []byte("payload"))
	good := hex.EncodeToString(digest)
	require.Len(t, good, HexSize)

	flipLast := good[:HexSize-1] + string(other(good[HexSize-1]))
	flipFirst := string(other(good[0])) + good[1:]

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"exact", good, true},
		{"uppercase rejected", strings.ToUpper(good), good == strings.ToUpper(good)},
		{"first char differs", flipFirst, false},
		{"last char differs", flipLast, false},
		{"too short", good[:HexSize-2], false},
		{"too long", good + "00", false},
		{"empty", "", false},
		{"non hex", strings.Repeat("z", HexSize), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HexEqual(tc.in, digest))
		})
	}
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Wipe(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)

	Wipe(nil)
}

func other(c byte) byte {
	if c == '0' {
		return '1'
	}
	return '0'
}
