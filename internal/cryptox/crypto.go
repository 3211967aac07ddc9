// Package cryptox holds the primitives used to verify login widget payloads:
// key derivation from a bot token, HMAC-SHA256 signing and a hex comparison
// that does not exit early on the first differing character.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
)

// KeySize is the length of a derived signing key and of a signature digest.
const KeySize = sha256.Size

// HexSize is the length of a hex-encoded signature.
const HexSize = KeySize * 2

// DeriveKey returns SHA256(token), the secret the widget uses as HMAC key.
func DeriveKey(token string) [KeySize]byte {
	return sha256.Sum256([]byte(token))
}

// Sign computes HMAC-SHA256 of msg under key.
//
// A new MAC is created for every call, so Sign is safe for concurrent use
// with the same key.
func Sign(key []byte, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// HexEqual reports whether s is the lowercase hex encoding of digest.
//
// Every character of s is compared against the expected hex digit of the
// corresponding nibble (high nibble first) and the differences are
// accumulated, so the running time does not depend on the position of the
// first mismatch. The expected digit is computed without branching:
// nibbles 0-9 map to '0'-'9' and 10-15 to 'a'-'f'.
//
// Only the lengths are compared up front; they are not secret.
func HexEqual(s string, digest []byte) bool {
	if len(s) != len(digest)*2 {
		return false
	}

	var diff int
	for i, b := range digest {
		hi := int(b >> 4)
		lo := int(b & 0x0f)
		diff |= int(s[i*2]) ^ hexDigit(hi)
		diff |= int(s[i*2+1]) ^ hexDigit(lo)
	}
	return diff == 0
}

// hexDigit maps a nibble to its lowercase ASCII hex digit.
// For n < 10 the shifted term is all ones and 87+n-39 = '0'+n;
// otherwise it is zero and 87+n = 'a'+n-10.
func hexDigit(n int) int {
	return 87 + n + (((n - 10) >> 31) & -39)
}

// Wipe overwrites b with zeros. A nil slice is left alone.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
