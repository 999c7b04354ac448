// internal/daily/daily.go
//
// Date and seed helpers shared by board generation and the HTTP layer.
// Responsibilities:
//   - Canonical UTC date keys (YYYY-MM-DD) and validation of client-supplied dates.
//   - The "{date}|{salt}" seed string that drives board generation.
//   - A keyed digest of the seed, stored alongside boards without exposing the salt.
//   - Salt resolution with a development fallback.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// DevSalt is used when no daily salt is configured.
const DevSalt = "dev-salt"

const layout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(layout)
}

// NormalizeDate trims s and returns it if it is a real YYYY-MM-DD calendar date.
// ok is false for empty or malformed input.
func NormalizeDate(s string) (date string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) != len(layout) {
		return "", false
	}
	if _, err := time.Parse(layout, s); err != nil {
		return "", false
	}
	return s, true
}

// ResolveDate returns the normalized param, or today's key (per now) when the
// param is missing or malformed.
func ResolveDate(param string, now time.Time) string {
	if d, ok := NormalizeDate(param); ok {
		return d
	}
	return DateKey(now)
}

// Seed builds the generator seed for a date and salt.
func Seed(date, salt string) string {
	return date + "|" + salt
}

// SeedDigest returns hex(HMAC-SHA256(salt, date)) for persistence alongside a board.
func SeedDigest(date, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(date))
	return hex.EncodeToString(h.Sum(nil))
}

// ResolveSalt trims raw and falls back to DevSalt.
// configured reports whether a real salt was supplied.
func ResolveSalt(raw string) (salt string, configured bool) {
	if s := strings.TrimSpace(raw); s != "" {
		return s, true
	}
	return DevSalt, false
}
