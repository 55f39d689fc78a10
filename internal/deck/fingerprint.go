package deck

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a BLAKE3 hash of card content in the given order.
// IDs are not hashed; they are derived from position anyway.
func Fingerprint(cards []Card) string {
	h := blake3.New()
	for _, c := range cards {
		h.Write([]byte(c.SideA))
		h.Write([]byte{0})
		h.Write([]byte(c.SideB))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortFingerprint trims a fingerprint for display.
func ShortFingerprint(fp string) string {
	if len(fp) > 8 {
		return fp[:8]
	}
	return fp
}
