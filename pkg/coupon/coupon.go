package coupon

import (
	"crypto/rand"
	"fmt"
	"io"
)

// charset is the alphabet coupon codes are drawn from. Codes are presented
// to merchants, so the alphabet avoids lowercase and punctuation.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the fixed length of a generated coupon code.
const Length = 8

// Generator produces short random coupon codes. The generator is stateless
// and does not guarantee uniqueness; uniqueness is enforced at the storage
// layer by the coupon-code registry's conditional write.
type Generator interface {
	Generate() (string, error)
}

// maxUnbiasedByte is the largest multiple of len(charset) that fits in a
// byte. Random bytes at or above it are discarded so that reducing modulo
// the charset does not favor the first few characters.
const maxUnbiasedByte = 256 - 256%len(charset)

// RandomGenerator implements Generator with crypto/rand.
type RandomGenerator struct {
	source io.Reader
}

// NewRandomGenerator creates a new RandomGenerator.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{source: rand.Reader}
}

// Make sure we conform to the interface
var _ Generator = (*RandomGenerator)(nil)

// Generate returns an 8-character code matching ^[A-Z0-9]{8}$ with every
// character drawn uniformly from the alphabet.
func (g *RandomGenerator) Generate() (string, error) {
	code := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(code) < Length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes for coupon code: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			code = append(code, charset[int(b)%len(charset)])
			if len(code) == Length {
				break
			}
		}
	}
	return string(code), nil
}
