package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Generator creates opaque identifiers such as session tokens.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns URL-safe tokens of Size random bytes.
type RandomGenerator struct {
	Size int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Size: 24}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := g.Size
	if size <= 0 {
		size = 24
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
