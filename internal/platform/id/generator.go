package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const DefaultSize = 16

// Generator creates opaque tokens that are safe to hand to clients.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex encoded random tokens of Size bytes.
type RandomGenerator struct {
	Size int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Size: DefaultSize}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
