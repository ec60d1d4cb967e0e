package keygen

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/sqids/sqids-go"
)

const (
	apiKeyMinLength = 32
	apiKeyWords     = 4
)

// APIKeys issues opaque alphanumeric credentials. Each key encodes 256 random
// bits; sqids keeps the alphabet URL-safe and filters its blocklist.
type APIKeys struct {
	sqids *sqids.Sqids
}

func NewAPIKeys() (*APIKeys, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: apiKeyMinLength,
	})
	if err != nil {
		return nil, err
	}
	return &APIKeys{sqids: s}, nil
}

func (a *APIKeys) Generate() (string, error) {
	var buf [apiKeyWords * 8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}

	words := make([]uint64, apiKeyWords)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return a.sqids.Encode(words)
}
