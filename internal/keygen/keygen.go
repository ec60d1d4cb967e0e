package keygen

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"shortlink/internal/domain"
)

const (
	DefaultSegmentLength = 8
	alphabet             = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var ErrInvalidSegmentLength = errors.New("segment length must be positive")

var alphabetSize = big.NewInt(int64(len(alphabet)))

// Generator produces pool keys of the form "<public>_<private>". The public
// segment becomes the short key, the whole value the secret key.
type Generator struct {
	segmentLength int
}

func New(segmentLength int) (*Generator, error) {
	if segmentLength <= 0 {
		return nil, ErrInvalidSegmentLength
	}
	return &Generator{segmentLength: segmentLength}, nil
}

func (g *Generator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(2*g.segmentLength + len(domain.KeySeparator))

	if err := g.writeSegment(&sb); err != nil {
		return "", err
	}
	sb.WriteString(domain.KeySeparator)
	if err := g.writeSegment(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) SegmentLength() int {
	return g.segmentLength
}

func (g *Generator) writeSegment(sb *strings.Builder) error {
	for range g.segmentLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return err
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return nil
}
