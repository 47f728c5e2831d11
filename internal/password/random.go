package password

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"golang.org/x/crypto/argon2"
)

var ErrEmptyRange = errors.New("random range must be positive")

// Source supplies uniform random integers to the generator.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) (int, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(n int) (int, error)

func (f SourceFunc) IntN(n int) (int, error) { return f(n) }

type secureSource struct{}

// SecureSource returns a Source backed by crypto/rand.
func SecureSource() Source {
	return secureSource{}
}

func (secureSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

type mathSource struct{}

// MathSource returns a Source backed by the general-purpose math/rand/v2
// generator. It is fast but not suitable where passwords must resist an
// attacker who can observe other outputs.
func MathSource() Source {
	return mathSource{}
}

func (mathSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	return mrand.IntN(n), nil
}

// lockedSource serialises access to a seeded generator.
type lockedSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// SeededSource returns a deterministic Source. The same seed always yields
// the same sequence.
func SeededSource(seed [32]byte) Source {
	return &lockedSource{r: mrand.New(mrand.NewChaCha8(seed))}
}

func (s *lockedSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n), nil
}

// seedSalt is fixed so a phrase maps to the same seed everywhere.
var seedSalt = []byte("passgen/seed/v1")

// PhraseSource returns a deterministic Source seeded from an argon2id
// derivation of phrase.
func PhraseSource(phrase string) Source {
	return SeededSource(DeriveSeed(phrase))
}

// DeriveSeed stretches phrase into a 32 byte seed.
func DeriveSeed(phrase string) [32]byte {
	var seed [32]byte
	key := argon2.IDKey([]byte(phrase), seedSalt, 1, 19*1024, 1, uint32(len(seed)))
	copy(seed[:], key)
	return seed
}
