// Package sampling provides the byte streams from which field elements are
// sampled: the operating system CSPRNG, and a deterministic stream expanded
// from a seed so that parties sharing the seed draw the same elements.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// PRNG is a source of cryptographically secure random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system CSPRNG. It can be shared
// between goroutines.
type ThreadSafePRNG struct{}

// NewPRNG returns a ThreadSafePRNG.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills p with random bytes.
func (prng *ThreadSafePRNG) Read(p []byte) (n int, err error) {
	return rand.Read(p)
}

// KeyedPRNG expands a key into a deterministic stream with the blake2b XOF.
// Two KeyedPRNG with the same key yield the same bytes, provided each is
// read from a single goroutine: concurrent reads are safe but interleave
// the stream nondeterministically.
type KeyedPRNG struct {
	mu  sync.Mutex
	xof blake2b.XOF
}

// NewKeyedPRNG returns the KeyedPRNG expanding key, which must be at most
// 64 bytes. A nil or empty key gives a public stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("blake2b.NewXOF: %w", err)
	}
	return &KeyedPRNG{xof: xof}, nil
}

// NewSeededPRNG returns the KeyedPRNG keyed with DeriveKey(context, seed).
func NewSeededPRNG(context string, seed []byte) (*KeyedPRNG, error) {
	return NewKeyedPRNG(DeriveKey(context, seed))
}

// Read fills p with the next bytes of the stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(p)
}

// DeriveKey hashes context and seed into a KeySize-byte key with blake3.
// Distinct contexts give independent keys for the same seed.
func DeriveKey(context string, seed []byte) []byte {
	h := blake3.New()
	h.Write([]byte(context))
	h.Write([]byte{0})
	h.Write(seed)
	return h.Sum(nil)[:KeySize]
}
