package field

import (
	"fmt"
	"io"

	"github.com/mpcith/banquet/utils/sampling"
)

// UniformSampler samples uniformly distributed field elements from a PRNG.
// Since the field has exactly 2^k elements, k uniform bits give a uniform
// element without rejection.
type UniformSampler struct {
	f    *Field
	prng sampling.PRNG
}

// NewUniformSampler returns a UniformSampler drawing elements of f from prng.
func NewUniformSampler(prng sampling.PRNG, f *Field) *UniformSampler {
	return &UniformSampler{f: f, prng: prng}
}

// Read returns a uniform element.
func (s *UniformSampler) Read() (Element, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.prng, buf[:s.f.ByteSize()]); err != nil {
		return Zero, fmt.Errorf("io.ReadFull: %w", err)
	}
	return s.f.decodeElement(buf[:]), nil
}

// ReadVector returns n uniform elements.
func (s *UniformSampler) ReadVector(n int) ([]Element, error) {
	size := s.f.ByteSize()
	buf := make([]byte, n*size)
	if _, err := io.ReadFull(s.prng, buf); err != nil {
		return nil, fmt.Errorf("io.ReadFull: %w", err)
	}
	v := make([]Element, n)
	for i := range v {
		v[i] = s.f.decodeElement(buf[i*size:])
	}
	return v, nil
}
