// Package chainstream expands a finite seed into an unbounded,
// reproducible byte sequence by walking a hash chain forward: the first
// block is H(seed), every following block is H of the previous block,
// and output is the concatenation of the blocks.
//
// The walk is anchored only at the seed, so the stream is deterministic
// and prefix-stable, but not seekable and not parallelizable. Each
// Stream owns its chain state exclusively; memory stays bounded by the
// digest size regardless of how much output is consumed.
package chainstream

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/rdgen-io/rdgen/pkg/hasher"
)

// Stream is an io.Reader over the infinite chain. Read never fails and
// always fills the whole buffer; cap it with Limit to obtain a finite
// view. A Stream is not safe for concurrent use and cannot be rewound;
// restarting from position zero means building a new Stream from the
// same seed.
type Stream struct {
	primitive hasher.Primitive

	// state holds the last produced block, or the seed before the
	// first block is produced. The next block is always the digest of
	// the whole state, never of a truncated tail.
	state []byte

	// rest is the unread remainder of the current block.
	rest []byte
}

// New returns a Stream anchored at seed. The seed may be empty; it is
// copied and never mutated. Two Streams built from equal seeds and the
// same primitive produce identical output.
func New(p hasher.Primitive, seed []byte) *Stream {
	state := make([]byte, len(seed))
	copy(state, seed)
	return &Stream{primitive: p, state: state}
}

// NewFromReader returns a Stream anchored at the bytes of r, absorbed
// incrementally so seeds of any size can be used. The resulting stream
// is identical to New with the same bytes in memory.
func NewFromReader(p hasher.Primitive, r io.Reader) (*Stream, error) {
	first, err := hasher.SumReader(p, r)
	if err != nil {
		return nil, errors.Wrap(err, "absorbing seed stream")
	}
	// first already is the first block of the chain.
	return &Stream{primitive: p, state: first, rest: first}, nil
}

// Primitive reports the hash primitive driving the chain.
func (s *Stream) Primitive() hasher.Primitive {
	return s.primitive
}

// Read fills p entirely with the next len(p) bytes of the stream. It
// computes only as many blocks as needed and the final block of a
// bounded consumer is truncated, never rehashed or padded. The returned
// error is always nil.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.rest) == 0 {
			s.state = s.primitive.Sum(s.state)
			s.rest = s.state
		}
		c := copy(p[n:], s.rest)
		s.rest = s.rest[c:]
		n += c
	}
	return n, nil
}

// Limit returns a reader that yields exactly n bytes of the stream and
// then io.EOF. n must be non-negative. With n = 0 the hash primitive is
// never invoked.
func (s *Stream) Limit(n int64) io.Reader {
	return io.LimitReader(s, n)
}

// Generate materializes the first n bytes of the chain anchored at
// seed. It rejects negative lengths before any hashing occurs.
func Generate(p hasher.Primitive, seed []byte, n int64) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("length must be non-negative, got %d", n)
	}
	out := make([]byte, n)
	if n > 0 {
		// Stream.Read cannot fail or come up short.
		New(p, seed).Read(out)
	}
	return out, nil
}
