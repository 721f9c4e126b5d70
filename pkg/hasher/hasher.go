// Package hasher pins the hash primitives available to the chain
// generator and provides helpers for hashing in-memory and streamed
// inputs.
package hasher

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"
)

// DefaultName is the compatibility default primitive. Every stream ever
// generated with it stays reproducible only as long as this stays
// pinned; switching the default changes all outputs.
const DefaultName = "blake2b-512"

// seedChunkSize is the read-buffer size used when absorbing a seed from
// a stream of unknown length.
const seedChunkSize = 4 << 10 // 4 KiB

// Primitive is a deterministic fixed-output-size hash function. Sum is
// the one-shot form; New returns an incremental hasher producing the
// same digest, used to absorb seeds too large to hold in memory.
type Primitive interface {
	Name() string
	Size() int
	Sum(msg []byte) []byte
	New() hash.Hash
}

type blake2b512 struct{}

func (blake2b512) Name() string { return "blake2b-512" }
func (blake2b512) Size() int    { return blake2b.Size }

func (blake2b512) Sum(msg []byte) []byte {
	sum := blake2b.Sum512(msg)
	return sum[:]
}

func (blake2b512) New() hash.Hash {
	// New512 only fails for oversized keys; unkeyed cannot fail.
	h, _ := blake2b.New512(nil)
	return h
}

type blake3x512 struct{}

func (blake3x512) Name() string { return "blake3-512" }
func (blake3x512) Size() int    { return 64 }

func (blake3x512) Sum(msg []byte) []byte {
	sum := blake3.Sum512(msg)
	return sum[:]
}

func (blake3x512) New() hash.Hash {
	return blake3.New(64, nil)
}

// Default returns the pinned compatibility primitive.
func Default() Primitive {
	return blake2b512{}
}

// Lookup resolves a primitive by name. The empty string resolves to the
// default.
func Lookup(name string) (Primitive, error) {
	switch name {
	case "", DefaultName:
		return blake2b512{}, nil
	case "blake3-512":
		return blake3x512{}, nil
	default:
		return nil, fmt.Errorf("unknown hash primitive %q", name)
	}
}

// Names lists the selectable primitive names, default first.
func Names() []string {
	return []string{DefaultName, "blake3-512"}
}

// SumReader absorbs r to exhaustion using a manual buffered read loop
// and returns its digest. Equivalent to p.Sum over the concatenated
// bytes of r, but memory stays bounded by the chunk size.
func SumReader(p Primitive, r io.Reader) ([]byte, error) {
	h := p.New()
	buf := make([]byte, seedChunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return nil, werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
	}
	return h.Sum(nil), nil
}

// SumHex returns the hex-encoded digest of msg.
func SumHex(p Primitive, msg []byte) string {
	return hex.EncodeToString(p.Sum(msg))
}
