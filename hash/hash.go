// Package hash provides the blake3 hashing primitives used across the node.
package hash

import "github.com/zeebo/blake3"

const (
	// Size is the size in bytes of a blake3 digest.
	Size = 32
)

// New returns an unkeyed blake3 hasher.
func New() *blake3.Hasher {
	return blake3.New()
}

// Sum computes the blake3 sum of the concatenated chunks.
func Sum(chunks ...[]byte) (result [Size]byte) {
	hh := GetHasher()
	defer PutHasher(hh)
	for _, chunk := range chunks {
		hh.Write(chunk)
	}
	hh.Sum(result[:0])
	return result
}
