// Package identity implements the identity multihash, used to inline a
// proof's bytes directly into its own CID rather than hashing them.
package identity

import (
	"github.com/dagucan/dagucan/core/ipld/hash"
	"github.com/multiformats/go-multihash"
)

// Identity multihash function code.
const Code = 0x00

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Sum(b []byte) (hash.Digest, error) {
	d, err := multihash.Encode(b, Code)
	if err != nil {
		return nil, err
	}
	return hash.NewDigest(Code, uint64(len(b)), b, d), nil
}

// Hasher is the identity Hasher: its digest is the input bytes, unmodified.
var Hasher = hasher{}
