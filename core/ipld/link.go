package ipld

import (
	gocid "github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"

	"github.com/dagucan/dagucan/core/ipld/codec"
	"github.com/dagucan/dagucan/core/ipld/hash"
)

// LinkCid returns the underlying CID of a link, or false if the link is not
// backed by one (this library only ever produces cidlink.Link values).
func LinkCid(l Link) (gocid.Cid, bool) {
	cl, ok := l.(cidlink.Link)
	if !ok {
		return gocid.Cid{}, false
	}
	return cl.Cid, true
}

// LinkFromCid wraps a CID into a Link.
func LinkFromCid(c gocid.Cid) Link {
	return cidlink.Link{Cid: c}
}

// MintLink computes a CIDv1 link for the given bytes, tagged with the block
// codec and hashed with the given hasher.
func MintLink(blockCodec uint64, hasher hash.Hasher, data []byte) (Link, error) {
	digest, err := hasher.Sum(data)
	if err != nil {
		return nil, err
	}
	c := gocid.NewCidV1(blockCodec, digest.Bytes())
	return cidlink.Link{Cid: c}, nil
}

// EncodeBlock encodes a node with the given codec, hashes the resulting
// bytes and returns the resulting Block.
func EncodeBlock(n Node, enc codec.Encoder, hasher hash.Hasher) (Block, error) {
	data, err := enc.Encode(n)
	if err != nil {
		return nil, err
	}
	link, err := MintLink(enc.Code(), hasher, data)
	if err != nil {
		return nil, err
	}
	return NewBlock(link, data), nil
}
