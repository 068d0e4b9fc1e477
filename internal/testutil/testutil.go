// Package testutil holds small helpers shared across this module's test
// suites: panicking constructor unwrapping and random fixture generation.
package testutil

import (
	crand "crypto/rand"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multihash"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// RandomBytes returns size cryptographically random bytes.
func RandomBytes(size int) []byte {
	b := make([]byte, size)
	_, _ = crand.Read(b)
	return b
}

// RandomCID returns a random CIDv1 raw+sha256 link, useful as a stand-in
// proof link in tests that don't care about its content.
func RandomCID() datamodel.Link {
	b := RandomBytes(10)
	c, _ := cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   multihash.SHA2_256,
		MhLength: -1,
	}.Sum(b)
	return cidlink.Link{Cid: c}
}
