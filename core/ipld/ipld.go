// Package ipld carries the small set of IPLD primitives the codec needs:
// node construction helpers, block/link types and the hashers used to mint
// CIDs. It deliberately works with go-ipld-prime's datamodel.Node directly
// rather than through schema-generated bindings, since the UCAN model has
// field-presence rules (omit-if-empty, nullable-but-present) that are easier
// to get right by hand than to express in the IPLD schema DSL.
package ipld

import (
	"github.com/ipld/go-ipld-prime/datamodel"
)

// Node is an IPLD data model node.
type Node = datamodel.Node

// NodeBuilder assembles a Node from primitive assembly calls.
type NodeBuilder = datamodel.NodeBuilder

// Link is a content-addressed link to an IPLD block.
type Link = datamodel.Link

// Builder is implemented by types that know how to represent themselves as
// an IPLD node, e.g. for signing payloads or CBOR encoding.
type Builder interface {
	ToIPLD() (Node, error)
}

// Block pairs a Link with the exact bytes it addresses.
type Block interface {
	Link() Link
	Bytes() []byte
}

type block struct {
	link  Link
	bytes []byte
}

func (b *block) Link() Link    { return b.link }
func (b *block) Bytes() []byte { return b.bytes }

// NewBlock wraps a link and its bytes into a Block. The caller is
// responsible for the link actually being the hash of the bytes.
func NewBlock(link Link, bytes []byte) Block {
	return &block{link, bytes}
}
