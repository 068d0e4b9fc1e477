// Package cbor implements the DAG-CBOR codec: deterministic CBOR with
// canonical map key ordering, used for the canonical on-wire representation
// of a UCAN and for CID computation.
package cbor

import (
	"bytes"

	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/multiformats/go-multicodec"

	"github.com/dagucan/dagucan/core/ipld"
)

// Code is the multicodec code for DAG-CBOR.
const Code = uint64(multicodec.DagCbor)

type codec struct{}

func (codec) Code() uint64 { return Code }

func (c codec) Encode(n ipld.Node) ([]byte, error) { return Encode(n) }

func (c codec) Decode(b []byte) (ipld.Node, error) { return Decode(b) }

// Codec is the DAG-CBOR ipld/codec.Codec implementation.
var Codec = codec{}

// Encode serializes a node as DAG-CBOR.
func Encode(n ipld.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := dagcbor.Encode(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses DAG-CBOR bytes into a node.
func Decode(b []byte) (ipld.Node, error) {
	np := basicnode.Prototype.Any
	nb := np.NewBuilder()
	if err := dagcbor.Decode(nb, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return nb.Build(), nil
}
