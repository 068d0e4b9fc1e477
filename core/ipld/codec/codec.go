// Package codec defines the Encoder/Decoder capability used to turn a Node
// into block bytes and back, independent of which wire format is chosen.
package codec

import "github.com/ipld/go-ipld-prime/datamodel"

type Encoder interface {
	Code() uint64
	Encode(n datamodel.Node) ([]byte, error)
}

type Decoder interface {
	Code() uint64
	Decode(b []byte) (datamodel.Node, error)
}

type Codec interface {
	Encoder
	Decoder
}
