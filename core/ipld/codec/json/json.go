// Package json implements the DAG-JSON codec, used to derive the exact
// base64url segments of a UCAN's JWT representation.
package json

import (
	"bytes"
	"encoding/base64"
	stdjson "encoding/json"
	"fmt"

	"github.com/ipld/go-ipld-prime/codec/dagjson"
	dmk "github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/multiformats/go-multicodec"

	"github.com/dagucan/dagucan/core/ipld"
)

// Code is the multicodec code for DAG-JSON.
const Code = uint64(multicodec.DagJson)

type codec struct{}

func (codec) Code() uint64 { return Code }

func (c codec) Encode(n ipld.Node) ([]byte, error) { return Encode(n) }

func (c codec) Decode(b []byte) (ipld.Node, error) { return Decode(b) }

// Codec is the DAG-JSON ipld/codec.Codec implementation.
var Codec = codec{}

// Encode serializes a node as DAG-JSON with no insignificant whitespace,
// preserving map keys in the order they were assembled (see ipld.MapEntry).
// dagjson.Encode is not used here: it applies MapSortMode_Lexical
// unconditionally, which would re-sort the UCAN header/payload's
// spec-mandated field order and change the bytes a signature is computed
// over.
func Encode(n ipld.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, n ipld.Node) error {
	switch n.Kind() {
	case dmk.Kind_Null:
		buf.WriteString("null")
		return nil
	case dmk.Kind_Bool:
		v, err := n.AsBool()
		if err != nil {
			return err
		}
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case dmk.Kind_Int:
		v, err := n.AsInt()
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%d", v)
		return nil
	case dmk.Kind_Float:
		v, err := n.AsFloat()
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%g", v)
		return nil
	case dmk.Kind_String:
		v, err := n.AsString()
		if err != nil {
			return err
		}
		return encodeString(buf, v)
	case dmk.Kind_Bytes:
		v, err := n.AsBytes()
		if err != nil {
			return err
		}
		buf.WriteString(`{"/":{"bytes":"`)
		buf.WriteString(base64.RawStdEncoding.EncodeToString(v))
		buf.WriteString(`"}}`)
		return nil
	case dmk.Kind_Link:
		l, err := n.AsLink()
		if err != nil {
			return err
		}
		buf.WriteString(`{"/":`)
		if err := encodeString(buf, l.String()); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	case dmk.Kind_List:
		buf.WriteByte('[')
		it := n.ListIterator()
		for first := true; !it.Done(); first = false {
			_, v, err := it.Next()
			if err != nil {
				return err
			}
			if !first {
				buf.WriteByte(',')
			}
			if err := encodeNode(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case dmk.Kind_Map:
		buf.WriteByte('{')
		it := n.MapIterator()
		for first := true; !it.Done(); first = false {
			k, v, err := it.Next()
			if err != nil {
				return err
			}
			ks, err := k.AsString()
			if err != nil {
				return err
			}
			if !first {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, ks); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeNode(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("json: unsupported node kind: %s", n.Kind())
	}
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := stdjson.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// Decode parses DAG-JSON (or plain JSON) bytes into a node. Key order does
// not matter for decoding: every caller looks fields up by name, so this
// still delegates to dagjson.Decode.
func Decode(b []byte) (ipld.Node, error) {
	np := basicnode.Prototype.Any
	nb := np.NewBuilder()
	if err := dagjson.Decode(nb, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return nb.Build(), nil
}
