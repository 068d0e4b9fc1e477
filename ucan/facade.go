package ucan

import (
	"fmt"

	"github.com/multiformats/go-multicodec"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/core/ipld/codec/cbor"
	"github.com/dagucan/dagucan/core/ipld/hash"
	"github.com/dagucan/dagucan/core/ipld/hash/sha256"
	"github.com/dagucan/dagucan/ucan/datamodel"
	"github.com/dagucan/dagucan/ucan/formatter"
	"github.com/dagucan/dagucan/ucan/schema"
)

// Name identifies this codec.
const Name = "dag-ucan"

// VERSION is the UCAN spec version this library issues.
const VERSION = version

// Code is the multicodec used for the CBOR-view representation's link.
const Code = cbor.Code

// rawCode is the multicodec used for the JWT-view representation's link,
// the same block codec used to tag an inlined proof.
const rawCode = uint64(multicodec.Raw)

// Parse decodes a JWT-formatted token string into a View. If re-emitting
// the parsed Model through the canonical JWT formatter reproduces the
// input bit-exactly, the result is a CBOR-view; otherwise the original
// bytes are retained as a JWT-view so its signature stays valid.
func Parse(jwt string) (View, error) {
	model, err := parseJWT(jwt)
	if err != nil {
		return nil, err
	}
	cborView, err := NewUCAN(model)
	if err != nil {
		return nil, err
	}
	canonical, err := Format(cborView)
	if err != nil {
		return nil, err
	}
	if canonical == jwt {
		return cborView, nil
	}
	return &ucanView{model: model, jwt: []byte(jwt)}, nil
}

// Format renders a View as a JWT string: for a JWT-view, this is exactly
// the bytes it was parsed from; for a CBOR-view, this re-derives the
// canonical JWT from the Model.
func Format(u UCAN) (string, error) {
	if v, ok := u.(*ucanView); ok && v.isJWT() {
		return string(v.jwt), nil
	}
	payload, err := payloadModel(u)
	if err != nil {
		return "", err
	}
	header := &datamodel.HeaderModel{
		Alg: u.Signature().Algorithm(),
		Ucv: u.Version(),
		Typ: "JWT",
	}
	signPayload, err := formatter.FormatSignPayload(header, payload)
	if err != nil {
		return "", err
	}
	sigSegment, err := formatter.FormatSignature(u.Signature())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s", signPayload, sigSegment), nil
}

// Encode serializes a View to bytes: DAG-CBOR for a CBOR-view, the
// retained UTF-8 JWT text for a JWT-view.
func Encode(u UCAN) ([]byte, error) {
	if v, ok := u.(*ucanView); ok {
		if v.isJWT() {
			return v.jwt, nil
		}
		node, err := v.model.ToIPLD()
		if err != nil {
			return nil, err
		}
		return cbor.Encode(node)
	}
	return nil, fmt.Errorf("encode: not a dag-ucan view")
}

// Decode parses bytes into a View. It first attempts a DAG-CBOR decode; on
// any failure it falls back to treating the bytes as a UTF-8 JWT string
// and parses via Parse, whose own round-trip test decides the final
// representation.
func Decode(b []byte) (View, error) {
	if node, err := cbor.Decode(b); err == nil {
		if model, merr := datamodel.UCANFromIPLD(node); merr == nil {
			model.Att = schema.NormalizeCapabilities(model.Att)
			if verr := schema.ValidateModel(model); verr == nil {
				return NewUCAN(model)
			}
		}
	}
	return Parse(string(b))
}

// Link computes the content-addressed link for a View's encoded form. A
// JWT-view always mints a RAW-codec link (over its retained bytes); a
// CBOR-view mints a DAG-CBOR-codec link (over its canonical encoding).
// hasher defaults to SHA-256 when not provided.
func Link(u UCAN, hasher ...hash.Hasher) (ipld.Link, error) {
	h := hash.Hasher(sha256.Hasher)
	if len(hasher) > 0 {
		h = hasher[0]
	}
	data, err := Encode(u)
	if err != nil {
		return nil, err
	}
	code := uint64(Code)
	if v, ok := u.(*ucanView); ok && v.isJWT() {
		code = rawCode
	}
	return ipld.MintLink(code, h, data)
}

// Write encodes a View and returns the resulting block: its encoded bytes
// and their content-addressed link. The block does not carry the decoded
// data; the View itself is that.
func Write(u UCAN, hasher ...hash.Hasher) (ipld.Block, error) {
	data, err := Encode(u)
	if err != nil {
		return nil, err
	}
	link, err := Link(u, hasher...)
	if err != nil {
		return nil, err
	}
	return ipld.NewBlock(link, data), nil
}
