package ucan

import (
	"encoding/base64"
	"fmt"
	"strings"

	gocid "github.com/ipfs/go-cid"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/core/ipld/codec/json"
	"github.com/dagucan/dagucan/core/ipld/hash/identity"
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
	"github.com/dagucan/dagucan/ucan/datamodel"
	"github.com/dagucan/dagucan/ucan/schema"
)

// parseJWT splits, decodes and validates a JWT-formatted token string,
// returning the DAG-CBOR envelope it corresponds to. The returned model has
// not yet been checked for canonical round-tripping; that decision belongs
// to Parse.
func parseJWT(jwt string) (*datamodel.UCANModel, error) {
	segments := strings.Split(jwt, ".")
	if len(segments) != 3 {
		return nil, schema.NewParseError("", "invalid JWT: expected 3 segments, got %d", len(segments))
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(segments[0])
	if err != nil {
		return nil, schema.NewParseError("", "decoding header segment: %s", err)
	}
	payloadBytes, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, schema.NewParseError("", "decoding payload segment: %s", err)
	}
	sigBytes, err := base64.RawURLEncoding.DecodeString(segments[2])
	if err != nil {
		return nil, schema.NewParseError("", "decoding signature segment: %s", err)
	}

	headerNode, err := json.Decode(headerBytes)
	if err != nil {
		return nil, schema.NewParseError("", "parsing header JSON: %s", err)
	}
	header, err := datamodel.HeaderFromIPLD(headerNode)
	if err != nil {
		return nil, schema.NewParseError("", "reading header: %s", err)
	}
	if header.Typ != "JWT" {
		return nil, schema.NewParseError("typ", "header has invalid type %q, expected \"JWT\"", header.Typ)
	}
	if err := schema.ValidateVersion(header.Ucv); err != nil {
		return nil, err
	}
	if _, ok := signature.NameCode(header.Alg); !ok {
		return nil, schema.NewParseError("alg", "Header has invalid algorithm %q", header.Alg)
	}

	payloadNode, err := json.Decode(payloadBytes)
	if err != nil {
		return nil, schema.NewParseError("", "parsing payload JSON: %s", err)
	}
	payload, err := datamodel.PayloadFromIPLD(payloadNode)
	if err != nil {
		return nil, schema.NewParseError("", "reading payload: %s", err)
	}
	payload.Att = schema.NormalizeCapabilities(payload.Att)
	if err := schema.ValidatePayload(payload); err != nil {
		return nil, err
	}

	iss, err := did.Parse(payload.Iss)
	if err != nil {
		return nil, schema.NewParseError("iss", "%s", err)
	}
	aud, err := did.Parse(payload.Aud)
	if err != nil {
		return nil, schema.NewParseError("aud", "%s", err)
	}

	prf := make([]ipld.Link, 0, len(payload.Prf))
	for i, s := range payload.Prf {
		link, err := parseProofLink(s)
		if err != nil {
			return nil, schema.NewParseError(fmt.Sprintf("prf[%d]", i), "%s", err)
		}
		prf = append(prf, link)
	}

	sig := signature.NewNamed(header.Alg, sigBytes)

	return &datamodel.UCANModel{
		V:   header.Ucv,
		Iss: iss.Bytes(),
		Aud: aud.Bytes(),
		S:   sig.Bytes(),
		Att: payload.Att,
		Prf: prf,
		Exp: payload.Exp,
		Fct: payload.Fct,
		Nnc: payload.Nnc,
		Nbf: payload.Nbf,
	}, nil
}

// parseProofLink parses s as a CID; if that fails, it is treated as an
// inlined proof and wrapped as a CIDv1 RAW+identity link whose digest is
// the UTF-8 bytes of s.
func parseProofLink(s string) (ipld.Link, error) {
	if c, err := gocid.Decode(s); err == nil {
		return ipld.LinkFromCid(c), nil
	}
	return ipld.MintLink(gocid.Raw, identity.Hasher, []byte(s))
}
