// Package formatter renders the JWT-compatible byte encoding of a UCAN's
// header and payload: DAG-JSON, base64url, dot-joined. This is the exact
// byte string a UCAN's signature is computed over, so it must be
// deterministic in field order regardless of what a decoder later does with
// the data.
package formatter

import (
	"encoding/base64"
	"fmt"

	"github.com/dagucan/dagucan/core/ipld/codec/json"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
	"github.com/dagucan/dagucan/ucan/datamodel"
)

// FormatSignPayload renders the `header.payload` string a UCAN's signature
// is computed over.
func FormatSignPayload(header *datamodel.HeaderModel, payload *datamodel.PayloadModel) (string, error) {
	hdr, err := FormatHeader(header)
	if err != nil {
		return "", fmt.Errorf("formatting header: %s", err)
	}
	pld, err := FormatPayload(payload)
	if err != nil {
		return "", fmt.Errorf("formatting payload: %s", err)
	}
	return fmt.Sprintf("%s.%s", hdr, pld), nil
}

// FormatHeader renders the base64url DAG-JSON encoding of a UCAN header.
func FormatHeader(header *datamodel.HeaderModel) (string, error) {
	node, err := header.ToIPLD()
	if err != nil {
		return "", fmt.Errorf("building header node: %s", err)
	}
	bytes, err := json.Encode(node)
	if err != nil {
		return "", fmt.Errorf("dag-json encoding header: %s", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// FormatPayload renders the base64url DAG-JSON encoding of a UCAN payload.
func FormatPayload(payload *datamodel.PayloadModel) (string, error) {
	node, err := payload.ToIPLD()
	if err != nil {
		return "", fmt.Errorf("building payload node: %s", err)
	}
	bytes, err := json.Encode(node)
	if err != nil {
		return "", fmt.Errorf("dag-json encoding payload: %s", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// FormatSignature renders the base64url encoding of a raw signature, the
// third segment of a JWT-formatted UCAN.
func FormatSignature(s signature.Signature) (string, error) {
	return base64.RawURLEncoding.EncodeToString(s.Raw()), nil
}
