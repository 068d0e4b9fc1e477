// Package did parses and formats Decentralized Identifiers of the two forms
// a UCAN principal can take: did:key:<multicodec-tagged pubkey, base58btc>
// and generic did:<method>:<method-specific-id>.
package did

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

// Key algorithm multicodec codes recognized inside did:key:.
const (
	KeyAlgEd25519    = 0xed
	KeyAlgRSA        = 0x1205
	KeyAlgP256       = 0x1200
	KeyAlgP384       = 0x1201
	KeyAlgP521       = 0x1202
	KeyAlgSECP256K1  = 0xe7
	KeyAlgBLS12381G1 = 0xea
	KeyAlgBLS12381G2 = 0xeb
)

// Code is the multicodec code prefixing the byte form of a non-key DID
// method (did:<method>:<id>).
const Code = 0x0d1d

var keyAlgorithms = map[uint64]bool{
	KeyAlgEd25519:    true,
	KeyAlgRSA:        true,
	KeyAlgP256:       true,
	KeyAlgP384:       true,
	KeyAlgP521:       true,
	KeyAlgSECP256K1:  true,
	KeyAlgBLS12381G1: true,
	KeyAlgBLS12381G2: true,
}

// maxP256Bytes bounds a did:key P-256 body to its compressed form: the 2-byte
// varint tag for 0x1200 plus a 33-byte compressed point.
const maxP256Bytes = 35

// DID is a byte-tagged principal identifier. The zero value is Undef, the
// absence of a DID. DID is comparable with ==.
type DID struct {
	// str holds the canonical tagged byte form, stashed in a string so DID
	// stays comparable.
	str string
}

// Undef is the zero DID, representing the absence of an identifier.
var Undef = DID{}

// Bytes returns the canonical tagged byte form of the DID.
func (d DID) Bytes() []byte {
	if d.str == "" {
		return nil
	}
	return []byte(d.str)
}

// DID returns the receiver, satisfying the `did() Principal` accessor
// pattern used elsewhere in this module to accept anything DID-like.
func (d DID) DID() DID {
	return d
}

// Defined reports whether this is anything other than the zero DID.
func (d DID) Defined() bool {
	return d.str != ""
}

// String formats the DID back into its did:... textual form.
func (d DID) String() string {
	if !d.Defined() {
		return ""
	}
	s, err := Format(d)
	if err != nil {
		return ""
	}
	return s
}

// MarshalJSON encodes the DID as its textual form.
func (d DID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON parses the DID from its textual form.
func (d *DID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*d = Undef
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse parses a did:... string into a DID, validating did:key: bodies
// against the supported key algorithm table.
func Parse(s string) (DID, error) {
	if !strings.HasPrefix(s, "did:") {
		return Undef, fmt.Errorf("invalid DID: expected \"did:\" prefix, got %q", s)
	}

	if strings.HasPrefix(s, "did:key:") {
		body := strings.TrimPrefix(s, "did:key:")
		_, tagged, err := multibase.Decode(body)
		if err != nil {
			return Undef, fmt.Errorf("decoding did:key body: %s", err)
		}
		code, _, err := varint.FromUvarint(tagged)
		if err != nil {
			return Undef, fmt.Errorf("reading did:key multicodec tag: %s", err)
		}
		if !keyAlgorithms[code] {
			return Undef, fmt.Errorf("unsupported did:key algorithm: 0x%x", code)
		}
		if code == KeyAlgP256 && len(tagged) > maxP256Bytes {
			return Undef, fmt.Errorf("expected P-256 did:key in compressed form (%d bytes), got %d", maxP256Bytes, len(tagged))
		}
		return DID{str: string(tagged)}, nil
	}

	suffix := strings.TrimPrefix(s, "did:")
	tagSize := varint.UvarintSize(Code)
	tagged := make([]byte, tagSize+len(suffix))
	varint.PutUvarint(tagged, Code)
	copy(tagged[tagSize:], suffix)
	return DID{str: string(tagged)}, nil
}

// Decode reinterprets tagged bytes (as produced by Bytes) as a DID.
func Decode(b []byte) (DID, error) {
	if len(b) == 0 {
		return Undef, fmt.Errorf("invalid DID: empty bytes")
	}
	code, _, err := varint.FromUvarint(b)
	if err != nil {
		return Undef, fmt.Errorf("reading DID multicodec tag: %s", err)
	}
	if code != Code && !keyAlgorithms[code] {
		return Undef, fmt.Errorf("unsupported DID multicodec: 0x%x", code)
	}
	if code == KeyAlgP256 && len(b) > maxP256Bytes {
		return Undef, fmt.Errorf("expected P-256 did:key in compressed form (%d bytes), got %d", maxP256Bytes, len(b))
	}
	return DID{str: string(b)}, nil
}

// Format renders a DID back to its did:... textual form.
func Format(d DID) (string, error) {
	if !d.Defined() {
		return "", fmt.Errorf("cannot format undefined DID")
	}
	b := d.Bytes()
	code, n, err := varint.FromUvarint(b)
	if err != nil {
		return "", fmt.Errorf("reading DID multicodec tag: %s", err)
	}
	if code == Code {
		return "did:" + string(b[n:]), nil
	}
	if keyAlgorithms[code] {
		body, err := multibase.Encode(multibase.Base58BTC, b)
		if err != nil {
			return "", fmt.Errorf("base58btc encoding did:key body: %s", err)
		}
		return "did:key:" + body, nil
	}
	return "", fmt.Errorf("unsupported DID multicodec: 0x%x", code)
}

// From accepts a did:... string, raw tagged bytes, or anything exposing a
// DID() accessor, and normalizes it into a DID. It is idempotent: passing a
// DID returns it unchanged.
func From(x any) (DID, error) {
	switch v := x.(type) {
	case DID:
		return v, nil
	case string:
		return Parse(v)
	case []byte:
		return Decode(v)
	case interface{ DID() DID }:
		return v.DID(), nil
	default:
		return Undef, fmt.Errorf("cannot derive a DID from %T", x)
	}
}
