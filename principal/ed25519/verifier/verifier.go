// Package verifier implements the Ed25519 principal.Verifier backend.
package verifier

import (
	"crypto/ed25519"
	"fmt"

	"github.com/multiformats/go-varint"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
)

// Code is the did:key multicodec code for Ed25519 public keys.
const Code = did.KeyAlgEd25519

const Name = "Ed25519"

const SignatureCode = signature.EdDSA
const SignatureAlgorithm = "EdDSA"

var publicTagSize = varint.UvarintSize(Code)

const keySize = ed25519.PublicKeySize

var size = publicTagSize + keySize

// Parse decodes a did:key: string into an Ed25519 verifier.
func Parse(str string) (principal.Verifier, error) {
	id, err := did.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("parsing DID: %s", err)
	}
	return Decode(id.Bytes())
}

// Decode decodes tagged public key bytes (as returned by Encode) into an
// Ed25519 verifier.
func Decode(b []byte) (principal.Verifier, error) {
	if len(b) != size {
		return nil, fmt.Errorf("invalid length: %d wanted: %d", len(b), size)
	}
	code, _, err := varint.FromUvarint(b)
	if err != nil {
		return nil, fmt.Errorf("reading public key codec: %s", err)
	}
	if code != Code {
		return nil, fmt.Errorf("invalid public key codec: %#x", code)
	}
	v := make(Ed25519Verifier, size)
	copy(v, b)
	return v, nil
}

// FromRaw wraps an untagged Ed25519 public key into a verifier.
func FromRaw(pub ed25519.PublicKey) (principal.Verifier, error) {
	if len(pub) != keySize {
		return nil, fmt.Errorf("invalid ed25519 public key length: %d", len(pub))
	}
	tagged := make([]byte, publicTagSize+keySize)
	varint.PutUvarint(tagged, Code)
	copy(tagged[publicTagSize:], pub)
	return Ed25519Verifier(tagged), nil
}

// Ed25519Verifier is a did:key Ed25519 public key.
type Ed25519Verifier []byte

func (v Ed25519Verifier) Code() uint64 {
	return Code
}

func (v Ed25519Verifier) Verify(msg []byte, sig signature.Signature) bool {
	if sig.Code() != SignatureCode {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(v.Raw()), msg, sig.Raw())
}

func (v Ed25519Verifier) DID() did.DID {
	id, _ := did.Decode(v)
	return id
}

func (v Ed25519Verifier) Encode() []byte {
	return v
}

func (v Ed25519Verifier) Raw() []byte {
	return v[publicTagSize:]
}
