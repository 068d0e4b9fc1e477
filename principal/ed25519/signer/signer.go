// Package signer implements the Ed25519 principal.Signer backend.
package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal"
	"github.com/dagucan/dagucan/principal/ed25519/verifier"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
)

// Code is the multicodec code tagging an Ed25519 private key.
const Code = 0x1300

const Name = verifier.Name

const SignatureCode = verifier.SignatureCode
const SignatureAlgorithm = verifier.SignatureAlgorithm

var privateTagSize = varint.UvarintSize(Code)
var publicTagSize = varint.UvarintSize(verifier.Code)

const keySize = ed25519.SeedSize

var size = privateTagSize + keySize + publicTagSize + keySize
var pubKeyOffset = privateTagSize + keySize

// Generate creates a new random Ed25519 signer.
func Generate() (principal.Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 key: %s", err)
	}
	s := make(Ed25519Signer, size)
	varint.PutUvarint(s, Code)
	copy(s[privateTagSize:], priv.Seed())
	varint.PutUvarint(s[pubKeyOffset:], verifier.Code)
	copy(s[pubKeyOffset+publicTagSize:], pub)
	return s, nil
}

// FromSeed builds an Ed25519 signer from a raw 32-byte seed, as used by
// crypto/ed25519.NewKeyFromSeed.
func FromSeed(seed []byte) (principal.Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: %d wanted: %d", len(seed), ed25519.SeedSize)
	}
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	s := make(Ed25519Signer, size)
	varint.PutUvarint(s, Code)
	copy(s[privateTagSize:], seed)
	varint.PutUvarint(s[pubKeyOffset:], verifier.Code)
	copy(s[pubKeyOffset+publicTagSize:], pub)
	return s, nil
}

// Parse decodes a multibase-encoded string (as returned by Format) into an
// Ed25519 signer.
func Parse(str string) (principal.Signer, error) {
	_, b, err := multibase.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("decoding multibase string: %s", err)
	}
	return Decode(b)
}

// Format renders an Ed25519 signer as a multibase base58btc string.
func Format(s principal.Signer) (string, error) {
	return multibase.Encode(multibase.Base58BTC, s.Encode())
}

// Decode decodes tagged private key bytes (as returned by Encode) into an
// Ed25519 signer.
func Decode(b []byte) (principal.Signer, error) {
	if len(b) != size {
		return nil, fmt.Errorf("invalid length: %d wanted: %d", len(b), size)
	}

	code, _, err := varint.FromUvarint(b)
	if err != nil {
		return nil, fmt.Errorf("reading private key codec: %s", err)
	}
	if code != Code {
		return nil, fmt.Errorf("invalid private key codec: %#x", code)
	}

	puc, _, err := varint.FromUvarint(b[pubKeyOffset:])
	if err != nil {
		return nil, fmt.Errorf("reading public key codec: %s", err)
	}
	if puc != verifier.Code {
		return nil, fmt.Errorf("invalid public key codec: %#x", puc)
	}

	if _, err := verifier.Decode(b[pubKeyOffset:]); err != nil {
		return nil, fmt.Errorf("decoding public key: %s", err)
	}

	s := make(Ed25519Signer, size)
	copy(s, b)
	return s, nil
}

// Ed25519Signer is a did:key Ed25519 private key, tagged and stored
// alongside its corresponding tagged public key.
type Ed25519Signer []byte

func (s Ed25519Signer) Code() uint64 {
	return Code
}

func (s Ed25519Signer) SignatureCode() uint64 {
	return SignatureCode
}

func (s Ed25519Signer) SignatureAlgorithm() string {
	return SignatureAlgorithm
}

func (s Ed25519Signer) Verifier() principal.Verifier {
	v, _ := verifier.Decode(s[pubKeyOffset:])
	return v
}

func (s Ed25519Signer) DID() did.DID {
	id, _ := did.Decode(s[pubKeyOffset:])
	return id
}

func (s Ed25519Signer) Encode() []byte {
	return s
}

// Raw returns the untagged 64-byte Ed25519 private key (seed || public key),
// in the form crypto/ed25519 expects.
func (s Ed25519Signer) Raw() []byte {
	return ed25519.NewKeyFromSeed(s.seed())
}

func (s Ed25519Signer) seed() []byte {
	return s[privateTagSize:pubKeyOffset]
}

func (s Ed25519Signer) Sign(msg []byte) signature.View {
	env, err := signature.New(SignatureCode, ed25519.Sign(s.Raw(), msg))
	if err != nil {
		panic(err)
	}
	return signature.NewView(env)
}
