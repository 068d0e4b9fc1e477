// Package signer implements the RSA principal.Signer backend.
package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/multiformats/go-multibase"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal"
	"github.com/dagucan/dagucan/principal/multiformat"
	"github.com/dagucan/dagucan/principal/rsa/verifier"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
)

// Code is the multicodec code tagging an RSA private key.
const Code = 0x1305
const Name = verifier.Name

const SignatureCode = verifier.SignatureCode
const SignatureAlgorithm = verifier.SignatureAlgorithm

const keySize = 2048

// Generate creates a new random RSA-2048 signer.
func Generate() (principal.Signer, error) {
	priv, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, fmt.Errorf("generating RSA key: %s", err)
	}

	pubbytes := multiformat.TagWith(verifier.Code, x509.MarshalPKCS1PublicKey(&priv.PublicKey))

	verif, err := verifier.Decode(pubbytes)
	if err != nil {
		return nil, fmt.Errorf("decoding public bytes: %s", err)
	}

	prvbytes := multiformat.TagWith(Code, x509.MarshalPKCS1PrivateKey(priv))

	return rsasigner{bytes: prvbytes, privKey: priv, verifier: verif}, nil
}

// Parse decodes a multibase-encoded string (as returned by Format) into an
// RSA signer.
func Parse(str string) (principal.Signer, error) {
	_, b, err := multibase.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("decoding multibase string: %s", err)
	}
	return Decode(b)
}

// Format renders an RSA signer as a multibase base64pad string.
func Format(s principal.Signer) (string, error) {
	return multibase.Encode(multibase.Base64pad, s.Encode())
}

// Decode decodes tagged private key bytes (as returned by Encode) into an
// RSA signer.
func Decode(b []byte) (principal.Signer, error) {
	utb, err := multiformat.UntagWith(Code, b, 0)
	if err != nil {
		return nil, err
	}

	priv, err := x509.ParsePKCS1PrivateKey(utb)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %s", err)
	}

	pubbytes := multiformat.TagWith(verifier.Code, x509.MarshalPKCS1PublicKey(&priv.PublicKey))

	verif, err := verifier.Decode(pubbytes)
	if err != nil {
		return nil, fmt.Errorf("decoding public bytes: %s", err)
	}

	return rsasigner{bytes: b, privKey: priv, verifier: verif}, nil
}

type rsasigner struct {
	bytes    []byte
	privKey  *rsa.PrivateKey
	verifier principal.Verifier
}

func (s rsasigner) Code() uint64 {
	return Code
}

func (s rsasigner) SignatureCode() uint64 {
	return SignatureCode
}

func (s rsasigner) SignatureAlgorithm() string {
	return SignatureAlgorithm
}

func (s rsasigner) Verifier() principal.Verifier {
	return s.verifier
}

func (s rsasigner) DID() did.DID {
	return s.verifier.DID()
}

func (s rsasigner) Encode() []byte {
	return s.bytes
}

func (s rsasigner) Raw() []byte {
	b, _ := multiformat.UntagWith(Code, s.bytes, 0)
	return b
}

func (s rsasigner) Sign(msg []byte) signature.View {
	hash := sha256.New()
	hash.Write(msg)
	digest := hash.Sum(nil)
	sig, _ := rsa.SignPKCS1v15(rand.Reader, s.privKey, crypto.SHA256, digest)
	env, err := signature.New(SignatureCode, sig)
	if err != nil {
		panic(err)
	}
	return signature.NewView(env)
}
