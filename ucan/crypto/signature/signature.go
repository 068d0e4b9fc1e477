// Package signature implements VarSig: a self-describing signature
// envelope of the form <code:varint><len:varint><raw-bytes>[algName], where
// the trailing algorithm name is only present for the NON_STANDARD code.
package signature

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-varint"

	"github.com/dagucan/dagucan/ucan/schema"
)

// Standard signature algorithm multicodec codes.
const (
	ES256K      = 0xd0e7
	BLS12381G1  = 0xd0ea
	BLS12381G2  = 0xd0eb
	EdDSA       = 0xd0ed
	EIP191      = 0xd191
	ES256       = 0xd01200
	ES384       = 0xd01201
	ES512       = 0xd01202
	RS256       = 0xd01205
	NON_STANDARD = 0xd000
)

var codeToName = map[uint64]string{
	ES256K:     "ES256K",
	BLS12381G1: "BLS12381G1",
	BLS12381G2: "BLS12381G2",
	EdDSA:      "EdDSA",
	EIP191:     "EIP191",
	ES256:      "ES256",
	ES384:      "ES384",
	ES512:      "ES512",
	RS256:      "RS256",
}

var nameToCode = func() map[string]uint64 {
	m := make(map[string]uint64, len(codeToName))
	for code, name := range codeToName {
		m[name] = code
	}
	return m
}()

// CodeName returns the human-readable algorithm name for a standard
// signature code, or an error if the code is not recognized.
func CodeName(code uint64) (string, error) {
	name, ok := codeToName[code]
	if !ok {
		return "", fmt.Errorf("unsupported signature algorithm code: 0x%x", code)
	}
	return name, nil
}

// NameCode returns the standard signature code for an algorithm name, and
// ok=false if the name is not one of the standard algorithms.
func NameCode(name string) (code uint64, ok bool) {
	code, ok = nameToCode[name]
	return
}

// Signature is a self-describing signature envelope.
type Signature interface {
	// Code is the multicodec code of the signing algorithm.
	Code() uint64
	// Size is the length, in bytes, of the raw signature.
	Size() uint64
	// Bytes is the full VarSig envelope.
	Bytes() []byte
	// Raw is the signature bytes without the VarSig envelope.
	Raw() []byte
	// Algorithm is the human-readable algorithm name.
	Algorithm() string
}

type signature []byte

// New creates a VarSig envelope for a standard signature algorithm code. It
// returns a RangeError if code is not one of the recognized standard codes;
// use NewNamed for algorithms outside that table.
func New(code uint64, raw []byte) (Signature, error) {
	if _, err := CodeName(code); err != nil {
		return nil, schema.NewRangeError("unsupported signature algorithm code: 0x%x", code)
	}
	return newEnvelope(code, raw, ""), nil
}

// NewNamed creates a VarSig envelope for the algorithm named. If the name
// matches one of the standard algorithms, the corresponding code is used
// and no algorithm name is appended (it's implied by the code). Otherwise
// the envelope uses the NON_STANDARD code with name appended as UTF-8.
func NewNamed(name string, raw []byte) Signature {
	if code, ok := NameCode(name); ok {
		return newEnvelope(code, raw, "")
	}
	return newEnvelope(NON_STANDARD, raw, name)
}

func newEnvelope(code uint64, raw []byte, name string) signature {
	cl := varint.UvarintSize(code)
	rl := varint.UvarintSize(uint64(len(raw)))
	nameBytes := []byte(name)
	sig := make(signature, cl+rl+len(raw)+len(nameBytes))
	varint.PutUvarint(sig, code)
	varint.PutUvarint(sig[cl:], uint64(len(raw)))
	copy(sig[cl+rl:], raw)
	copy(sig[cl+rl+len(raw):], nameBytes)
	return sig
}

// Encode returns the VarSig envelope bytes.
func Encode(s Signature) []byte {
	return s.Bytes()
}

// Decode reinterprets bytes as a VarSig envelope. It does not validate the
// algorithm code; that check happens lazily in Algorithm/CodeName.
func Decode(b []byte) Signature {
	return signature(b)
}

func (s signature) Code() uint64 {
	c, _ := varint.ReadUvarint(bytes.NewReader(s))
	return c
}

func (s signature) Size() uint64 {
	n, _ := varint.ReadUvarint(bytes.NewReader(s[varint.UvarintSize(s.Code()):]))
	return n
}

func (s signature) Raw() []byte {
	cl := varint.UvarintSize(s.Code())
	rl := varint.UvarintSize(s.Size())
	return s[cl+rl : cl+rl+int(s.Size())]
}

func (s signature) Bytes() []byte {
	return s
}

func (s signature) Algorithm() string {
	code := s.Code()
	if code == NON_STANDARD {
		cl := varint.UvarintSize(code)
		rl := varint.UvarintSize(s.Size())
		return string(s[cl+rl+int(s.Size()):])
	}
	name, err := CodeName(code)
	if err != nil {
		return ""
	}
	return name
}

// View adds signature verification against a Verifier to a Signature.
type View interface {
	Signature
	// Verify reports whether msg was signed by the corresponding signer.
	Verify(msg []byte, verifier Verifier) bool
}

type view struct {
	signature
}

func (v view) Verify(msg []byte, verifier Verifier) bool {
	return verifier.Verify(msg, v)
}

// NewView wraps a Signature into a View.
func NewView(s Signature) View {
	return view{signature(s.Bytes())}
}
