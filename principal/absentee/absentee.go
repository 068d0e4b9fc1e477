// Package absentee implements a Signer for a principal that cannot sign:
// one identified only by a DID with no corresponding key, such as a
// did:mailto: address. Its signature is a placeholder, signaling that a
// validator must fall back to some other, interactive, authorization check.
package absentee

import (
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
)

type absentee struct {
	id did.DID
}

func (a absentee) DID() did.DID {
	return a.id
}

func (a absentee) Code() uint64 {
	return 0
}

func (a absentee) SignatureAlgorithm() string {
	return ""
}

func (a absentee) SignatureCode() uint64 {
	return signature.NON_STANDARD
}

func (a absentee) Sign(msg []byte) signature.View {
	return signature.NewView(signature.NewNamed(a.SignatureAlgorithm(), []byte{}))
}

func (a absentee) Verifier() principal.Verifier {
	return verifier{a.id}
}

func (a absentee) Encode() []byte {
	return a.id.Bytes()
}

func (a absentee) Raw() []byte {
	return []byte{}
}

type verifier struct {
	id did.DID
}

func (v verifier) DID() did.DID {
	return v.id
}

func (v verifier) Code() uint64 {
	return 0
}

// Verify always reports false: an absent principal has no key to check a
// signature against.
func (v verifier) Verify(msg []byte, sig signature.Signature) bool {
	return false
}

func (v verifier) Encode() []byte {
	return v.id.Bytes()
}

func (v verifier) Raw() []byte {
	return []byte{}
}

// From creates a signer for a principal that produces an absent signature,
// which signals that a verifier needs to authorize interactively.
func From(id did.DID) principal.Signer {
	return absentee{id}
}
