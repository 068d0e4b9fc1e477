package ucan

import (
	"fmt"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
	"github.com/dagucan/dagucan/ucan/datamodel"
)

// UCAN is the decoded, domain-facing shape of a token: everything a caller
// needs to make an authorization decision, independent of which wire
// encoding (DAG-CBOR or JWT) it arrived in.
type UCAN interface {
	// Issuer is the signer of the UCAN.
	Issuer() Principal
	// Audience is the principal delegated to.
	Audience() Principal
	// Version is the spec version this UCAN conforms to.
	Version() Version
	// Capabilities are claimed abilities that can be performed on a resource.
	Capabilities() []Capability[any]
	// Expiration is the time in seconds since the Unix epoch this UCAN
	// becomes invalid, or nil if it never expires.
	Expiration() *UTCUnixTimestamp
	// NotBefore is the time in seconds since the Unix epoch this UCAN
	// becomes valid, or nil if there is no lower bound.
	NotBefore() *UTCUnixTimestamp
	// Nonce is an opaque uniqueness token, or "" if absent.
	Nonce() Nonce
	// Facts are arbitrary facts and proofs of knowledge.
	Facts() []Fact
	// Proofs are links to delegations this UCAN's capabilities derive from.
	Proofs() []Link
	// Signature is the issuer's signature over this UCAN's payload.
	Signature() signature.View
}

// View decorates UCAN with access to the underlying data model, used by
// encoders and by the signature-preserving JWT/CBOR round-trip decision.
type View interface {
	UCAN
	// Model references the underlying IPLD data model instance.
	Model() *datamodel.UCANModel
}

type ucanView struct {
	model *datamodel.UCANModel
	// jwt holds the original JWT bytes when this view could not be
	// canonicalised without changing the signed payload (see Parse). A nil
	// jwt means this is a CBOR-view: encode/format/link derive purely from
	// model.
	jwt []byte
}

var _ View = (*ucanView)(nil)

// isJWT reports whether this view retains its original JWT bytes rather
// than being freely re-encodable from model alone.
func (v *ucanView) isJWT() bool {
	return v.jwt != nil
}

func (v *ucanView) Issuer() Principal {
	id, err := did.Decode(v.model.Iss)
	if err != nil {
		return did.Undef
	}
	return id
}

func (v *ucanView) Audience() Principal {
	id, err := did.Decode(v.model.Aud)
	if err != nil {
		return did.Undef
	}
	return id
}

func (v *ucanView) Version() Version {
	return v.model.V
}

func (v *ucanView) Capabilities() []Capability[any] {
	caps := make([]Capability[any], 0, len(v.model.Att))
	for _, c := range v.model.Att {
		caps = append(caps, NewCapability[any](c.Can, c.With, c.Nb))
	}
	return caps
}

func (v *ucanView) Expiration() *UTCUnixTimestamp {
	return v.model.Exp
}

func (v *ucanView) NotBefore() *UTCUnixTimestamp {
	return v.model.Nbf
}

func (v *ucanView) Nonce() Nonce {
	if v.model.Nnc == nil {
		return ""
	}
	return *v.model.Nnc
}

func (v *ucanView) Facts() []Fact {
	facts := make([]Fact, 0, len(v.model.Fct))
	for _, f := range v.model.Fct {
		fact := Fact{}
		for k, node := range f.Values {
			plain, err := ipld.ToPlain(node)
			if err != nil {
				continue
			}
			fact[k] = plain
		}
		facts = append(facts, fact)
	}
	return facts
}

func (v *ucanView) Proofs() []Link {
	return v.model.Prf
}

func (v *ucanView) Signature() signature.View {
	return signature.NewView(signature.Decode(v.model.S))
}

func (v *ucanView) Model() *datamodel.UCANModel {
	return v.model
}

// NewUCAN wraps a data model into a View. It performs no validation; the
// caller must ensure the model is well-formed and that its signature was
// computed over the exact bytes SignPayload would produce for it.
func NewUCAN(model *datamodel.UCANModel) (View, error) {
	if model == nil {
		return nil, fmt.Errorf("nil UCAN model")
	}
	return &ucanView{model: model}, nil
}

// VerifySignature checks that the UCAN's signature was produced by verifier
// over this UCAN's own payload, and that verifier speaks for the UCAN's
// issuer: a valid cryptographic signature from the wrong DID (e.g. a
// wrap-verifier presenting a did:web identity over the issuer's did:key
// material) must not verify.
func VerifySignature(u View, verifier Verifier) (bool, error) {
	if u.Issuer().DID() != verifier.DID() {
		return false, nil
	}
	payload, err := SignPayload(u)
	if err != nil {
		return false, err
	}
	return u.Signature().Verify(payload, verifier), nil
}
