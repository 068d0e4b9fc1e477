package ucan

import (
	"fmt"
	"strings"
	"time"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/ucan/datamodel"
	"github.com/dagucan/dagucan/ucan/formatter"
	"github.com/dagucan/dagucan/ucan/schema"
)

const version = "0.9.1"

// Option configures a UCAN being issued.
type Option func(cfg *ucanConfig) error

type ucanConfig struct {
	exp    *UTCUnixTimestamp
	noExp  bool
	nbf    *UTCUnixTimestamp
	nnc    string
	hasNnc bool
	fct    []FactBuilder
	prf    []Link
}

// WithExpiration configures the expiration time in UTC seconds since the
// Unix epoch. Without this option, Issue defaults to 30 seconds from now.
func WithExpiration(exp UTCUnixTimestamp) Option {
	return func(cfg *ucanConfig) error {
		cfg.exp = &exp
		return nil
	}
}

// WithNoExpiration configures a UCAN that never expires (`exp: null`).
func WithNoExpiration() Option {
	return func(cfg *ucanConfig) error {
		cfg.exp = nil
		cfg.noExp = true
		return nil
	}
}

// WithNotBefore configures the time in UTC seconds since the Unix epoch
// before which the UCAN is not yet valid.
func WithNotBefore(nbf UTCUnixTimestamp) Option {
	return func(cfg *ucanConfig) error {
		cfg.nbf = &nbf
		return nil
	}
}

// WithNonce configures the nonce value for the UCAN.
func WithNonce(nnc string) Option {
	return func(cfg *ucanConfig) error {
		cfg.nnc = nnc
		cfg.hasNnc = true
		return nil
	}
}

// WithFacts configures the facts for the UCAN.
func WithFacts(fct []FactBuilder) Option {
	return func(cfg *ucanConfig) error {
		cfg.fct = fct
		return nil
	}
}

// WithProofs configures the full set of proofs for the UCAN.
func WithProofs(prf []Link) Option {
	return func(cfg *ucanConfig) error {
		cfg.prf = prf
		return nil
	}
}

// WithProof appends a single proof link to the UCAN.
func WithProof(prf Link) Option {
	return func(cfg *ucanConfig) error {
		cfg.prf = append(cfg.prf, prf)
		return nil
	}
}

// CaveatBuilder renders a capability's `nb` field as an IPLD node.
type CaveatBuilder = ipld.Builder

// FactBuilder renders one `fct` array entry as an IPLD node (a Map).
type FactBuilder = ipld.Builder

// Issue creates a new signed UCAN with the given issuer. If no expiration
// is configured it defaults to 30 seconds from now.
func Issue[Caveats CaveatBuilder](issuer Signer, audience Principal, capabilities []Capability[Caveats], options ...Option) (View, error) {
	cfg := ucanConfig{}
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.exp == nil && !cfg.noExp {
		exp := Now() + 30
		cfg.exp = &exp
	}

	capsmdl, err := buildCapabilities(capabilities)
	if err != nil {
		return nil, err
	}

	prfstrs := make([]string, 0, len(cfg.prf))
	for _, link := range cfg.prf {
		prfstrs = append(prfstrs, link.String())
	}

	fctsmdl, err := buildFacts(cfg.fct)
	if err != nil {
		return nil, err
	}

	var nnc *string
	if cfg.hasNnc {
		nnc = &cfg.nnc
	}

	payload := &datamodel.PayloadModel{
		Iss: issuer.DID().String(),
		Aud: audience.DID().String(),
		Att: capsmdl,
		Exp: cfg.exp,
		Prf: prfstrs,
		Fct: fctsmdl,
		Nnc: nnc,
		Nbf: cfg.nbf,
	}
	if err := schema.ValidatePayload(payload); err != nil {
		return nil, err
	}

	header := &datamodel.HeaderModel{
		Alg: issuer.SignatureAlgorithm(),
		Ucv: version,
		Typ: "JWT",
	}

	signPayload, err := signPayloadBytes(header, payload)
	if err != nil {
		return nil, fmt.Errorf("encoding signature payload: %s", err)
	}

	model := &datamodel.UCANModel{
		V:   version,
		Iss: issuer.DID().Bytes(),
		Aud: audience.DID().Bytes(),
		S:   issuer.Sign(signPayload).Bytes(),
		Att: capsmdl,
		Prf: cfg.prf,
		Exp: cfg.exp,
		Fct: fctsmdl,
		Nnc: nnc,
		Nbf: cfg.nbf,
	}
	return NewUCAN(model)
}

func buildCapabilities[Caveats CaveatBuilder](capabilities []Capability[Caveats]) ([]datamodel.CapabilityModel, error) {
	capsmdl := make([]datamodel.CapabilityModel, 0, len(capabilities))
	for _, cap := range capabilities {
		nb, err := cap.Nb().ToIPLD()
		if err != nil {
			return nil, fmt.Errorf("building caveats: %s", err)
		}
		capsmdl = append(capsmdl, datamodel.CapabilityModel{
			With: cap.With(),
			Can:  cap.Can(),
			Nb:   nb,
		})
	}
	return capsmdl, nil
}

func buildFacts(facts []FactBuilder) ([]datamodel.FactModel, error) {
	fctsmdl := make([]datamodel.FactModel, 0, len(facts))
	for _, f := range facts {
		node, err := f.ToIPLD()
		if err != nil {
			return nil, fmt.Errorf("building fact: %s", err)
		}
		fm, err := datamodel.FactFromIPLD(node)
		if err != nil {
			return nil, fmt.Errorf("reading built fact: %s", err)
		}
		fctsmdl = append(fctsmdl, fm)
	}
	return fctsmdl, nil
}

func signPayloadBytes(header *datamodel.HeaderModel, payload *datamodel.PayloadModel) ([]byte, error) {
	str, err := formatter.FormatSignPayload(header, payload)
	if err != nil {
		return nil, err
	}
	return []byte(str), nil
}

// payloadModel reconstructs the JWT payload fields of a UCAN from its
// decoded view, the shared step behind both SignPayload and Format.
func payloadModel(u UCAN) (*datamodel.PayloadModel, error) {
	att := make([]datamodel.CapabilityModel, 0, len(u.Capabilities()))
	for _, c := range u.Capabilities() {
		nb, ok := c.Nb().(ipld.Node)
		if !ok {
			n, err := ipld.FromPlain(c.Nb())
			if err != nil {
				return nil, fmt.Errorf("re-encoding capability nb: %s", err)
			}
			nb = n
		}
		att = append(att, datamodel.CapabilityModel{With: c.With(), Can: c.Can(), Nb: nb})
	}

	prf := make([]string, 0, len(u.Proofs()))
	for _, l := range u.Proofs() {
		prf = append(prf, l.String())
	}

	fct := make([]datamodel.FactModel, 0, len(u.Facts()))
	if v, ok := u.(*ucanView); ok {
		// Facts() flattens each fact into a Go map, losing key order; the
		// model's FactModel keeps the order the signature was computed over.
		fct = append(fct, v.model.Fct...)
	} else {
		for _, f := range u.Facts() {
			node, err := ipld.FromPlain(map[string]any(f))
			if err != nil {
				return nil, fmt.Errorf("re-encoding fact: %s", err)
			}
			fm, err := datamodel.FactFromIPLD(node)
			if err != nil {
				return nil, err
			}
			fct = append(fct, fm)
		}
	}

	var nnc *string
	if u.Nonce() != "" {
		n := u.Nonce()
		nnc = &n
	}

	return &datamodel.PayloadModel{
		Iss: u.Issuer().DID().String(),
		Aud: u.Audience().DID().String(),
		Att: att,
		Exp: u.Expiration(),
		Prf: prf,
		Fct: fct,
		Nnc: nnc,
		Nbf: u.NotBefore(),
	}, nil
}

// SignPayload reconstructs the exact bytes a UCAN's signature was computed
// over, from its decoded view. Used by VerifySignature and by callers that
// want to check a signature themselves.
//
// A JWT-view retains its original bytes because re-encoding its model does
// not reproduce them; for such a view the signing payload is taken verbatim
// from the header and payload segments of the retained JWT, not recomputed.
func SignPayload(u UCAN) ([]byte, error) {
	if v, ok := u.(*ucanView); ok && v.isJWT() {
		segments := strings.SplitN(string(v.jwt), ".", 3)
		if len(segments) != 3 {
			return nil, fmt.Errorf("malformed retained JWT: expected 3 segments, got %d", len(segments))
		}
		return []byte(segments[0] + "." + segments[1]), nil
	}

	payload, err := payloadModel(u)
	if err != nil {
		return nil, err
	}
	header := &datamodel.HeaderModel{
		Alg: u.Signature().Algorithm(),
		Ucv: u.Version(),
		Typ: "JWT",
	}
	return signPayloadBytes(header, payload)
}

// IsExpired reports whether a UCAN has passed its expiration time.
func IsExpired(u UCAN) bool {
	exp := u.Expiration()
	return exp != nil && *exp <= Now()
}

// IsTooEarly reports whether a UCAN's not-before time has not yet arrived.
func IsTooEarly(u UCAN) bool {
	nbf := u.NotBefore()
	return nbf != nil && Now() <= *nbf
}

// Now returns the current UTC Unix timestamp, for comparison against a
// UCAN's time bounds.
func Now() UTCUnixTimestamp {
	return time.Now().Unix()
}
