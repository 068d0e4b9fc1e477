// Package decode resolves multiformat-tagged signer/verifier bytes and
// did:... strings back to the appropriate principal backend (Ed25519 or
// RSA). It lives outside the principal package because the concrete
// backends (principal/ed25519/..., principal/rsa/...) import principal for
// the Signer/Verifier interfaces, so principal itself cannot import them
// back without an import cycle.
package decode

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-varint"

	"github.com/dagucan/dagucan/principal"
	"github.com/dagucan/dagucan/principal/ed25519/signer"
	"github.com/dagucan/dagucan/principal/ed25519/verifier"
	rsasigner "github.com/dagucan/dagucan/principal/rsa/signer"
	rsaverifier "github.com/dagucan/dagucan/principal/rsa/verifier"
)

// DecodeSigner decodes a multiformat-tagged signer back to the appropriate
// backend (Ed25519 or RSA) based on the codec prefix.
func DecodeSigner(encoded []byte) (principal.Signer, error) {
	code, err := varint.ReadUvarint(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("reading signer codec: %w", err)
	}

	switch code {
	case signer.Code:
		return signer.Decode(encoded)
	case rsasigner.Code:
		return rsasigner.Decode(encoded)
	default:
		return nil, fmt.Errorf("unsupported signer codec: %#x", code)
	}
}

// DecodeVerifier decodes a multiformat-tagged verifier back to the
// appropriate backend (Ed25519 or RSA) based on the codec prefix.
func DecodeVerifier(encoded []byte) (principal.Verifier, error) {
	code, err := varint.ReadUvarint(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("reading verifier codec: %w", err)
	}

	switch code {
	case verifier.Code:
		return verifier.Decode(encoded)
	case rsaverifier.Code:
		return rsaverifier.Decode(encoded)
	default:
		return nil, fmt.Errorf("unsupported verifier codec: %#x", code)
	}
}

// DecodePrincipal attempts to decode encoded as a signer, then as a
// verifier, returning whichever succeeds.
func DecodePrincipal(encoded []byte) (any, error) {
	if s, err := DecodeSigner(encoded); err == nil {
		return s, nil
	}
	if v, err := DecodeVerifier(encoded); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("unable to decode as either signer or verifier")
}

// Parser parses a did:... string into a Verifier.
type Parser interface {
	Parse(did string) (principal.Verifier, error)
}

// ComposedParser tries a sequence of Parsers in order, returning the first
// successful result.
type ComposedParser struct {
	parsers []Parser
}

// NewComposedParser builds a ComposedParser trying parsers in order.
func NewComposedParser(parsers ...Parser) *ComposedParser {
	return &ComposedParser{parsers: parsers}
}

// Parse attempts to parse the DID using each parser in sequence.
func (cp *ComposedParser) Parse(did string) (principal.Verifier, error) {
	if len(did) < 4 || did[:4] != "did:" {
		return nil, fmt.Errorf("expected DID but got %s", did)
	}

	var lastErr error
	for _, parser := range cp.parsers {
		if v, err := parser.Parse(did); err == nil {
			return v, nil
		} else {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("unsupported DID %s: %w", did, lastErr)
	}
	return nil, fmt.Errorf("unsupported DID %s", did)
}

// Or returns a new ComposedParser with parser appended.
func (cp *ComposedParser) Or(parser Parser) *ComposedParser {
	return &ComposedParser{parsers: append(cp.parsers, parser)}
}

// Ed25519Parser parses did:key:z6Mk... Ed25519 verifiers.
type Ed25519Parser struct{}

func (p Ed25519Parser) Parse(did string) (principal.Verifier, error) {
	return verifier.Parse(did)
}

// RSAParser parses did:key:z4MX... RSA verifiers.
type RSAParser struct{}

func (p RSAParser) Parse(did string) (principal.Verifier, error) {
	return rsaverifier.Parse(did)
}

// DefaultParser returns a composed parser covering all backends this module
// ships: Ed25519 and RSA.
func DefaultParser() *ComposedParser {
	return NewComposedParser(Ed25519Parser{}, RSAParser{})
}

// ParseDID parses a DID string using DefaultParser.
func ParseDID(did string) (principal.Verifier, error) {
	return DefaultParser().Parse(did)
}
