package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/ucan/datamodel"
)

var versionRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ValidateVersion checks that v matches the UCAN version format N.N.N.
func ValidateVersion(v string) error {
	if !versionRe.MatchString(v) {
		return NewParseError("v", "invalid version %q, expected the form N.N.N", v)
	}
	return nil
}

// NormalizeAbility lowercases can the way the decode path does. Resource
// (`with`) is left untouched, preserving the source's lowercasing asymmetry
// so round-trips of existing tokens stay stable.
func NormalizeAbility(can string) string {
	return strings.ToLower(can)
}

// NormalizeCapabilities lowercases the Can field of each capability in
// place, returning the same slice for convenient chaining.
func NormalizeCapabilities(att []datamodel.CapabilityModel) []datamodel.CapabilityModel {
	for i, c := range att {
		att[i].Can = NormalizeAbility(c.Can)
	}
	return att
}

// ValidateAbility checks that can is the literal "*" or has the form
// "<ns>/<act>" with a non-empty namespace and action.
func ValidateAbility(path string, can string) error {
	if can == "*" {
		return nil
	}
	ns, act, ok := strings.Cut(can, "/")
	if !ok || ns == "" || act == "" || strings.Contains(act, "/") {
		return NewParseError(path, "invalid ability %q, expected \"*\" or \"<ns>/<act>\"", can)
	}
	return nil
}

// ValidateCapability checks with/can individually and the cross-field rule:
// a wildcard resource (one ending in "*", e.g. "my:*" or "as:did:...:*")
// requires the wildcard ability "*".
func ValidateCapability(path string, with string, can string) error {
	if with == "" {
		return NewParseError(path+".with", "resource must not be empty")
	}
	if err := ValidateAbility(path+".can", can); err != nil {
		return err
	}
	if strings.HasSuffix(with, "*") && can != "*" {
		return NewParseError(path+".can", "for all 'my:*' or 'as:<did>:*' it must be '*'")
	}
	return nil
}

// ValidateCapabilities checks the tuple invariant (at least one capability)
// and validates each entry.
func ValidateCapabilities(att []datamodel.CapabilityModel) error {
	if len(att) == 0 {
		return NewParseError("att", "must have at least one capability")
	}
	for i, c := range att {
		if err := ValidateCapability(fmt.Sprintf("att[%d]", i), c.With, c.Can); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePrincipal checks that b decodes as a well-formed DID.
func ValidatePrincipal(path string, b []byte) error {
	if _, err := did.Decode(b); err != nil {
		return NewParseError(path, "invalid principal: %s", err)
	}
	return nil
}

// ValidatePrincipalString checks that s parses as a well-formed DID string.
func ValidatePrincipalString(path string, s string) error {
	if _, err := did.Parse(s); err != nil {
		return NewParseError(path, "invalid principal: %s", err)
	}
	return nil
}

// ValidatePayload runs the full set of structural checks against a decoded
// JWT payload (string-form iss/aud, string-form prf).
func ValidatePayload(p *datamodel.PayloadModel) error {
	if err := ValidatePrincipalString("iss", p.Iss); err != nil {
		return err
	}
	if err := ValidatePrincipalString("aud", p.Aud); err != nil {
		return err
	}
	return ValidateCapabilities(p.Att)
}

// ValidateModel runs the full set of structural checks against a decoded
// DAG-CBOR envelope (byte-form iss/aud, link-form prf).
func ValidateModel(m *datamodel.UCANModel) error {
	if err := ValidateVersion(m.V); err != nil {
		return err
	}
	if err := ValidatePrincipal("iss", m.Iss); err != nil {
		return err
	}
	if err := ValidatePrincipal("aud", m.Aud); err != nil {
		return err
	}
	return ValidateCapabilities(m.Att)
}
