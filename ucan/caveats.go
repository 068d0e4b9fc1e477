package ucan

import "github.com/dagucan/dagucan/core/ipld"

// NoCaveats is used when a capability has no additional domain-specific
// details or restrictions: its `nb` field is an empty map.
type NoCaveats struct{}

// ToIPLD renders the caveats as an IPLD node, satisfying CaveatBuilder.
func (c NoCaveats) ToIPLD() (ipld.Node, error) {
	return ipld.NewMap(nil)
}
