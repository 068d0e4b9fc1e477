// Package datamodel holds the plain Go structs mirroring a UCAN's three IPLD
// shapes -- the JWT header, the JWT/CBOR signing payload, and the full
// DAG-CBOR envelope -- plus the hand-written IPLD conversions for each.
//
// A schema-driven binding (github.com/ipld/go-ipld-prime's schema DSL +
// bindnode) would normally generate this layer, but UCAN's field-presence
// rules (omit-when-absent vs. explicit null, DAG-JSON key order mattering
// for the signed payload while DAG-CBOR ignores it) are easier to get right
// with direct datamodel.Node assembly than to express and re-verify against
// an .ipldsch file.
package datamodel

import (
	"fmt"

	"github.com/dagucan/dagucan/core/ipld"
)

// HeaderModel is the JWT header: `{"alg":...,"ucv":...,"typ":"JWT"}`.
type HeaderModel struct {
	Alg string
	Ucv string
	Typ string
}

// ToIPLD renders the header as an ordered map node, matching the field
// order it must appear in when base64url-encoded into a JWT segment.
func (h *HeaderModel) ToIPLD() (ipld.Node, error) {
	return ipld.NewMap([]ipld.MapEntry{
		{Key: "alg", Value: ipld.NewString(h.Alg)},
		{Key: "ucv", Value: ipld.NewString(h.Ucv)},
		{Key: "typ", Value: ipld.NewString(h.Typ)},
	})
}

// HeaderFromIPLD reads a HeaderModel back out of a decoded map node.
func HeaderFromIPLD(n ipld.Node) (*HeaderModel, error) {
	alg, err := stringField(n, "alg", false)
	if err != nil {
		return nil, err
	}
	ucv, err := stringField(n, "ucv", false)
	if err != nil {
		return nil, err
	}
	typ, err := stringField(n, "typ", false)
	if err != nil {
		return nil, err
	}
	return &HeaderModel{Alg: alg.val, Ucv: ucv.val, Typ: typ.val}, nil
}

// CapabilityModel is one entry of the `att` array: a resource, an ability,
// and an opaque bag of caveats. ExtraKeys/Extra hold any sibling keys beyond
// with/can/nb that a foreign capability carried, in their original order, so
// a decode-then-encode round trip preserves them verbatim rather than
// silently dropping them.
type CapabilityModel struct {
	With      string
	Can       string
	Nb        ipld.Node
	ExtraKeys []string
	Extra     map[string]ipld.Node
}

// ToIPLD renders the capability as an ordered map, `with`, `can`, `nb`, then
// any preserved extra keys in their original order.
func (c *CapabilityModel) ToIPLD() (ipld.Node, error) {
	nb := c.Nb
	if nb == nil {
		var err error
		nb, err = ipld.NewMap(nil)
		if err != nil {
			return nil, err
		}
	}
	entries := []ipld.MapEntry{
		{Key: "with", Value: ipld.NewString(c.With)},
		{Key: "can", Value: ipld.NewString(c.Can)},
		{Key: "nb", Value: nb},
	}
	for _, k := range c.ExtraKeys {
		entries = append(entries, ipld.MapEntry{Key: k, Value: c.Extra[k]})
	}
	return ipld.NewMap(entries)
}

// CapabilityFromIPLD reads a CapabilityModel back out of a decoded map node,
// capturing any sibling keys beyond with/can/nb into ExtraKeys/Extra.
func CapabilityFromIPLD(n ipld.Node) (CapabilityModel, error) {
	with, err := stringField(n, "with", false)
	if err != nil {
		return CapabilityModel{}, err
	}
	can, err := stringField(n, "can", false)
	if err != nil {
		return CapabilityModel{}, err
	}
	nb, ok, err := lookup(n, "nb")
	if err != nil {
		return CapabilityModel{}, err
	}
	if !ok {
		nb, err = ipld.NewMap(nil)
		if err != nil {
			return CapabilityModel{}, err
		}
	}

	c := CapabilityModel{With: with.val, Can: can.val, Nb: nb}
	it := n.MapIterator()
	for !it.Done() {
		k, v, err := it.Next()
		if err != nil {
			return CapabilityModel{}, err
		}
		ks, err := k.AsString()
		if err != nil {
			return CapabilityModel{}, err
		}
		if ks == "with" || ks == "can" || ks == "nb" {
			continue
		}
		if c.Extra == nil {
			c.Extra = map[string]ipld.Node{}
		}
		c.ExtraKeys = append(c.ExtraKeys, ks)
		c.Extra[ks] = v
	}
	return c, nil
}

// FactModel is one entry of the `fct` array, an opaque JSON object whose
// key order (Keys) is preserved for byte-identical round-tripping.
type FactModel struct {
	Keys   []string
	Values map[string]ipld.Node
}

// ToIPLD renders the fact as a map, in Keys order.
func (f *FactModel) ToIPLD() (ipld.Node, error) {
	entries := make([]ipld.MapEntry, 0, len(f.Keys))
	for _, k := range f.Keys {
		entries = append(entries, ipld.MapEntry{Key: k, Value: f.Values[k]})
	}
	return ipld.NewMap(entries)
}

// FactFromIPLD reads a FactModel back out of a decoded map node, preserving
// the order keys were iterated in.
func FactFromIPLD(n ipld.Node) (FactModel, error) {
	f := FactModel{Values: map[string]ipld.Node{}}
	it := n.MapIterator()
	for !it.Done() {
		k, v, err := it.Next()
		if err != nil {
			return FactModel{}, err
		}
		ks, err := k.AsString()
		if err != nil {
			return FactModel{}, err
		}
		f.Keys = append(f.Keys, ks)
		f.Values[ks] = v
	}
	return f, nil
}

// PayloadModel is the JWT/CBOR signing payload: everything a signature
// covers, but without the signature itself or the version tag that only
// the outer envelope carries.
type PayloadModel struct {
	Iss string
	Aud string
	Att []CapabilityModel
	Exp *int64
	Prf []string
	Fct []FactModel
	Nnc *string
	Nbf *int64
}

// ToIPLD renders the payload as an ordered map: iss, aud, att, exp, prf,
// then fct/nnc/nbf when present. The JSON codec (core/ipld/codec/json)
// preserves this assembly order verbatim when the payload is base64url-
// encoded into the JWT payload segment, so the order here must be stable.
func (p *PayloadModel) ToIPLD() (ipld.Node, error) {
	atts := make([]ipld.Node, 0, len(p.Att))
	for i := range p.Att {
		n, err := p.Att[i].ToIPLD()
		if err != nil {
			return nil, fmt.Errorf("att[%d]: %s", i, err)
		}
		atts = append(atts, n)
	}
	attNode, err := ipld.NewList(atts)
	if err != nil {
		return nil, err
	}

	prfs := make([]ipld.Node, 0, len(p.Prf))
	for _, s := range p.Prf {
		prfs = append(prfs, ipld.NewString(s))
	}
	prfNode, err := ipld.NewList(prfs)
	if err != nil {
		return nil, err
	}

	expNode := ipld.NewNull()
	if p.Exp != nil {
		expNode = ipld.NewInt(*p.Exp)
	}

	entries := []ipld.MapEntry{
		{Key: "iss", Value: ipld.NewString(p.Iss)},
		{Key: "aud", Value: ipld.NewString(p.Aud)},
		{Key: "att", Value: attNode},
		{Key: "exp", Value: expNode},
		{Key: "prf", Value: prfNode},
	}

	if len(p.Fct) > 0 {
		facts := make([]ipld.Node, 0, len(p.Fct))
		for i := range p.Fct {
			n, err := p.Fct[i].ToIPLD()
			if err != nil {
				return nil, fmt.Errorf("fct[%d]: %s", i, err)
			}
			facts = append(facts, n)
		}
		factNode, err := ipld.NewList(facts)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ipld.MapEntry{Key: "fct", Value: factNode})
	}
	if p.Nnc != nil && *p.Nnc != "" {
		entries = append(entries, ipld.MapEntry{Key: "nnc", Value: ipld.NewString(*p.Nnc)})
	}
	if p.Nbf != nil && *p.Nbf != 0 {
		entries = append(entries, ipld.MapEntry{Key: "nbf", Value: ipld.NewInt(*p.Nbf)})
	}

	return ipld.NewMap(entries)
}

// PayloadFromIPLD reads a PayloadModel back out of a decoded DAG-JSON map
// node, the shape produced by parsing a JWT payload segment.
func PayloadFromIPLD(n ipld.Node) (*PayloadModel, error) {
	iss, err := stringField(n, "iss", false)
	if err != nil {
		return nil, err
	}
	aud, err := stringField(n, "aud", false)
	if err != nil {
		return nil, err
	}

	attNode, ok, err := lookup(n, "att")
	if err != nil {
		return nil, err
	}
	var att []CapabilityModel
	if ok {
		att, err = capabilitiesFromIPLD(attNode)
		if err != nil {
			return nil, err
		}
	}

	prfNode, ok, err := lookup(n, "prf")
	if err != nil {
		return nil, err
	}
	var prf []string
	if ok {
		it := prfNode.ListIterator()
		for !it.Done() {
			_, item, err := it.Next()
			if err != nil {
				return nil, err
			}
			s, err := item.AsString()
			if err != nil {
				return nil, err
			}
			prf = append(prf, s)
		}
	}

	exp, err := intPtrField(n, "exp")
	if err != nil {
		return nil, err
	}

	var fct []FactModel
	if fctNode, ok, err := lookup(n, "fct"); err == nil && ok {
		it := fctNode.ListIterator()
		for !it.Done() {
			_, item, err := it.Next()
			if err != nil {
				return nil, err
			}
			f, err := FactFromIPLD(item)
			if err != nil {
				return nil, err
			}
			fct = append(fct, f)
		}
	} else if err != nil {
		return nil, err
	}

	nnc, err := stringPtrField(n, "nnc")
	if err != nil {
		return nil, err
	}
	nbf, err := intPtrField(n, "nbf")
	if err != nil {
		return nil, err
	}

	return &PayloadModel{
		Iss: iss.val, Aud: aud.val,
		Att: att, Exp: exp, Prf: prf, Fct: fct, Nnc: nnc, Nbf: nbf,
	}, nil
}

// UCANModel is the full DAG-CBOR envelope: the signing payload plus the
// version tag and the signature, with principals and proofs represented in
// their binary/link forms rather than as DID/CID strings.
type UCANModel struct {
	V   string
	Iss []byte
	Aud []byte
	S   []byte
	Att []CapabilityModel
	Prf []ipld.Link
	Exp *int64
	Fct []FactModel
	Nnc *string
	Nbf *int64
}

// ToIPLD renders the full envelope as a map. DAG-CBOR canonically sorts map
// keys regardless of assembly order, so field order here only matters for
// readability.
func (u *UCANModel) ToIPLD() (ipld.Node, error) {
	atts := make([]ipld.Node, 0, len(u.Att))
	for i := range u.Att {
		n, err := u.Att[i].ToIPLD()
		if err != nil {
			return nil, fmt.Errorf("att[%d]: %s", i, err)
		}
		atts = append(atts, n)
	}
	attNode, err := ipld.NewList(atts)
	if err != nil {
		return nil, err
	}

	prfs := make([]ipld.Node, 0, len(u.Prf))
	for _, l := range u.Prf {
		prfs = append(prfs, ipld.NewLink(l))
	}
	prfNode, err := ipld.NewList(prfs)
	if err != nil {
		return nil, err
	}

	expNode := ipld.NewNull()
	if u.Exp != nil {
		expNode = ipld.NewInt(*u.Exp)
	}

	entries := []ipld.MapEntry{
		{Key: "v", Value: ipld.NewString(u.V)},
		{Key: "iss", Value: ipld.NewBytes(u.Iss)},
		{Key: "aud", Value: ipld.NewBytes(u.Aud)},
		{Key: "s", Value: ipld.NewBytes(u.S)},
		{Key: "att", Value: attNode},
		{Key: "prf", Value: prfNode},
		{Key: "exp", Value: expNode},
	}
	if len(u.Fct) > 0 {
		facts := make([]ipld.Node, 0, len(u.Fct))
		for i := range u.Fct {
			n, err := u.Fct[i].ToIPLD()
			if err != nil {
				return nil, fmt.Errorf("fct[%d]: %s", i, err)
			}
			facts = append(facts, n)
		}
		factNode, err := ipld.NewList(facts)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ipld.MapEntry{Key: "fct", Value: factNode})
	}
	if u.Nnc != nil && *u.Nnc != "" {
		entries = append(entries, ipld.MapEntry{Key: "nnc", Value: ipld.NewString(*u.Nnc)})
	}
	if u.Nbf != nil && *u.Nbf != 0 {
		entries = append(entries, ipld.MapEntry{Key: "nbf", Value: ipld.NewInt(*u.Nbf)})
	}

	return ipld.NewMap(entries)
}

// UCANFromIPLD reads a UCANModel back out of a decoded DAG-CBOR map node.
func UCANFromIPLD(n ipld.Node) (*UCANModel, error) {
	v, err := stringField(n, "v", false)
	if err != nil {
		return nil, err
	}
	iss, err := bytesField(n, "iss")
	if err != nil {
		return nil, err
	}
	aud, err := bytesField(n, "aud")
	if err != nil {
		return nil, err
	}
	s, err := bytesField(n, "s")
	if err != nil {
		return nil, err
	}

	attNode, ok, err := lookup(n, "att")
	if err != nil {
		return nil, err
	}
	var att []CapabilityModel
	if ok {
		att, err = capabilitiesFromIPLD(attNode)
		if err != nil {
			return nil, err
		}
	}

	prfNode, ok, err := lookup(n, "prf")
	if err != nil {
		return nil, err
	}
	var prf []ipld.Link
	if ok {
		it := prfNode.ListIterator()
		for !it.Done() {
			_, item, err := it.Next()
			if err != nil {
				return nil, err
			}
			l, err := item.AsLink()
			if err != nil {
				return nil, err
			}
			prf = append(prf, l)
		}
	}

	exp, err := intPtrField(n, "exp")
	if err != nil {
		return nil, err
	}

	var fct []FactModel
	if fctNode, ok, err := lookup(n, "fct"); err == nil && ok {
		it := fctNode.ListIterator()
		for !it.Done() {
			_, item, err := it.Next()
			if err != nil {
				return nil, err
			}
			f, err := FactFromIPLD(item)
			if err != nil {
				return nil, err
			}
			fct = append(fct, f)
		}
	} else if err != nil {
		return nil, err
	}

	nnc, err := stringPtrField(n, "nnc")
	if err != nil {
		return nil, err
	}
	nbf, err := intPtrField(n, "nbf")
	if err != nil {
		return nil, err
	}

	return &UCANModel{
		V: v.val, Iss: iss, Aud: aud, S: s,
		Att: att, Prf: prf, Exp: exp, Fct: fct, Nnc: nnc, Nbf: nbf,
	}, nil
}

func capabilitiesFromIPLD(n ipld.Node) ([]CapabilityModel, error) {
	var out []CapabilityModel
	it := n.ListIterator()
	for !it.Done() {
		_, item, err := it.Next()
		if err != nil {
			return nil, err
		}
		c, err := CapabilityFromIPLD(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

type strVal struct {
	val string
}

func lookup(n ipld.Node, key string) (ipld.Node, bool, error) {
	v, err := n.LookupByString(key)
	if err != nil {
		return nil, false, nil
	}
	return v, true, nil
}

func stringField(n ipld.Node, key string, optional bool) (strVal, error) {
	v, ok, err := lookup(n, key)
	if err != nil {
		return strVal{}, err
	}
	if !ok {
		if optional {
			return strVal{}, nil
		}
		return strVal{}, fmt.Errorf("missing required field %q", key)
	}
	s, err := v.AsString()
	if err != nil {
		return strVal{}, fmt.Errorf("field %q: %s", key, err)
	}
	return strVal{val: s}, nil
}

func stringPtrField(n ipld.Node, key string) (*string, error) {
	v, ok, err := lookup(n, key)
	if err != nil || !ok {
		return nil, err
	}
	if ipld.IsNull(v) {
		return nil, nil
	}
	s, err := v.AsString()
	if err != nil {
		return nil, fmt.Errorf("field %q: %s", key, err)
	}
	return &s, nil
}

func intPtrField(n ipld.Node, key string) (*int64, error) {
	v, ok, err := lookup(n, key)
	if err != nil || !ok {
		return nil, err
	}
	if ipld.IsNull(v) {
		return nil, nil
	}
	i, err := v.AsInt()
	if err != nil {
		return nil, fmt.Errorf("field %q: %s", key, err)
	}
	return &i, nil
}

func bytesField(n ipld.Node, key string) ([]byte, error) {
	v, ok, err := lookup(n, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("missing required field %q", key)
	}
	b, err := v.AsBytes()
	if err != nil {
		return nil, fmt.Errorf("field %q: %s", key, err)
	}
	return b, nil
}
