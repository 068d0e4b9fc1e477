package ucan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/core/ipld/codec/cbor"
	"github.com/dagucan/dagucan/internal/testutil"
	"github.com/dagucan/dagucan/principal/ed25519/signer"
	"github.com/dagucan/dagucan/testing/fixtures"
	"github.com/dagucan/dagucan/ucan"
	"github.com/dagucan/dagucan/ucan/datamodel"
	"github.com/dagucan/dagucan/ucan/formatter"
)

func TestDatamodel(t *testing.T) {
	t.Run("nil caveats", func(t *testing.T) {
		issuer, err := signer.Generate()
		require.NoError(t, err)

		audience, err := signer.Generate()
		require.NoError(t, err)

		caps := []datamodel.CapabilityModel{{
			With: issuer.DID().String(),
			Can:  "test/nilcaveats",
		}}

		payload := &datamodel.PayloadModel{
			Iss: issuer.DID().String(),
			Aud: audience.DID().String(),
			Att: caps,
			Prf: []string{},
			Fct: []datamodel.FactModel{},
		}
		header := &datamodel.HeaderModel{
			Alg: issuer.SignatureAlgorithm(),
			Ucv: "0.9.1",
			Typ: "JWT",
		}

		sigPayload, err := formatter.FormatSignPayload(header, payload)
		require.NoError(t, err)

		model := &datamodel.UCANModel{
			V:   "0.9.1",
			S:   issuer.Sign([]byte(sigPayload)).Bytes(),
			Iss: issuer.DID().Bytes(),
			Aud: audience.DID().Bytes(),
			Att: caps,
			Prf: []ipld.Link{},
			Fct: []datamodel.FactModel{},
		}

		node, err := model.ToIPLD()
		require.NoError(t, err)

		bytes, err := cbor.Encode(node)
		require.NoError(t, err)

		decodedNode, err := cbor.Decode(bytes)
		require.NoError(t, err)

		decoded, err := datamodel.UCANFromIPLD(decodedNode)
		require.NoError(t, err)
		require.Equal(t, model.Att, decoded.Att)
	})
}

type testCaveats struct {
	SomeCaveat string
}

func (c testCaveats) ToIPLD() (ipld.Node, error) {
	entries := []ipld.MapEntry{}
	if c.SomeCaveat != "" {
		entries = append(entries, ipld.MapEntry{Key: "someCaveat", Value: ipld.NewString(c.SomeCaveat)})
	}
	return ipld.NewMap(entries)
}

type testFacts struct {
	SomeFact string
}

func (f testFacts) ToIPLD() (ipld.Node, error) {
	entries := []ipld.MapEntry{}
	if f.SomeFact != "" {
		entries = append(entries, ipld.MapEntry{Key: "someFact", Value: ipld.NewString(f.SomeFact)})
	}
	return ipld.NewMap(entries)
}

func TestVerifySignature(t *testing.T) {
	cap := ucan.NewCapability(
		"test/capability",
		fixtures.Alice.DID().String(),
		testCaveats{SomeCaveat: "some caveat"},
	)

	fact := testFacts{SomeFact: "some fact"}

	// use all available fields to ensure they are all included in the signature
	u, err := ucan.Issue(
		fixtures.Alice,
		fixtures.Bob,
		[]ucan.Capability[testCaveats]{cap},
		ucan.WithExpiration(ucan.Now()+30),
		ucan.WithNonce("1234567890"),
		ucan.WithNotBefore(ucan.Now()-30),
		ucan.WithFacts([]ucan.FactBuilder{fact}),
		ucan.WithProof(testutil.RandomCID()),
	)
	require.NoError(t, err)

	valid, err := ucan.VerifySignature(u, fixtures.Alice.Verifier())
	require.NoError(t, err)
	require.True(t, valid)
}
