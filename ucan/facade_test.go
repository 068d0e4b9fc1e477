package ucan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/core/ipld/codec/cbor"
	"github.com/dagucan/dagucan/testing/fixtures"
	"github.com/dagucan/dagucan/ucan"
)

func selfIssued(t *testing.T) ucan.View {
	t.Helper()
	cap := ucan.NewCapability(
		"store/put",
		fixtures.Alice.DID().String(),
		ucan.NoCaveats{},
	)
	u, err := ucan.Issue(fixtures.Alice, fixtures.Alice, []ucan.Capability[ucan.NoCaveats]{cap})
	require.NoError(t, err)
	return u
}

func TestSelfIssued(t *testing.T) {
	u := selfIssued(t)

	require.Equal(t, ucan.VERSION, u.Version())
	require.Greater(t, *u.Expiration(), ucan.Now())
	require.Empty(t, u.Facts())
	require.Empty(t, u.Proofs())

	link, err := ucan.Link(u)
	require.NoError(t, err)
	require.NotNil(t, link)

	jwt, err := ucan.Format(u)
	require.NoError(t, err)

	parsed, err := ucan.Parse(jwt)
	require.NoError(t, err)
	require.Equal(t, u.Issuer().DID().String(), parsed.Issuer().DID().String())
	require.Equal(t, u.Audience().DID().String(), parsed.Audience().DID().String())

	roundTripped, err := ucan.Format(parsed)
	require.NoError(t, err)
	require.Equal(t, jwt, roundTripped)
}

func TestDelegationChain(t *testing.T) {
	capX := func(iss ucan.Signer) ucan.Capability[ucan.NoCaveats] {
		return ucan.NewCapability("store/put", iss.DID().String(), ucan.NoCaveats{})
	}

	root, err := ucan.Issue(fixtures.Alice, fixtures.Bob, []ucan.Capability[ucan.NoCaveats]{capX(fixtures.Alice)})
	require.NoError(t, err)

	proof, err := ucan.Link(root)
	require.NoError(t, err)

	leaf, err := ucan.Issue(
		fixtures.Bob,
		fixtures.Mallory,
		[]ucan.Capability[ucan.NoCaveats]{capX(fixtures.Alice)},
		ucan.WithProof(proof),
		ucan.WithExpiration(*root.Expiration()),
	)
	require.NoError(t, err)

	require.Equal(t, []ucan.Link{proof}, leaf.Proofs())
	require.Equal(t, fixtures.Bob.DID().String(), leaf.Issuer().DID().String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	u := selfIssued(t)

	encoded, err := ucan.Encode(u)
	require.NoError(t, err)

	decoded, err := ucan.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, u.Issuer().DID().String(), decoded.Issuer().DID().String())

	node, err := u.Model().ToIPLD()
	require.NoError(t, err)
	cborBytes, err := cbor.Encode(node)
	require.NoError(t, err)
	require.Equal(t, cborBytes, encoded)
}

func TestProofLinkPreserved(t *testing.T) {
	cap := ucan.NewCapability("store/put", fixtures.Alice.DID().String(), ucan.NoCaveats{})
	root, err := ucan.Issue(fixtures.Alice, fixtures.Bob, []ucan.Capability[ucan.NoCaveats]{cap})
	require.NoError(t, err)
	proof, err := ucan.Link(root)
	require.NoError(t, err)

	leaf, err := ucan.Issue(
		fixtures.Bob, fixtures.Mallory,
		[]ucan.Capability[ucan.NoCaveats]{cap},
		ucan.WithProof(proof),
	)
	require.NoError(t, err)

	jwt, err := ucan.Format(leaf)
	require.NoError(t, err)
	parsed, err := ucan.Parse(jwt)
	require.NoError(t, err)
	require.Equal(t, []ucan.Link{proof}, parsed.Proofs())
}
