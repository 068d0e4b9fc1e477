package json_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/core/ipld/codec/json"
)

func TestEncodePreservesAssemblyOrder(t *testing.T) {
	// This is the UCAN payload field order (iss, aud, att, exp, prf), which
	// is not alphabetical: encoding must not re-sort it the way dagjson's
	// default MapSortMode_Lexical would.
	n, err := ipld.NewMap([]ipld.MapEntry{
		{Key: "iss", Value: ipld.NewString("did:key:z6Mkiss")},
		{Key: "aud", Value: ipld.NewString("did:key:z6Mkaud")},
		{Key: "att", Value: mustList(t)},
		{Key: "exp", Value: ipld.NewInt(1234)},
		{Key: "prf", Value: mustList(t)},
	})
	require.NoError(t, err)

	out, err := json.Encode(n)
	require.NoError(t, err)
	require.JSONEq(t, `{"iss":"did:key:z6Mkiss","aud":"did:key:z6Mkaud","att":[],"exp":1234,"prf":[]}`, string(out))
	require.Equal(t, `{"iss":"did:key:z6Mkiss","aud":"did:key:z6Mkaud","att":[],"exp":1234,"prf":[]}`, string(out))
}

func TestEncodeHeaderOrder(t *testing.T) {
	// The JWT header field order is alg, ucv, typ.
	n, err := ipld.NewMap([]ipld.MapEntry{
		{Key: "alg", Value: ipld.NewString("EdDSA")},
		{Key: "ucv", Value: ipld.NewString("0.9.1")},
		{Key: "typ", Value: ipld.NewString("JWT")},
	})
	require.NoError(t, err)

	out, err := json.Encode(n)
	require.NoError(t, err)
	require.Equal(t, `{"alg":"EdDSA","ucv":"0.9.1","typ":"JWT"}`, string(out))
}

func TestEncodeDecodeBytes(t *testing.T) {
	n := ipld.NewBytes([]byte{0x01, 0x02, 0x03})
	out, err := json.Encode(n)
	require.NoError(t, err)
	require.Contains(t, string(out), `"bytes"`)

	decoded, err := json.Decode(out)
	require.NoError(t, err)
	b, err := decoded.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, b)
}

func mustList(t *testing.T) ipld.Node {
	t.Helper()
	n, err := ipld.NewList(nil)
	require.NoError(t, err)
	return n
}
