package ucan

import (
	"testing"

	"github.com/stretchr/testify/require"

	gocid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/dagucan/dagucan/core/ipld"
)

func TestParseProofLinkCID(t *testing.T) {
	c, err := gocid.Decode("bafkqaaa")
	require.NoError(t, err)
	link, err := parseProofLink("bafkqaaa")
	require.NoError(t, err)
	cid, ok := ipld.LinkCid(link)
	require.True(t, ok)
	require.True(t, c.Equals(cid))
}

func TestParseProofLinkInlined(t *testing.T) {
	link, err := parseProofLink("not-a-cid")
	require.NoError(t, err)
	cid, ok := ipld.LinkCid(link)
	require.True(t, ok)
	require.Equal(t, uint64(gocid.Raw), cid.Type())
	decoded, err := mh.Decode(cid.Hash())
	require.NoError(t, err)
	require.Equal(t, "not-a-cid", string(decoded.Digest))
}

func TestParseJWTRejectsMalformed(t *testing.T) {
	_, err := parseJWT("only.two")
	require.Error(t, err)

	_, err = parseJWT("not-base64!.not-base64!.not-base64!")
	require.Error(t, err)
}
