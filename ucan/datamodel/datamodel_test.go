package datamodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/ucan/datamodel"
)

func TestCapabilityFromIPLDPreservesUnknownSiblingKeys(t *testing.T) {
	n, err := ipld.NewMap([]ipld.MapEntry{
		{Key: "with", Value: ipld.NewString("did:key:z6Mkalice")},
		{Key: "can", Value: ipld.NewString("store/put")},
		{Key: "nb", Value: mustMap(t)},
		{Key: "exp", Value: ipld.NewInt(1)},
		{Key: "mem", Value: ipld.NewString("keep me")},
	})
	require.NoError(t, err)

	c, err := datamodel.CapabilityFromIPLD(n)
	require.NoError(t, err)
	require.Equal(t, "did:key:z6Mkalice", c.With)
	require.Equal(t, "store/put", c.Can)
	require.Equal(t, []string{"exp", "mem"}, c.ExtraKeys)
	require.Contains(t, c.Extra, "exp")
	require.Contains(t, c.Extra, "mem")

	out, err := c.ToIPLD()
	require.NoError(t, err)

	exp, err := out.LookupByString("exp")
	require.NoError(t, err)
	i, err := exp.AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(1), i)

	mem, err := out.LookupByString("mem")
	require.NoError(t, err)
	s, err := mem.AsString()
	require.NoError(t, err)
	require.Equal(t, "keep me", s)
}

func TestCapabilityFromIPLDNoExtraKeys(t *testing.T) {
	n, err := ipld.NewMap([]ipld.MapEntry{
		{Key: "with", Value: ipld.NewString("did:key:z6Mkalice")},
		{Key: "can", Value: ipld.NewString("store/put")},
		{Key: "nb", Value: mustMap(t)},
	})
	require.NoError(t, err)

	c, err := datamodel.CapabilityFromIPLD(n)
	require.NoError(t, err)
	require.Empty(t, c.ExtraKeys)
	require.Nil(t, c.Extra)
}

func mustMap(t *testing.T) ipld.Node {
	t.Helper()
	n, err := ipld.NewMap(nil)
	require.NoError(t, err)
	return n
}
