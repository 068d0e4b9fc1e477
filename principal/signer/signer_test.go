package signer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal/ed25519/signer"
	wrapsigner "github.com/dagucan/dagucan/principal/signer"
)

func TestWrapSignsUnderWrappedDID(t *testing.T) {
	key, err := signer.Generate()
	require.NoError(t, err)

	web, err := did.Parse("did:web:example.com")
	require.NoError(t, err)

	wrapped, err := wrapsigner.Wrap(key, web)
	require.NoError(t, err)
	require.Equal(t, web, wrapped.DID())
	require.Equal(t, key.DID(), wrapped.Unwrap().DID())

	sig := wrapped.Sign([]byte("hello"))
	require.True(t, key.Verifier().Verify([]byte("hello"), sig))
	require.Equal(t, web, wrapped.Verifier().DID())
}

func TestWrapRejectsNonKeySigner(t *testing.T) {
	key, err := signer.Generate()
	require.NoError(t, err)

	web, err := did.Parse("did:web:example.com")
	require.NoError(t, err)

	_, err = wrapsigner.Wrap(key, web)
	require.NoError(t, err)

	other, err := did.Parse("did:web:other.example.com")
	require.NoError(t, err)
	wrapped, err := wrapsigner.Wrap(key, web)
	require.NoError(t, err)
	_, err = wrapsigner.Wrap(wrapped, other)
	require.Error(t, err)
}
