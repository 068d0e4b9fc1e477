package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal/ed25519/signer"
	"github.com/dagucan/dagucan/principal/verifier"
)

func TestWrapPresentsWrappedDID(t *testing.T) {
	key, err := signer.Generate()
	require.NoError(t, err)

	web, err := did.Parse("did:web:example.com")
	require.NoError(t, err)

	wrapped, err := verifier.Wrap(key.Verifier(), web)
	require.NoError(t, err)
	require.Equal(t, web, wrapped.DID())
	require.Equal(t, key.Verifier().DID(), wrapped.Unwrap().DID())

	sig := key.Sign([]byte("hello"))
	require.True(t, wrapped.Verify([]byte("hello"), sig))
	require.False(t, wrapped.Verify([]byte("goodbye"), sig))
}

func TestWrapRejectsNonKeyVerifier(t *testing.T) {
	key, err := signer.Generate()
	require.NoError(t, err)

	web, err := did.Parse("did:web:example.com")
	require.NoError(t, err)

	wrapped, err := verifier.Wrap(key.Verifier(), web)
	require.NoError(t, err)

	other, err := did.Parse("did:web:other.example.com")
	require.NoError(t, err)
	_, err = verifier.Wrap(wrapped, other)
	require.Error(t, err)
}
