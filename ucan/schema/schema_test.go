package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagucan/dagucan/ucan/datamodel"
	"github.com/dagucan/dagucan/ucan/schema"
)

func TestValidateAbility(t *testing.T) {
	require.NoError(t, schema.ValidateAbility("can", "*"))
	require.NoError(t, schema.ValidateAbility("can", "store/put"))
	require.Error(t, schema.ValidateAbility("can", "storeput"))
	require.Error(t, schema.ValidateAbility("can", "store/put/extra"))
}

func TestValidateCapabilityWildcard(t *testing.T) {
	// S5 — a wildcard resource requires the wildcard ability.
	err := schema.ValidateCapability("att[0]", "my:*", "msg/send")
	require.Error(t, err)
	require.ErrorContains(t, err, "for all 'my:*' or 'as:<did>:*' it must be '*'")

	require.NoError(t, schema.ValidateCapability("att[0]", "my:*", "*"))
	require.NoError(t, schema.ValidateCapability("att[0]", "https://example.com/", "store/put"))
}

func TestValidateCapabilitiesTupleInvariant(t *testing.T) {
	require.Error(t, schema.ValidateCapabilities(nil))
	require.Error(t, schema.ValidateCapabilities([]datamodel.CapabilityModel{}))

	err := schema.ValidateCapabilities([]datamodel.CapabilityModel{
		{With: "did:key:z6Mkk89bC3JrVqKie71YEcc5M1SMVxuCgNx6zLZ8SYJsxALi", Can: "store/put"},
	})
	require.NoError(t, err)
}

func TestValidateVersion(t *testing.T) {
	require.NoError(t, schema.ValidateVersion("0.9.1"))
	require.Error(t, schema.ValidateVersion("0.9"))
	require.Error(t, schema.ValidateVersion("v0.9.1"))
}
