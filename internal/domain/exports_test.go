package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nkeyid/internal/domain"
)

func TestKinds(t *testing.T) {
	kinds := domain.Kinds()
	require.Len(t, kinds, 6)
	for _, k := range kinds {
		assert.True(t, k.Valid(), k.String())
		parsed, err := domain.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.NotContains(t, kinds, domain.KindUnknown)
}
