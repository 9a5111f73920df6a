package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageQuota(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage(10)

	require.NoError(t, s.Set(ctx, "ab", "cdef"))
	assert.ErrorIs(t, s.Set(ctx, "gh", "ijklmn"), ErrQuotaExceeded)

	// Overwriting reuses the old entry's budget.
	require.NoError(t, s.Set(ctx, "ab", "12345678"))

	require.NoError(t, s.Remove(ctx, "ab"))
	require.NoError(t, s.Set(ctx, "gh", "ijklmn"))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStorageKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage(0)
	for _, k := range []string{"p_b", "p_a", "q_c"} {
		require.NoError(t, s.Set(ctx, k, "x"))
	}

	keys, err := s.Keys(ctx, "p_")
	require.NoError(t, err)
	assert.Equal(t, []string{"p_a", "p_b"}, keys)

	_, ok, err := s.Get(ctx, "q_c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanonicalKeyIgnoresParamOrder(t *testing.T) {
	a := CanonicalKey("https://cms.example/api/cms/articles?limit=2&category=news", Options{})
	b := CanonicalKey("https://cms.example/api/cms/articles?category=news&limit=2#top", Options{})
	assert.Equal(t, a, b)

	withHeader := CanonicalKey("https://cms.example/api/cms/articles?category=news&limit=2",
		Options{Headers: map[string]string{"Accept-Language": "id"}})
	assert.NotEqual(t, a, withHeader)
}
