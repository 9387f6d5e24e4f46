package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

func TestParseIDMapsGarbageToNotFound(t *testing.T) {
	_, err := parseID("not-a-uuid")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	id, err := parseID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id)
}

func TestFilterIDMatchesNothingOnGarbage(t *testing.T) {
	_, ok := filterID("../../etc/passwd")
	assert.False(t, ok)

	id, ok := filterID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.True(t, ok)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id)
}
