package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	parsed, err := ParseEventDate("2026-09-12T18:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())

	parsed, err = ParseEventDate("2026-09-12T18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, parsed.Hour())

	_, err = ParseEventDate("next tuesday")
	assert.Error(t, err)
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Catering", NormalizeCategory("catering"))
	assert.Equal(t, "Photography", NormalizeCategory("  Photography "))
	assert.Equal(t, "", NormalizeCategory("   "))
}
