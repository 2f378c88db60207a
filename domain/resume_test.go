package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "jane doe", NormalizeName("  Jane DOE "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", DisplayName("jane doe"))
	assert.Equal(t, "Jane Doe", DisplayName("JANE DOE"))
	assert.Equal(t, "Jean-Luc Picard", DisplayName("jean-luc picard"))
}
