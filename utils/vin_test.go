package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVIN(t *testing.T) {
	vin := GenerateVIN()
	assert.Len(t, vin, 17, "VIN placeholder should be 17 characters")
	assert.True(t, strings.HasPrefix(vin, "OL"))
	assert.NotContains(t, vin, "I")
	assert.NotContains(t, vin, "O", "prefix aside, body should not contain O")
	assert.NotContains(t, vin[2:], "Q")
}

func TestGenerateVINIsPseudoUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		vin := GenerateVIN()
		assert.False(t, seen[vin], "Generated VINs should not repeat in practice")
		seen[vin] = true
	}
}
