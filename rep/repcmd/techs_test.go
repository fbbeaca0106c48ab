package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechIsUnusedForReservedSlots(t *testing.T) {
	assert.True(t, TechByID(0x1a).IsUnused())
	assert.True(t, TechByID(0x21).IsUnused())
}

func TestTechIsUnusedFalseForRealTech(t *testing.T) {
	assert.False(t, TechByID(0x00).IsUnused())
}
