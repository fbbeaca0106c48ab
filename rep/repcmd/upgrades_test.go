package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcore"
)

func TestUpgradeRaceRecognizesRacePrefix(t *testing.T) {
	assert.Equal(t, repcore.RaceTerran, UpgradeByID(0x00).Race())  // Terran Infantry Armor
	assert.Equal(t, repcore.RaceZerg, UpgradeByID(0x03).Race())    // Zerg Carapace
	assert.Equal(t, repcore.RaceProtoss, UpgradeByID(0x05).Race()) // Protoss Ground Armor
}

func TestUpgradeRaceNilForUnprefixedName(t *testing.T) {
	assert.Nil(t, UpgradeByID(0x10).Race()) // U-238 Shells (Marine Range)
}
