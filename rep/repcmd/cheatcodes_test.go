package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheatCodeIsDisqualifying(t *testing.T) {
	assert.True(t, CheatCodesByBitMap(0x04)[0].IsDisqualifying())  // Power Overwhelming
	assert.False(t, CheatCodesByBitMap(0x01)[0].IsDisqualifying()) // Black Sheep Wall
}
