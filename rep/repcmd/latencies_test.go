package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatencyTurnFrames(t *testing.T) {
	assert.Equal(t, 2, LatencyTypeByID(0x00).TurnFrames())
	assert.Equal(t, 6, LatencyTypeByID(0x02).TurnFrames())
}
