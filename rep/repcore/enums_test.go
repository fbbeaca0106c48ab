package repcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedFrameMillisFastestMatchesFrameDuration(t *testing.T) {
	assert.InDelta(t, 42.0, SpeedByID(0x06).FrameMillis(), 0.01)
}

func TestSpeedFrameMillisSlowestIsFourTimesFastest(t *testing.T) {
	slowest := SpeedByID(0x00).FrameMillis()
	fastest := SpeedByID(0x06).FrameMillis()
	assert.InDelta(t, 4.0, slowest/fastest, 0.01)
}

func TestSpeedFrameMillisUnknownIsZero(t *testing.T) {
	assert.Zero(t, (&Speed{Enum: UnknownEnum(0xFE), ID: 0xFE}).FrameMillis())
}
