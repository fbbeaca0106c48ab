package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

func trainCmdAt(frame int32) *repcmd.TrainCmd {
	return &repcmd.TrainCmd{
		Base: &repcmd.Base{Frame: repcore.Frame(frame), Type: repcmd.TypeByID(repcmd.TypeIDTrain)},
		Unit: repcmd.UnitByID(0x00),
	}
}

func TestCommandRingEmptyHasNoLast(t *testing.T) {
	r := newCommandRing()
	assert.Nil(t, r.last())
}

func TestCommandRingLastReturnsMostRecentPush(t *testing.T) {
	r := newCommandRing()
	r.push(trainCmdAt(0))
	second := trainCmdAt(1)
	r.push(second)
	assert.Equal(t, repcmd.Cmd(second), r.last())
}

func TestCommandRingEvictsOldestBeyondCapacity(t *testing.T) {
	r := newCommandRing()
	for i := 0; i < ringCapacity+2; i++ {
		r.push(trainCmdAt(int32(i)))
	}
	assert.Equal(t, ringCapacity, r.len, "ring must not grow past its capacity")

	last := trainCmdAt(int32(ringCapacity + 2))
	run := r.sameTypeRun(last, -1000)
	assert.LessOrEqual(t, run, ringCapacity)
}

func TestCommandRingSameTypeRunStopsAtFrameLimit(t *testing.T) {
	r := newCommandRing()
	r.push(trainCmdAt(0))
	r.push(trainCmdAt(100))

	cmd := trainCmdAt(101)
	run := r.sameTypeRun(cmd, 50) // excludes the frame-0 command
	assert.Equal(t, 1, run)
}

func TestCommandRingSameTypeRunCapsAtSix(t *testing.T) {
	r := newCommandRing()
	for i := 0; i < 6; i++ {
		r.push(trainCmdAt(int32(i)))
	}
	cmd := trainCmdAt(6)
	run := r.sameTypeRun(cmd, -1000)
	assert.Equal(t, 6, run)
}
