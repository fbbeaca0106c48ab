package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

func selectCmd(frame repcore.Frame, playerID byte) *repcmd.SelectCmd {
	return &repcmd.SelectCmd{
		Base: &repcmd.Base{
			Frame:    frame,
			PlayerID: playerID,
			Type:     repcmd.TypeByID(repcmd.TypeIDSelect),
		},
		UnitTags: []repcmd.UnitTag{1},
	}
}

func TestClassifyCmdFirstCommandIsEffective(t *testing.T) {
	cmds := []repcmd.Cmd{selectCmd(0, 1)}
	classifyPlayerCommands(cmds)
	assert.Equal(t, repcore.IneffKindEffective, cmds[0].BaseCmd().IneffKind)
}

func TestClassifyCmdFastReselectionIsIneffective(t *testing.T) {
	cmds := []repcmd.Cmd{
		selectCmd(0, 1),
		selectCmd(2, 1), // well within fastWindowFrames of the previous select
	}
	classifyPlayerCommands(cmds)
	assert.Equal(t, repcore.IneffKindFastReselection, cmds[1].BaseCmd().IneffKind)
}

func TestClassifyCmdFastCancelTrain(t *testing.T) {
	cmds := []repcmd.Cmd{
		&repcmd.TrainCmd{Base: &repcmd.Base{Frame: 0, Type: repcmd.TypeByID(repcmd.TypeIDTrain)}, Unit: repcmd.UnitByID(0x00)},
		&repcmd.CancelTrainCmd{Base: &repcmd.Base{Frame: 5, Type: repcmd.TypeByID(repcmd.TypeIDCancelTrain)}},
	}
	classifyPlayerCommands(cmds)
	assert.Equal(t, repcore.IneffKindFastCancel, cmds[1].BaseCmd().IneffKind)
}

func TestClassifyCmdUnitQueueOverflow(t *testing.T) {
	var cmds []repcmd.Cmd
	for i := 0; i < 7; i++ {
		cmds = append(cmds, &repcmd.TrainCmd{
			Base: &repcmd.Base{Frame: repcore.Frame(i), Type: repcmd.TypeByID(repcmd.TypeIDTrain)},
			Unit: repcmd.UnitByID(0x00),
		})
	}
	classifyPlayerCommands(cmds)
	assert.Equal(t, repcore.IneffKindUnitQueueOverflow, cmds[6].BaseCmd().IneffKind)
}

func TestClassifyCommandsGroupsByPlayer(t *testing.T) {
	cmds := []repcmd.Cmd{
		selectCmd(0, 1),
		selectCmd(0, 2),
		selectCmd(2, 1),
	}
	classifyCommands(cmds)

	// Player 2's lone command is still a "first command" for that player,
	// regardless of position in the combined, multi-player slice.
	assert.Equal(t, repcore.IneffKindEffective, cmds[1].BaseCmd().IneffKind)
	assert.Equal(t, repcore.IneffKindFastReselection, cmds[2].BaseCmd().IneffKind)
}
