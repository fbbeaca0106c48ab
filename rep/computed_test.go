package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
)

func TestComputeExcludesSyncFromCmdCountAndAPM(t *testing.T) {
	// 1429 frames (42ms each) is just over one minute, so APM rounds to
	// equal the action count.
	r := &Replay{
		Header: &Header{
			Frames:  1429,
			Players: []*Player{{ID: 1}},
		},
		Commands: &Commands{
			Cmds: []repcmd.Cmd{
				selectCmd(0, 1),
				&repcmd.Base{Frame: 1, PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDSync)},
				&repcmd.Base{Frame: 2, PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDSync)},
			},
		},
	}

	c := r.Compute()

	if assert.Len(t, c.PlayerDescs, 1) {
		pd := c.PlayerDescs[0]
		assert.Equal(t, 1, pd.CmdCount, "Sync commands must not count toward CmdCount")
		assert.Equal(t, 1, pd.APM, "Sync commands must not inflate APM")
	}
}

func TestComputeFlagsDisqualifyingCheatUse(t *testing.T) {
	r := &Replay{
		Header: &Header{Players: []*Player{{ID: 1}}},
		Commands: &Commands{
			Cmds: []repcmd.Cmd{
				&repcmd.CheatCmd{
					Base:       &repcmd.Base{PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDCheat)},
					CheatCodes: []*repcmd.CheatCode{repcmd.CheatCodesByBitMap(0x04)[0]}, // Power Overwhelming
				},
			},
		},
	}

	c := r.Compute()
	assert.True(t, c.CheatsUsed)
}

func TestComputeIgnoresCosmeticCheatUse(t *testing.T) {
	r := &Replay{
		Header: &Header{Players: []*Player{{ID: 1}}},
		Commands: &Commands{
			Cmds: []repcmd.Cmd{
				&repcmd.CheatCmd{
					Base:       &repcmd.Base{PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDCheat)},
					CheatCodes: []*repcmd.CheatCode{repcmd.CheatCodesByBitMap(0x01)[0]}, // Black Sheep Wall
				},
			},
		},
	}

	c := r.Compute()
	assert.False(t, c.CheatsUsed)
}

func TestComputeCapturesLatestLatencySetting(t *testing.T) {
	r := &Replay{
		Header: &Header{Players: []*Player{{ID: 1}}},
		Commands: &Commands{
			Cmds: []repcmd.Cmd{
				&repcmd.LatencyCmd{
					Base:    &repcmd.Base{PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDLatency)},
					Latency: repcmd.LatencyTypeByID(0x00),
				},
				&repcmd.LatencyCmd{
					Base:    &repcmd.Base{PlayerID: 1, Type: repcmd.TypeByID(repcmd.TypeIDLatency)},
					Latency: repcmd.LatencyTypeByID(0x02),
				},
			},
		},
	}

	c := r.Compute()
	if assert.NotNil(t, c.Latency) {
		assert.Equal(t, 6, c.Latency.TurnFrames())
	}
}
