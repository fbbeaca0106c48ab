package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
)

func TestActionCmdsExcludesSync(t *testing.T) {
	cs := &Commands{
		Cmds: []repcmd.Cmd{
			&repcmd.Base{Type: repcmd.TypeByID(repcmd.TypeIDSync)},
			&repcmd.Base{Type: repcmd.TypeByID(repcmd.TypeIDKeepAlive)},
			selectCmd(0, 1),
		},
	}

	actions := cs.ActionCmds()
	assert.Len(t, actions, 1)
	assert.Equal(t, repcmd.TypeIDSelect, actions[0].BaseCmd().Type.ID)
}

func TestActionCmdsEmptyWhenAllBookkeeping(t *testing.T) {
	cs := &Commands{
		Cmds: []repcmd.Cmd{
			&repcmd.Base{Type: repcmd.TypeByID(repcmd.TypeIDSync)},
		},
	}
	assert.Empty(t, cs.ActionCmds())
}
