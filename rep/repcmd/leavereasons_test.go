package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveReasonIsVictory(t *testing.T) {
	assert.True(t, LeaveReasonByID(0x02).IsVictory())
	assert.False(t, LeaveReasonByID(0x01).IsVictory())
}
