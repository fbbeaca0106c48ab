package repcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActionExcludesSyncAndBookkeepingTypes(t *testing.T) {
	for _, id := range []byte{
		TypeIDSync, TypeIDKeepAlive, TypeIDPause, TypeIDResume,
		TypeIDVoiceEnable, TypeIDJoinedGame, TypeIDLatency,
	} {
		assert.False(t, TypeByID(id).IsAction(), "type ID 0x%02x should not count as an action", id)
	}
}

func TestIsActionIncludesPlayerActions(t *testing.T) {
	for _, id := range []byte{
		TypeIDBuild, TypeIDTrain, TypeIDRightClick, TypeIDSelect, TypeIDChat, TypeIDHotkey,
	} {
		assert.True(t, TypeByID(id).IsAction(), "type ID 0x%02x should count as an action", id)
	}
}

func TestIsActionUnknownTypeIsAction(t *testing.T) {
	assert.True(t, TypeByID(0xFE).IsAction())
}

func TestBaseIsActionForwardsToType(t *testing.T) {
	b := &Base{Type: TypeByID(TypeIDSync)}
	assert.False(t, b.IsAction())

	b2 := &Base{Type: TypeByID(TypeIDBuild)}
	assert.True(t, b2.IsAction())
}

func TestBaseIsActionNilTypeIsAction(t *testing.T) {
	b := &Base{}
	assert.True(t, b.IsAction())
}
