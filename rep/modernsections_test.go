package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyModernSectionParsesShieldBatterySkin(t *testing.T) {
	body := []byte{0x78, 0x56, 0x34, 0x12} // StarCraftExeBuild = 0x12345678
	body = append(body, []byte("1.2.3\x00game-id-abc\x00")...)

	r := &Replay{}
	ApplyModernSection(r, "SKIN", body)

	if assert.NotNil(t, r.Computed) && assert.NotNil(t, r.Computed.ModernSections) {
		ms := r.Computed.ModernSections
		if assert.NotNil(t, ms.ShieldBattery) {
			assert.EqualValues(t, 0x12345678, ms.ShieldBattery.StarCraftExeBuild)
			assert.Equal(t, "1.2.3", ms.ShieldBattery.ShieldBatteryVersion)
			assert.Equal(t, "game-id-abc", ms.ShieldBattery.GameID)
		}
		assert.Equal(t, body, ms.Raw["SKIN"])
	}
}

func TestApplyModernSectionKeepsUnknownTagsAsRaw(t *testing.T) {
	r := &Replay{}
	ApplyModernSection(r, "LMTS", []byte{0x01, 0x02, 0x03})

	if assert.NotNil(t, r.Computed) && assert.NotNil(t, r.Computed.ModernSections) {
		assert.Nil(t, r.Computed.ModernSections.ShieldBattery)
		assert.Equal(t, []byte{0x01, 0x02, 0x03}, r.Computed.ModernSections.Raw["LMTS"])
	}
}

func TestApplyModernSectionAccumulatesAcrossCalls(t *testing.T) {
	r := &Replay{}
	ApplyModernSection(r, "BFIX", []byte{0xAA})
	ApplyModernSection(r, "CCLR", []byte{0xBB})

	ms := r.Computed.ModernSections
	assert.Equal(t, []byte{0xAA}, ms.Raw["BFIX"])
	assert.Equal(t, []byte{0xBB}, ms.Raw["CCLR"])
}
