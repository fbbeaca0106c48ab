package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

func TestExtractBuildOrderBuildAndTrain(t *testing.T) {
	marine := repcmd.UnitByID(0x00) // Marine
	scv := repcmd.UnitByID(0x07)    // SCV
	depot := repcmd.UnitByID(repcmd.UnitIDSupplyDepot)

	cmds := []repcmd.Cmd{
		&repcmd.TrainCmd{
			Base: &repcmd.Base{Frame: 24, Type: repcmd.TypeByID(repcmd.TypeIDTrain)},
			Unit: scv,
		},
		&repcmd.BuildCmd{
			Base: &repcmd.Base{Frame: 48, Type: repcmd.TypeByID(repcmd.TypeIDBuild)},
			Unit: depot,
		},
		&repcmd.TrainCmd{
			Base: &repcmd.Base{Frame: 72, Type: repcmd.TypeByID(repcmd.TypeIDTrain)},
			Unit: marine,
		},
	}

	items := extractBuildOrder(cmds)

	if assert.Len(t, items, 3) {
		assert.Equal(t, "Train", items[0].Action)
		assert.Equal(t, "SCV", items[0].Name)
		assert.Equal(t, 50, items[0].Minerals)

		assert.Equal(t, "Build", items[1].Action)
		assert.Equal(t, "Supply Depot", items[1].Name)
		assert.Equal(t, 100, items[1].Minerals)

		assert.Equal(t, "Train", items[2].Action)
		assert.Equal(t, "Marine", items[2].Name)
		// Running supply accumulates across prior production (SCV + Marine).
		assert.Equal(t, (2+2)/2, items[2].Supply)
	}
}

func TestExtractBuildOrderResearchAndUpgradeHaveNoUnitID(t *testing.T) {
	cmds := []repcmd.Cmd{
		&repcmd.TechCmd{
			Base: &repcmd.Base{Frame: 100, Type: repcmd.TypeByID(repcmd.TypeIDTech)},
			Tech: repcmd.TechByID(0x00),
		},
		&repcmd.UpgradeCmd{
			Base:    &repcmd.Base{Frame: 200, Type: repcmd.TypeByID(repcmd.TypeIDUpgrade)},
			Upgrade: repcmd.UpgradeByID(0x00),
		},
	}

	items := extractBuildOrder(cmds)

	if assert.Len(t, items, 2) {
		assert.Equal(t, "Research", items[0].Action)
		assert.Zero(t, items[0].UnitID)
		assert.Equal(t, "Upgrade", items[1].Action)
		assert.Zero(t, items[1].UnitID)
	}
}

func TestExtractBuildOrderUpgradeCarriesRace(t *testing.T) {
	cmds := []repcmd.Cmd{
		&repcmd.UpgradeCmd{
			Base:    &repcmd.Base{Frame: 200, Type: repcmd.TypeByID(repcmd.TypeIDUpgrade)},
			Upgrade: repcmd.UpgradeByID(0x03), // Zerg Carapace
		},
	}

	items := extractBuildOrder(cmds)

	if assert.Len(t, items, 1) {
		assert.Equal(t, repcore.RaceZerg, items[0].Race)
	}
}

func TestExtractBuildOrderSkipsUnusedTechSlots(t *testing.T) {
	cmds := []repcmd.Cmd{
		&repcmd.TechCmd{
			Base: &repcmd.Base{Frame: 100, Type: repcmd.TypeByID(repcmd.TypeIDTech)},
			Tech: repcmd.TechByID(0x1a), // "Unused 26"
		},
		&repcmd.TechCmd{
			Base: &repcmd.Base{Frame: 150, Type: repcmd.TypeByID(repcmd.TypeIDTech)},
			Tech: repcmd.TechByID(0x00), // Stim Packs
		},
	}

	items := extractBuildOrder(cmds)

	if assert.Len(t, items, 1) {
		assert.Equal(t, "Stim Packs", items[0].Name)
	}
}

func TestExtractBuildOrderIgnoresUnrelatedCommands(t *testing.T) {
	cmds := []repcmd.Cmd{
		&repcmd.Base{Frame: 10, Type: repcmd.TypeByID(repcmd.TypeIDKeepAlive)},
		&repcmd.HotkeyCmd{Base: &repcmd.Base{Frame: 20, Type: repcmd.TypeByID(repcmd.TypeIDHotkey)}},
	}

	assert.Empty(t, extractBuildOrder(cmds))
}
