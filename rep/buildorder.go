// This file implements build order extraction: turning a player's command
// stream into a timeline of production/construction/research decisions,
// the way a replay analysis tool would present it to a viewer.

package rep

import (
	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

// BuildOrderItem describes a single production, construction or research
// action taken by a player.
type BuildOrderItem struct {
	// Frame at which the action was issued.
	Frame int32

	// Time is Frame formatted as elapsed game time ("m:ss" or "h:mm:ss").
	Time string

	// Supply is the player's running supply cost committed so far,
	// including this action (a lower bound: it does not account for unit
	// deaths, since those aren't derivable from the command stream alone).
	Supply int

	// Action names what kind of action this is: "Build", "Land", "Train",
	// "Morph", "Research" or "Upgrade".
	Action string

	// Unit or upgrade/tech name.
	Name string

	// UnitID is the produced/constructed unit's ID, 0 for Research/Upgrade
	// items.
	UnitID uint16

	// Race is the owner race of the produced building (repcmd.RaceOfUnitID
	// lists buildings only, so non-building units get nil) or of a race-wide
	// upgrade; nil for Research items and unit-specific upgrades.
	Race *repcore.Race

	// Minerals and Gas are the action's resource cost.
	Minerals int
	Gas      int
}

// extractBuildOrder walks a single player's commands (in frame order) and
// extracts a BuildOrderItem for every production, construction, morph,
// tech and upgrade command.
func extractBuildOrder(playerCmds []repcmd.Cmd) []BuildOrderItem {
	var items []BuildOrderItem
	runningSupply := 0

	appendUnit := func(frame int32, action string, u *repcmd.Unit) {
		if u == nil {
			return
		}
		cost := unitCost(u)
		runningSupply += cost.Supply
		items = append(items, BuildOrderItem{
			Frame:    frame,
			Time:     repcore.Frame(frame).String(),
			Supply:   runningSupply / 2,
			Action:   action,
			Name:     u.Name,
			UnitID:   u.ID,
			Race:     u.Race(),
			Minerals: cost.Minerals,
			Gas:      cost.Gas,
		})
	}

	for _, cmd := range playerCmds {
		base := cmd.BaseCmd()
		frame := int32(base.Frame)

		switch tcmd := cmd.(type) {
		case *repcmd.BuildCmd:
			appendUnit(frame, "Build", tcmd.Unit)
		case *repcmd.LandCmd:
			appendUnit(frame, "Land", tcmd.Unit)
		case *repcmd.TrainCmd:
			if base.Type.ID == repcmd.TypeIDUnitMorph {
				appendUnit(frame, "Morph", tcmd.Unit)
			} else {
				appendUnit(frame, "Train", tcmd.Unit)
			}
		case *repcmd.BuildingMorphCmd:
			appendUnit(frame, "Morph", tcmd.Unit)
		case *repcmd.TechCmd:
			if tcmd.Tech.IsUnused() {
				// A replay naming a reserved tech slot carries no real
				// research action; skip it rather than show a bogus item.
				continue
			}
			items = append(items, BuildOrderItem{
				Frame:  frame,
				Time:   repcore.Frame(frame).String(),
				Supply: runningSupply / 2,
				Action: "Research",
				Name:   tcmd.Tech.Name,
			})
		case *repcmd.UpgradeCmd:
			items = append(items, BuildOrderItem{
				Frame:  frame,
				Time:   repcore.Frame(frame).String(),
				Supply: runningSupply / 2,
				Action: "Upgrade",
				Name:   tcmd.Upgrade.Name,
				Race:   tcmd.Upgrade.Race(),
			})
		}
	}

	return items
}
