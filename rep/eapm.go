// This file contains the algorithm implementation for EAPM classification,
// generalized from the teacher's IsCmdEffective/countSameCmds pair (which
// only detected unit queue overflow and fast cancel) into a classifier that
// assigns one of the full set of repcore.IneffKind values to every command.
// Repetition counting is done against each player's commandRing (ring.go)
// rather than by rescanning the player's full command history, so
// classifying one command costs O(ringCapacity), not O(replay length).

package rep

import (
	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

const (
	// EAPMVersion is a Semver2 compatible version of the EAPM algorithm.
	EAPMVersion = "v2.0.0"

	// oneSecondFrames is the number of frames in about one second, used
	// as the window for the "too fast" classifications.
	oneSecondFrames = 25

	// fastWindowFrames is a tighter window (under half a second) used for
	// classifications that require the repetition to be suspiciously
	// quick rather than merely within the same second.
	fastWindowFrames = 10
)

// classifyCommands assigns an repcore.IneffKind to every command's
// Base.IneffKind field, processing each player's commands independently
// (commands are assumed to already be in non-decreasing frame order, which
// is how the parser appends them).
func classifyCommands(cmds []repcmd.Cmd) {
	byPlayer := make(map[byte][]repcmd.Cmd)
	for _, cmd := range cmds {
		pid := cmd.BaseCmd().PlayerID
		byPlayer[pid] = append(byPlayer[pid], cmd)
	}

	for _, playerCmds := range byPlayer {
		classifyPlayerCommands(playerCmds)
	}
}

// classifyPlayerCommands classifies the commands of a single player.
// playerCmds must contain only that player's commands, in frame order.
func classifyPlayerCommands(playerCmds []repcmd.Cmd) {
	ring := newCommandRing()
	for _, cmd := range playerCmds {
		cmd.BaseCmd().IneffKind = classifyCmd(ring, cmd)
		ring.push(cmd)
	}
}

// classifyCmd determines cmd's repcore.IneffKind, given the ring of commands
// the same player issued before it. ring must not yet contain cmd.
func classifyCmd(ring *commandRing, cmd repcmd.Cmd) repcore.IneffKind {
	prevCmd := ring.last()
	if prevCmd == nil {
		return repcore.IneffKindEffective // First command is always effective.
	}

	tid := cmd.BaseCmd().Type.ID
	frame := cmd.BaseCmd().Frame

	prevTid := prevCmd.BaseCmd().Type.ID
	prevFrame := prevCmd.BaseCmd().Frame

	// Unit queue overflow: training/queuing the same unit more than the
	// production queue can actually hold.
	if tid == repcmd.TypeIDTrain || tid == repcmd.TypeIDTrainFighter {
		if ring.sameTypeRun(cmd, frame-oneSecondFrames) >= 6 {
			return repcore.IneffKindUnitQueueOverflow
		}
	}

	// Too fast cancel: cancelling something that was just started.
	if frame-prevFrame <= oneSecondFrames*20/25 { // ~20 frames, matches teacher's threshold
		switch {
		case tid == repcmd.TypeIDCancelTrain && prevTid == repcmd.TypeIDTrain:
			return repcore.IneffKindFastCancel
		case tid == repcmd.TypeIDCancelMorph && (prevTid == repcmd.TypeIDUnitMorph || prevTid == repcmd.TypeIDBuildingMorph):
			return repcore.IneffKindFastCancel
		case tid == repcmd.TypeIDCancelUpgrade && prevTid == repcmd.TypeIDUpgrade:
			return repcore.IneffKindFastCancel
		case tid == repcmd.TypeIDCancelTech && prevTid == repcmd.TypeIDTech:
			return repcore.IneffKindFastCancel
		}
	}

	// Too fast reselection: changing the selection again right after a
	// selection change, which typically reflects a double-click or a
	// misclick correction rather than a deliberate decision.
	if isSelectionChanger(cmd) && isSelectionChanger(prevCmd) && frame-prevFrame <= fastWindowFrames {
		return repcore.IneffKindFastReselection
	}

	// Repeated hotkey add/assign to the same group in quick succession:
	// rebinding a group that was just (re)bound carries no new information.
	if tid == repcmd.TypeIDHotkey && prevTid == repcmd.TypeIDHotkey {
		hc, prevHc := cmd.(*repcmd.HotkeyCmd), prevCmd.(*repcmd.HotkeyCmd)
		sameGroup := hc.Group == prevHc.Group
		bothAssignish := hc.HotkeyType.ID != repcmd.HotkeyTypeIDSelect && prevHc.HotkeyType.ID != repcmd.HotkeyTypeIDSelect
		if sameGroup && bothAssignish {
			if frame-prevFrame <= oneSecondFrames {
				return repcore.IneffKindRepetitionHotkeyAddAssign
			}
		}
	}

	// Generic fast repetition: the exact same command type repeated within
	// a very tight window, without an intervening selection change.
	if tid == prevTid && frame-prevFrame <= fastWindowFrames && !isSelectionChanger(cmd) {
		return repcore.IneffKindFastRepetition
	}

	// Generic (slower) repetition: the same command type repeated several
	// times within about a second, capped the same way the unit-queue-
	// overflow check above is.
	if tid == prevTid && !isSelectionChanger(cmd) {
		if ring.sameTypeRun(cmd, frame-oneSecondFrames) >= 4 {
			return repcore.IneffKindRepetition
		}
	}

	return repcore.IneffKindEffective // If we got this far: it's effective.
}

// isSelectionChanger tells if the given command (may) change the current selection.
func isSelectionChanger(cmd repcmd.Cmd) bool {
	switch cmd.BaseCmd().Type.ID {
	case repcmd.TypeIDSelect, repcmd.TypeIDSelectAdd, repcmd.TypeIDSelectRemove,
		repcmd.TypeIDSelect121, repcmd.TypeIDSelectAdd121, repcmd.TypeIDSelectRemove121:
		return true
	case repcmd.TypeIDHotkey:
		if cmd.(*repcmd.HotkeyCmd).HotkeyType.ID == repcmd.HotkeyTypeIDSelect {
			return true
		}
	}
	return false
}
