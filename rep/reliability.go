// This file grades how trustworthy a parsed replay's commands section is,
// based on how many commands failed to parse relative to how many parsed
// cleanly, and whether the result otherwise looks like a real game.

package rep

// ReliabilityGrade summarizes the confidence that the commands section was
// parsed correctly.
type ReliabilityGrade byte

const (
	// ReliabilityUnknown means there wasn't enough information to grade
	// (e.g. the commands section wasn't parsed).
	ReliabilityUnknown ReliabilityGrade = iota

	// ReliabilityExcellent means parsing hit no snags worth mentioning.
	ReliabilityExcellent

	// ReliabilityGood means a small number of commands failed to parse,
	// well within the range expected of real replays.
	ReliabilityGood

	// ReliabilityFair means a non-trivial fraction of commands failed to
	// parse, or a game longer than a minute has fewer than 2 players who
	// issued commands.
	ReliabilityFair

	// ReliabilityPoor means parsing mostly failed to make sense of the
	// commands section, or too few players/commands were found for the
	// result to be trustworthy.
	ReliabilityPoor
)

var reliabilityGradeStrings = [...]string{
	ReliabilityUnknown:   "unknown",
	ReliabilityExcellent: "excellent",
	ReliabilityGood:      "good",
	ReliabilityFair:      "fair",
	ReliabilityPoor:      "poor",
}

// String returns a short string description.
func (g ReliabilityGrade) String() string {
	if int(g) < len(reliabilityGradeStrings) {
		return reliabilityGradeStrings[g]
	}
	return "unknown"
}

// gradeReliability grades the reliability of a parsed commands section. h
// and md may be nil (header/map data unavailable); the start-location cross
// check is skipped in that case.
func gradeReliability(cmds *Commands, playerDescs []*PlayerDesc, durationMinutes float64, h *Header, md *MapData) ReliabilityGrade {
	if cmds == nil {
		return ReliabilityUnknown
	}

	total := len(cmds.Cmds) + len(cmds.ParseErrCmds)
	if total == 0 {
		return ReliabilityUnknown
	}

	errRate := float64(len(cmds.ParseErrCmds)) / float64(total)

	realPlayers := 0
	for _, pd := range playerDescs {
		if pd.CmdCount == 0 {
			continue
		}
		realPlayers++
	}

	grade := func() ReliabilityGrade {
		switch {
		case errRate > 0.05 || realPlayers < 1:
			return ReliabilityPoor
		case errRate > 0.01 || (durationMinutes > 1 && realPlayers < 2):
			return ReliabilityFair
		case errRate > 0:
			return ReliabilityGood
		default:
			return ReliabilityExcellent
		}
	}()

	if grade == ReliabilityExcellent && unmatchedStartLocations(playerDescs, h, md) {
		// Commands parsed cleanly, but the player slots they reference
		// don't line up with the map's own start locations - a sign the
		// slot/player mapping itself, not just command framing, may be off.
		grade = ReliabilityGood
	}

	return grade
}

// unmatchedStartLocations tells if any player with parsed commands has no
// corresponding start location on the map, per the player's SlotID. It
// returns false (no finding) whenever h, md or start location data isn't
// available, so the absence of this metadata never counts against a
// replay.
func unmatchedStartLocations(playerDescs []*PlayerDesc, h *Header, md *MapData) bool {
	if h == nil || md == nil || len(md.StartLocations) == 0 {
		return false
	}

	bySlot := make(map[byte]*Player, len(h.Players))
	for _, p := range h.Players {
		bySlot[p.ID] = p
	}

	for _, pd := range playerDescs {
		if pd.CmdCount == 0 {
			continue
		}
		p, ok := bySlot[pd.PlayerID]
		if !ok {
			continue
		}
		if _, found := md.StartLocationFor(p.SlotID); !found {
			return true
		}
	}
	return false
}
