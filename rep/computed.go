// This file contains the types describing the computed / derived data, and
// the Compute method that derives them from a parsed Replay.

package rep

import "github.com/bwrepstat/parser/rep/repcmd"

// Computed contains computed, derived data from other parts of the replay.
type Computed struct {
	// LeaveGameCmds of the players.
	LeaveGameCmds []*repcmd.LeaveGameCmd

	// ChatCmds is a collection of the player chat.
	ChatCmds []*repcmd.ChatCmd

	// WinnerTeam if can be detected by the "largest remaining team wins"
	// algorithm. It's 0 if winner team is unknown.
	WinnerTeam byte

	// PlayerDescs contains player descriptions in team order.
	PlayerDescs []*PlayerDesc

	// BuildOrders maps a player's ID to their extracted build order.
	BuildOrders map[byte][]BuildOrderItem `json:",omitempty"`

	// Reliability grades how trustworthy the parse of the commands section
	// is likely to be, based on the proportion of commands that failed to
	// parse.
	Reliability ReliabilityGrade

	// ParseErrorCount is the number of commands that could not be parsed
	// (len(Commands.ParseErrCmds), duplicated here for convenience).
	ParseErrorCount int

	// ModernSections holds the custom sections modern clients
	// (ShieldBattery in particular) append after MapData.
	ModernSections *ModernSections `json:",omitempty"`

	// CheatsUsed is true if any player issued a CheatCmd enabling a
	// material, non-cosmetic cheat (see repcmd.CheatCode.IsDisqualifying).
	// A replay with CheatsUsed true is not a fair record of play, regardless
	// of its Reliability grade.
	CheatsUsed bool

	// Latency is the last network latency setting in effect, nil if the
	// replay contains no LatencyCmd (the lobby-configured default applies
	// for the whole game).
	Latency *repcmd.Latency
}

// PlayerDesc contains computed / derived data for a player.
type PlayerDesc struct {
	// PlayerID this PlayerDesc belongs to.
	PlayerID byte

	// CmdCount is the number of action commands issued by the player
	// (excludes Sync and other protocol bookkeeping types; see
	// repcmd.Type.IsAction).
	CmdCount int

	// EffectiveCmdCount is the number of commands classified as effective
	// (IneffKind == repcore.IneffKindEffective).
	EffectiveCmdCount int

	// APM is the player's actions per minute over the replay's duration.
	APM int

	// EAPM is the player's effective actions per minute over the replay's
	// duration.
	EAPM int

	// EffectivePct is EffectiveCmdCount / CmdCount expressed as a
	// percentage (0 if CmdCount is 0).
	EffectivePct int
}

// Compute derives Computed from the already-parsed Header and Commands of
// the replay. It is safe to call multiple times; each call recomputes the
// result from scratch. If Commands is nil (the commands section wasn't
// parsed), only the player list is populated.
func (r *Replay) Compute() *Computed {
	c := &Computed{}
	if r.Computed != nil {
		// Preserve data already folded in from trailing sections, parsed
		// before the commands section is classified.
		c.ModernSections = r.Computed.ModernSections
	}

	if r.Header != nil {
		for _, p := range r.Header.Players {
			c.PlayerDescs = append(c.PlayerDescs, &PlayerDesc{PlayerID: p.ID})
		}
	}

	if r.Commands == nil {
		return c
	}

	c.ParseErrorCount = len(r.Commands.ParseErrCmds)

	actionCmds := r.Commands.ActionCmds()
	classifyCommands(actionCmds)

	byPlayer := make(map[byte][]repcmd.Cmd)
	for _, cmd := range actionCmds {
		base := cmd.BaseCmd()
		byPlayer[base.PlayerID] = append(byPlayer[base.PlayerID], cmd)

		switch tcmd := cmd.(type) {
		case *repcmd.LeaveGameCmd:
			c.LeaveGameCmds = append(c.LeaveGameCmds, tcmd)
		case *repcmd.ChatCmd:
			c.ChatCmds = append(c.ChatCmds, tcmd)
		case *repcmd.CheatCmd:
			for _, cc := range tcmd.CheatCodes {
				if cc.IsDisqualifying() {
					c.CheatsUsed = true
				}
			}
		}
	}

	// LatencyCmd is protocol bookkeeping (excluded from actionCmds), so it's
	// picked up from the unfiltered command list instead.
	for _, cmd := range r.Commands.Cmds {
		if lc, ok := cmd.(*repcmd.LatencyCmd); ok {
			c.Latency = lc.Latency
		}
	}

	var durationMinutes float64
	if r.Header != nil {
		durationMinutes = r.Header.Duration().Minutes()
	}

	descByID := make(map[byte]*PlayerDesc, len(c.PlayerDescs))
	for _, pd := range c.PlayerDescs {
		descByID[pd.PlayerID] = pd
	}

	c.BuildOrders = make(map[byte][]BuildOrderItem)
	for pid, cmds := range byPlayer {
		pd := descByID[pid]
		if pd == nil {
			pd = &PlayerDesc{PlayerID: pid}
			c.PlayerDescs = append(c.PlayerDescs, pd)
			descByID[pid] = pd
		}

		pd.CmdCount = len(cmds)
		for _, cmd := range cmds {
			if cmd.BaseCmd().IneffKind.IsEffective() {
				pd.EffectiveCmdCount++
			}
		}
		if pd.CmdCount > 0 {
			pd.EffectivePct = pd.EffectiveCmdCount * 100 / pd.CmdCount
		}
		if durationMinutes > 0 {
			pd.APM = int(float64(pd.CmdCount)/durationMinutes + 0.5)
			pd.EAPM = int(float64(pd.EffectiveCmdCount)/durationMinutes + 0.5)
		}

		c.BuildOrders[pid] = extractBuildOrder(cmds)
	}

	c.WinnerTeam = detectWinnerTeam(r.Header, c.LeaveGameCmds)
	c.Reliability = gradeReliability(r.Commands, c.PlayerDescs, durationMinutes, r.Header, r.MapData)

	return c
}

// detectWinnerTeam guesses the winning team using the "largest remaining
// team wins" heuristic: the team with the most players who never issued a
// LeaveGameCmd is declared the winner. It returns 0 (unknown) if the
// heuristic can't produce a confident answer (no players, or a tie).
func detectWinnerTeam(h *Header, leaveGameCmds []*repcmd.LeaveGameCmd) byte {
	if h == nil || len(h.Players) == 0 {
		return 0
	}

	playerTeam := make(map[byte]byte, len(h.Players))
	for _, p := range h.Players {
		playerTeam[p.ID] = p.Team
	}

	left := make(map[byte]bool, len(leaveGameCmds))
	for _, lg := range leaveGameCmds {
		left[lg.BaseCmd().PlayerID] = true
		if lg.Reason != nil && lg.Reason.IsVictory() {
			// An explicit Victory reason is a direct signal, stronger than
			// the "largest remaining team" heuristic below.
			if team, ok := playerTeam[lg.BaseCmd().PlayerID]; ok {
				return team
			}
		}
	}

	remainingByTeam := h.TeamsRemaining(left)

	var winner byte
	best, tie := 0, false
	for team, count := range remainingByTeam {
		switch {
		case count > best:
			best, winner, tie = count, team, false
		case count == best:
			tie = true
		}
	}
	if tie || best == 0 {
		return 0
	}
	return winner
}
