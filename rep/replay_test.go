package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

func TestHeaderMatchupAndPlayerNames(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{Name: "Flash", Team: 1, Race: repcore.RaceTerran},
			{Name: "Bisu", Team: 2, Race: repcore.RaceProtoss},
			{Name: "Jaedong", Team: 2, Race: repcore.RaceZerg},
		},
	}

	assert.Equal(t, "TvPZ", h.Matchup())
	assert.Equal(t, "Flash VS Bisu, Jaedong", h.PlayerNames())
}

func TestHeaderMatchupExcludesObservers(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{Name: "Flash", Team: 1, Race: repcore.RaceTerran},
			{Name: "Caster", Team: 2, Race: repcore.RaceZerg, Observer: true},
		},
	}

	assert.Equal(t, "T", h.Matchup())
}

func TestHeaderMapSize(t *testing.T) {
	h := &Header{MapWidth: 128, MapHeight: 128}
	assert.Equal(t, "128x128", h.MapSize())
}

func TestHeaderRealDurationMatchesNominalAtFastest(t *testing.T) {
	h := &Header{Frames: 2381, Speed: repcore.SpeedByID(0x06)} // Fastest
	assert.InDelta(t, h.Duration().Seconds(), h.RealDuration().Seconds(), 0.1)
}

func TestHeaderRealDurationSlowerThanNominalAtSlowestSpeed(t *testing.T) {
	h := &Header{Frames: 2381, Speed: repcore.SpeedByID(0x00)} // Slowest
	assert.Greater(t, h.RealDuration(), h.Duration())
}

func TestHeaderRealDurationFallsBackWhenSpeedNil(t *testing.T) {
	h := &Header{Frames: 2381}
	assert.Equal(t, h.Duration(), h.RealDuration())
}

func TestHeaderTeamsRemainingExcludesObserversAndLeft(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{ID: 0, Team: 1},
			{ID: 1, Team: 2},
			{ID: 2, Team: 2},
			{ID: 3, Team: 1, Observer: true},
		},
	}

	remaining := h.TeamsRemaining(map[byte]bool{1: true})
	assert.Equal(t, map[byte]int{1: 1, 2: 1}, remaining)
}

func TestDetectWinnerTeamLargestRemaining(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{ID: 0, Team: 1},
			{ID: 1, Team: 2},
			{ID: 2, Team: 2},
		},
	}

	winner := detectWinnerTeam(h, nil)
	assert.EqualValues(t, 2, winner, "team 2 has more players remaining")
}

func TestDetectWinnerTeamPrefersExplicitVictoryReason(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{ID: 0, Team: 1},
			{ID: 1, Team: 2},
			{ID: 2, Team: 2},
		},
	}
	// Team 2 has more players remaining, but player 0 (team 1) explicitly
	// recorded a Victory leave reason, which must win over the heuristic.
	leaves := []*repcmd.LeaveGameCmd{
		{Base: &repcmd.Base{PlayerID: 0}, Reason: repcmd.LeaveReasonByID(0x02)},
	}

	winner := detectWinnerTeam(h, leaves)
	assert.EqualValues(t, 1, winner)
}

func TestDetectWinnerTeamTieIsUnknown(t *testing.T) {
	h := &Header{
		Players: []*Player{
			{ID: 0, Team: 1},
			{ID: 1, Team: 2},
		},
	}

	winner := detectWinnerTeam(h, nil)
	assert.EqualValues(t, 0, winner, "tied teams can't be resolved")
}
