package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

func TestMapDataStartLocationForFound(t *testing.T) {
	md := &MapData{StartLocations: []StartLocation{
		{Point: repcore.Point{X: 10, Y: 20}, SlotID: 3},
	}}

	sl, ok := md.StartLocationFor(3)
	assert.True(t, ok)
	assert.EqualValues(t, 10, sl.X)
}

func TestMapDataStartLocationForNotFound(t *testing.T) {
	md := &MapData{}
	_, ok := md.StartLocationFor(0)
	assert.False(t, ok)
}

func TestGradeReliabilityDowngradesOnUnmatchedStartLocation(t *testing.T) {
	h := &Header{Players: []*Player{{ID: 1, SlotID: 9}, {ID: 2, SlotID: 0}}}
	md := &MapData{StartLocations: []StartLocation{{SlotID: 0}}}
	pds := []*PlayerDesc{{PlayerID: 1, CmdCount: 5}, {PlayerID: 2, CmdCount: 5}}

	cmds := &Commands{Cmds: []repcmd.Cmd{&repcmd.Base{}}}

	grade := gradeReliability(cmds, pds, 10, h, md)
	assert.Equal(t, ReliabilityGood, grade, "unmatched slot/start-location mapping should cap an otherwise-excellent grade")
}

func TestGradeReliabilityIgnoresStartLocationsWhenMapDataMissing(t *testing.T) {
	pds := []*PlayerDesc{{PlayerID: 1, CmdCount: 5}, {PlayerID: 2, CmdCount: 5}}
	cmds := &Commands{Cmds: []repcmd.Cmd{&repcmd.Base{}}}

	grade := gradeReliability(cmds, pds, 10, nil, nil)
	assert.Equal(t, ReliabilityExcellent, grade)
}
