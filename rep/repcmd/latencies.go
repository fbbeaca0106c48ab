// This file contains latencies.

package repcmd

import "github.com/bwrepstat/parser/rep/repcore"

// Latency describes the latency.
type Latency struct {
	repcore.Enum

	// ID as it appears in replays
	ID byte
}

// Latencies is an enumeration of the possible latencies.
var Latencies = []*Latency{
	{e("Low"), 0x00},
	{e("High"), 0x01},
	{e("Extra High"), 0x02},
}

// turnFrames maps a latency setting to the number of frames BWAPI batches
// into a single network turn at that setting.
var turnFrames = map[byte]int{
	0x00: 2, // Low
	0x01: 4, // High
	0x02: 6, // Extra High
}

// TurnFrames returns the number of frames batched into one network turn at
// this latency setting, 0 for an unrecognized ID.
func (l *Latency) TurnFrames() int {
	return turnFrames[l.ID]
}

// LatencyTypeByID returns the Latency for a given ID.
// A new Latency with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func LatencyTypeByID(ID byte) *Latency {
	if int(ID) < len(Latencies) {
		return Latencies[ID]
	}
	return &Latency{repcore.UnknownEnum(ID), ID}
}
