// This file implements the fixed-size per-player ring of recent commands
// the effectiveness classifier scans instead of the player's whole command
// history, bounding each classification decision to a constant amount of
// work regardless of how long the replay runs.

package rep

import (
	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
)

// ringCapacity caps how far back the ring looks. 6 is the highest repeat
// count classifyCmd ever needs (IneffKindUnitQueueOverflow); a couple of
// slots of slack absorb an intervening non-matching, non-selection-changer
// command without losing the count.
const ringCapacity = 8

// commandRing holds a player's most recently classified commands, oldest
// overwritten first. It replaces rescanning the player's full command slice
// on every classification with a bounded look-back.
type commandRing struct {
	buf []repcmd.Cmd
	pos int
	len int
}

func newCommandRing() *commandRing {
	return &commandRing{buf: make([]repcmd.Cmd, ringCapacity)}
}

// push records cmd as the most recent command, evicting the oldest entry
// once the ring is full.
func (r *commandRing) push(cmd repcmd.Cmd) {
	r.buf[r.pos] = cmd
	r.pos = (r.pos + 1) % ringCapacity
	if r.len < ringCapacity {
		r.len++
	}
}

// last returns the most recently pushed command, or nil if the ring is
// empty.
func (r *commandRing) last() repcmd.Cmd {
	if r.len == 0 {
		return nil
	}
	return r.buf[(r.pos-1+ringCapacity)%ringCapacity]
}

// sameTypeRun counts, walking backward from the most recent entry, how many
// ring commands share cmd's type and fall within frameLimit, stopping at
// the first selection-changing command of a different type, the ring's
// capacity, or a count of 6, whichever comes first. cmd itself must not yet
// be pushed.
func (r *commandRing) sameTypeRun(cmd repcmd.Cmd, frameLimit repcore.Frame) int {
	base := cmd.BaseCmd()
	count := 0
	idx := r.pos
	for i := 0; i < r.len; i++ {
		idx = (idx - 1 + ringCapacity) % ringCapacity
		c := r.buf[idx]
		cb := c.BaseCmd()
		if cb.Frame < frameLimit {
			break
		}
		if cb.Type == base.Type {
			count++
			if count == 6 {
				break
			}
		} else if isSelectionChanger(c) {
			break
		}
	}
	return count
}
