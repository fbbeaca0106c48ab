// This file contains the types describing the custom sections modern
// clients append after MapData. These sections are optional (a replay
// recorded by vanilla BW/BWAPI has none of them) and each is tagged with a
// 4-byte ASCII ID, grounded on the original ShieldBattery section this
// package already knew how to describe.

package rep

import "encoding/binary"

// ModernSections holds the custom sections recognized after MapData.
// Unrecognized tags are preserved in Raw so nothing is silently dropped.
type ModernSections struct {
	// ShieldBattery holds the data parsed from the "SKIN" custom section,
	// if present.
	ShieldBattery *ShieldBattery `json:",omitempty"`

	// Raw holds the uninterpreted bytes of every trailing section seen,
	// keyed by its 4-byte tag, including ones ShieldBattery populates.
	Raw map[string][]byte `json:"-"`
}

// ShieldBattery models the data parsed from the ShieldBattery "SKIN"
// custom section.
type ShieldBattery struct {
	StarCraftExeBuild    uint32
	ShieldBatteryVersion string
	GameID               string
}

// ApplyModernSection interprets one trailing custom section, given its
// 4-byte ASCII tag and body (already separated from the tag and the
// uint32 length field that precede it on the wire), and folds it into
// r.Computed.ModernSections.
func ApplyModernSection(r *Replay, tag string, body []byte) {
	if r.Computed == nil {
		r.Computed = &Computed{}
	}
	ms := r.Computed.ModernSections
	if ms == nil {
		ms = &ModernSections{Raw: map[string][]byte{}}
		r.Computed.ModernSections = ms
	}
	if ms.Raw == nil {
		ms.Raw = map[string][]byte{}
	}
	ms.Raw[tag] = body

	switch tag {
	case "SKIN":
		if len(body) < 4 {
			return
		}
		sb := &ShieldBattery{
			StarCraftExeBuild: binary.LittleEndian.Uint32(body[0:4]),
		}
		rest := body[4:]
		parts := splitNulStrings(rest, 2)
		if len(parts) > 0 {
			sb.ShieldBatteryVersion = parts[0]
		}
		if len(parts) > 1 {
			sb.GameID = parts[1]
		}
		ms.ShieldBattery = sb
	}
}

// splitNulStrings splits a byte slice into at most n NUL-terminated strings.
func splitNulStrings(data []byte, n int) []string {
	var out []string
	start := 0
	for i := 0; i < len(data) && len(out) < n; i++ {
		if data[i] == 0 {
			out = append(out, string(data[start:i]))
			start = i + 1
		}
	}
	if len(out) < n && start < len(data) {
		out = append(out, string(data[start:]))
	}
	return out
}
