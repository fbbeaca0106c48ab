/*

This file implements heuristics for validating a candidate decompressed
chunk. The modern decoder tries several decompression strategies (standard
zlib, raw deflate, raw deflate at a handful of byte offsets) when the
straightforward path fails, and needs a way to tell a plausible result from
garbage without knowing the section's real content ahead of time.

*/

package repdecoder

// minPlausibleLength is the shortest decompressed chunk we consider
// plausible; shorter results are almost certainly mis-framed.
const minPlausibleLength = 4

// densityScore scores how "replay-like" a decompressed byte slice looks.
// Higher is better. The heuristic favors a low density of 0x00 bytes (real
// command/header data is rarely mostly zero) and a length that is at least
// minPlausibleLength.
//
// This doesn't (and can't) verify correctness; it only ranks candidates
// relative to each other so the decoder can pick the best of several
// decompression attempts.
func densityScore(data []byte) int {
	if len(data) < minPlausibleLength {
		return -1
	}

	zero := 0
	for _, b := range data {
		if b == 0 {
			zero++
		}
	}
	zeroRatio := float64(zero) / float64(len(data))

	score := len(data)
	// Penalize heavily zero-padded results; a legitimate section isn't
	// mostly padding.
	if zeroRatio > 0.5 {
		score -= int(zeroRatio * float64(len(data)))
	}

	return score
}

// isPlausible is a fast yes/no gate used before a full densityScore
// comparison is worth computing.
func isPlausible(data []byte) bool {
	return len(data) >= minPlausibleLength
}
