/*

This file implements the legacy inline frame-sync scheme, an alternative
command block framing kept around as a fallback for parseCommands. The
normal framing is a fixed (frame uint32, blockSize byte) prefix per block;
some early replays instead sync frames inline with one of 3 single-byte
markers. parseCommands only reaches for this when the normal framing would
place a block's end past the section, which means the cursor has already
desynced and the normal framing can't be trusted anyway.

*/

package repparser

// Frame-sync markers of the legacy inline scheme.
const (
	frameSyncSame byte = 0x00 // command block belongs to the same frame as the last one
	frameSyncByte byte = 0x01 // frame advances by the uint8 that follows
	frameSyncWord byte = 0x02 // frame advances by the uint16 that follows
)

// readFrameSyncBlock reads one command block using the legacy inline
// frame-sync scheme rather than the normal (frame, blockSize) prefix. It
// reports ok=false if the bytes at br.pos don't look like a frame-sync
// block either, in which case the caller should give up on the section
// rather than guess further.
func readFrameSyncBlock(br *binReader, sectionEnd, lastFrame uint32) (frame, blockEnd uint32, ok bool) {
	if br.pos >= sectionEnd {
		return 0, 0, false
	}

	startPos := br.pos
	marker := br.getByte()

	switch marker {
	case frameSyncSame:
		frame = lastFrame
	case frameSyncByte:
		if !br.canRead(1) {
			br.setPos(startPos)
			return 0, 0, false
		}
		frame = lastFrame + uint32(br.getByte())
	case frameSyncWord:
		if !br.canRead(2) {
			br.setPos(startPos)
			return 0, 0, false
		}
		frame = lastFrame + uint32(br.getUint16())
	default:
		br.setPos(startPos)
		return 0, 0, false
	}

	if !br.canRead(1) {
		br.setPos(startPos)
		return 0, 0, false
	}
	blockSize := br.getByte()
	blockEnd = br.pos + uint32(blockSize)
	if blockEnd > sectionEnd {
		br.setPos(startPos)
		return 0, 0, false
	}

	return frame, blockEnd, true
}
