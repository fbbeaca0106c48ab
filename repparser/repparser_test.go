package repparser

import (
	"context"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwrepstat/parser/rep"
	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/repparser/repdecoder"
)

// fakeTrailingDecoder serves raw bytes for parseModernSections tests; it
// implements only what that function touches (NewSection/RawBytes/Close).
type fakeTrailingDecoder struct {
	data []byte
}

func (f *fakeTrailingDecoder) RepFormat() repdecoder.RepFormat { return repdecoder.RepFormatModern }

func (f *fakeTrailingDecoder) NewSection() error {
	if len(f.data) == 0 {
		return repdecoder.ErrNoMoreSections
	}
	return nil
}

func (f *fakeTrailingDecoder) Section(size int32) ([]byte, error) {
	panic("Section should not be called for trailing modern sections")
}

func (f *fakeTrailingDecoder) RawBytes(n int32) ([]byte, error) {
	if int32(len(f.data)) < n {
		return nil, io.ErrUnexpectedEOF
	}
	out := f.data[:n]
	f.data = f.data[n:]
	return out, nil
}

func (f *fakeTrailingDecoder) Close() error { return nil }

func TestParseModernSectionsReadsFlatFraming(t *testing.T) {
	var data []byte
	data = append(data, []byte("SKIN")...)

	body := []byte{0xAA, 0xBB}
	sizeBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBuf, uint32(len(body)))
	data = append(data, sizeBuf...)
	data = append(data, body...)

	dec := &fakeTrailingDecoder{data: data}
	r := &rep.Replay{}

	parseModernSections(context.Background(), dec, r, Config{})

	if assert.NotNil(t, r.Computed) && assert.NotNil(t, r.Computed.ModernSections) {
		assert.Equal(t, body, r.Computed.ModernSections.Raw["SKIN"])
	}
	assert.Empty(t, dec.data, "parseModernSections should consume exactly id+size+body, nothing more")
}

func TestParseModernSectionsStopsWhenNoMoreSections(t *testing.T) {
	dec := &fakeTrailingDecoder{}
	r := &rep.Replay{}

	assert.NotPanics(t, func() {
		parseModernSections(context.Background(), dec, r, Config{})
	})
	assert.Nil(t, r.Computed)
}

func TestBinReaderPanicsOnOverrun(t *testing.T) {
	br := &binReader{b: []byte{0x01}}
	assert.Panics(t, func() { br.getUint32() })
}

func TestBinReaderReadsLittleEndian(t *testing.T) {
	br := &binReader{b: []byte{0x01, 0x02, 0x03, 0x04}}
	assert.EqualValues(t, 0x0201, br.getUint16())
	assert.EqualValues(t, 0x03, br.getByte())
	assert.EqualValues(t, 0x03, br.b[br.pos-1])
}

func TestReadFrameSyncBlockSameFrameMarker(t *testing.T) {
	data := []byte{frameSyncSame, 2, 0xAA, 0xAA}
	br := &binReader{b: data}

	frame, end, ok := readFrameSyncBlock(br, uint32(len(data)), 7)
	assert.True(t, ok)
	assert.EqualValues(t, 7, frame)
	assert.EqualValues(t, 4, end)
}

func TestReadFrameSyncBlockByteDeltaMarker(t *testing.T) {
	data := []byte{frameSyncByte, 5, 3, 0xAA, 0xAA, 0xAA}
	br := &binReader{b: data}

	frame, end, ok := readFrameSyncBlock(br, uint32(len(data)), 10)
	assert.True(t, ok)
	assert.EqualValues(t, 15, frame)
	assert.EqualValues(t, 6, end)
}

func TestReadFrameSyncBlockRejectsUnknownMarker(t *testing.T) {
	data := []byte{0xFF, 0x00}
	br := &binReader{b: data}

	_, _, ok := readFrameSyncBlock(br, uint32(len(data)), 0)
	assert.False(t, ok)
	assert.EqualValues(t, 0, br.pos, "cursor should be restored on failure")
}

func TestReadFrameSyncBlockRejectsOverrunBlock(t *testing.T) {
	data := []byte{frameSyncByte, 1, 10, 0xAA}
	br := &binReader{b: data}

	_, _, ok := readFrameSyncBlock(br, uint32(len(data)), 0)
	assert.False(t, ok)
	assert.EqualValues(t, 0, br.pos)
}

func TestParseCommandsBasic(t *testing.T) {
	// One frame block (frame 100) with a KeepAlive and a LeaveGame command.
	data := []byte{
		100, 0, 0, 0, // frame (u32 LE)
		5, // block size: 2 bytes KeepAlive + 3 bytes LeaveGame
		3, repcmd.TypeIDKeepAlive,
		3, repcmd.TypeIDLeaveGame, 0x01, // reason: Defeat
	}

	r := &rep.Replay{}
	err := parseCommands(data, r, Config{})
	assert.NoError(t, err)

	if assert.Len(t, r.Commands.Cmds, 2) {
		assert.EqualValues(t, repcmd.TypeIDKeepAlive, r.Commands.Cmds[0].BaseCmd().Type.ID)

		leaveCmd, ok := r.Commands.Cmds[1].(*repcmd.LeaveGameCmd)
		if assert.True(t, ok) {
			assert.EqualValues(t, 0x01, leaveCmd.Reason.ID)
		}
	}
}

func TestParseCommandsBuildDispatchesLandCmdForBuildingLandOrder(t *testing.T) {
	// A Build-type command (0x0c) whose order byte is BuildingLand (0x47)
	// must come out as a LandCmd, not a BuildCmd - this is the wire signal
	// that a lifted-off building is being set back down, not freshly built.
	data := []byte{
		50, 0, 0, 0, // frame (u32 LE)
		9,                     // block size: PlayerID+TypeID+order+pos(4)+unit(2)
		9, repcmd.TypeIDBuild, // PlayerID, TypeID
		repcmd.OrderIDBuildingLand, // order
		0x10, 0x00, 0x20, 0x00,     // pos X, Y
		0x6a, 0x00, // unit ID (Command Center = 0x6a)
	}

	r := &rep.Replay{}
	err := parseCommands(data, r, Config{})
	assert.NoError(t, err)

	if assert.Len(t, r.Commands.Cmds, 1) {
		landCmd, ok := r.Commands.Cmds[0].(*repcmd.LandCmd)
		if assert.True(t, ok, "expected a LandCmd, got %T", r.Commands.Cmds[0]) {
			assert.True(t, landCmd.Order.IsLand())
			assert.EqualValues(t, 0x10, landCmd.Pos.X)
			assert.EqualValues(t, 0x20, landCmd.Pos.Y)
		}
	}
}

func TestParseCommandsBuildDispatchesBuildCmdForOtherOrders(t *testing.T) {
	data := []byte{
		50, 0, 0, 0,
		9,
		9, repcmd.TypeIDBuild,
		repcmd.OrderIDPlaceProtossBuilding,
		0x10, 0x00, 0x20, 0x00,
		0x6a, 0x00,
	}

	r := &rep.Replay{}
	err := parseCommands(data, r, Config{})
	assert.NoError(t, err)

	if assert.Len(t, r.Commands.Cmds, 1) {
		_, ok := r.Commands.Cmds[0].(*repcmd.BuildCmd)
		assert.True(t, ok, "expected a BuildCmd, got %T", r.Commands.Cmds[0])
	}
}

func TestParseCommandsAbandonsAfterTooManyUnknownOpcodes(t *testing.T) {
	const unknownTypeID = 0xFE // not a registered command type

	// Each block holds a single unrecognized command; an unrecognized
	// command skips straight to its block's end, so the streak only grows
	// one per block, not one per byte pair.
	var data []byte
	for i := 0; i < maxConsecutiveUnknownCmds+5; i++ {
		data = append(data, byte(i), 0, 0, 0, 2, byte(i%12), unknownTypeID)
	}

	r := &rep.Replay{}
	err := parseCommands(data, r, Config{})
	assert.NoError(t, err)
	assert.Len(t, r.Commands.ParseErrCmds, maxConsecutiveUnknownCmds)
}

func TestParseCommandsGivesUpCleanlyWhenNeitherFramingFits(t *testing.T) {
	// The declared block size (0xFF) runs past the section end, and the
	// bytes at that position don't look like a frame-sync marker either
	// (10 isn't 0x00/0x01/0x02): parseCommands should give up on the
	// section without panicking or returning an error.
	data := []byte{10, 0, 0, 0, 0xFF, 0xFF}

	r := &rep.Replay{}
	var err error
	assert.NotPanics(t, func() {
		err = parseCommands(data, r, Config{})
	})
	assert.NoError(t, err)
	assert.Empty(t, r.Commands.Cmds)
}
