/*

Package repparser implements StarCraft: Brood War replay parsing.

The package is safe for concurrent use.

Information sources:

BWHF replay parser:

https://github.com/icza/bwhf/tree/master/src/hu/belicza/andras/bwhf/control

BWAPI replay parser:

https://github.com/bwapi/bwapi/tree/master/bwapi/libReplayTool

https://github.com/bwapi/bwapi/tree/master/bwapi/include/BWAPI

https://github.com/bwapi/bwapi/tree/master/bwapi/PKLib

Command models:

https://github.com/icza/bwhf/blob/master/src/hu/belicza/andras/bwhf/model/Action.java

https://github.com/bwapi/bwapi/tree/master/bwapi/libReplayTool


jssuh replay parser:

https://github.com/neivv/jssuh

Map Data format:

http://www.staredit.net/wiki/index.php/Scenario.chk

http://blog.naver.com/PostView.nhn?blogId=wisdomswrap&logNo=60119755717&parentCategoryNo=&categoryNo=19&viewDate=&isShowPopularPosts=false&from=postView

*/
package repparser

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/bwrepstat/parser/internal/strdecode"
	"github.com/bwrepstat/parser/rep"
	"github.com/bwrepstat/parser/rep/repcmd"
	"github.com/bwrepstat/parser/rep/repcore"
	"github.com/bwrepstat/parser/repparser/repdecoder"
)

const (
	// Version is a Semver2 compatible version of the parser.
	Version = "v2.0.0"

	// maxConsecutiveUnknownCmds is the number of consecutive commands the
	// parser tolerates failing to recognize before giving up on the rest of
	// the commands section. A well-formed section resyncs within a command
	// or two; a long streak means the cursor is no longer frame-aligned.
	maxConsecutiveUnknownCmds = 10
)

var (
	// ErrNotReplayFile indicates the given file (or reader) is not a valid
	// replay file
	ErrNotReplayFile = errors.New("not a replay file")

	// ErrParsing indicates that an unexpected error occurred, which may be
	// due to corrupt / invalid replay file, or some implementation error.
	ErrParsing = errors.New("parsing")

	// ErrEndOfBuffer indicates a section's data ended before a value that
	// was expected to be there could be read.
	ErrEndOfBuffer = errors.New("end of buffer")

	// ErrDecompressionFailed indicates a compressed chunk could not be
	// decompressed by any strategy the decoder knows.
	ErrDecompressionFailed = errors.New("decompression failed")

	// ErrMalformedSection indicates a section's internal structure (its
	// sub-section or chunk framing) could not be made sense of.
	ErrMalformedSection = errors.New("malformed section")

	// ErrCancelled indicates parsing was aborted because the context
	// passed to ParseContext / ParseFileContext was cancelled.
	ErrCancelled = errors.New("parsing cancelled")
)

// logger is the package-wide diagnostic logger. It is disabled by default
// (zerolog.Nop()); call SetLogger to observe parsing internals such as
// decompression fallbacks and skipped commands.
var logger = zerolog.Nop()

// SetLogger sets the logger used to report diagnostics encountered while
// parsing (unrecognized commands, decompression fallbacks, and similar
// recoverable oddities). It is not required for normal operation.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Config holds parser configuration.
type Config struct {
	// Commands tells if the commands section is to be parsed
	Commands bool

	// MapData tells if the map data section is to be parsed
	MapData bool

	// Debug tells if debug and replay internal binaries is to be retained in the returned Replay.
	Debug bool

	_ struct{} // To prevent unkeyed literals
}

// ParseFile parses all sections from an SC:BW replay file.
func ParseFile(name string) (r *rep.Replay, err error) {
	return ParseFileConfig(name, Config{Commands: true, MapData: true})
}

// ParseFileSections parses an SC:BW replay file.
// Parsing commands and map data sections depends on the given parameters.
// Replay ID and header sections are always parsed.
func ParseFileSections(name string, commands, mapData bool) (r *rep.Replay, err error) {
	return ParseFileConfig(name, Config{Commands: commands, MapData: mapData})
}

// ParseFileConfig parses an SC:BW replay file based on the given parser configuration.
// Replay ID and header sections are always parsed.
func ParseFileConfig(name string, cfg Config) (r *rep.Replay, err error) {
	return ParseFileContext(context.Background(), name, cfg)
}

// ParseFileContext is like ParseFileConfig, but aborts early (returning
// ErrCancelled) if ctx is cancelled before parsing completes.
func ParseFileContext(ctx context.Context, name string, cfg Config) (r *rep.Replay, err error) {
	dec, err := repdecoder.NewFromFile(name)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return parseProtected(ctx, dec, cfg)
}

// Parse parses all sections of an SC:BW replay from the given byte slice.
func Parse(repData []byte) (*rep.Replay, error) {
	return ParseConfig(repData, Config{Commands: true, MapData: true})
}

// ParseSections parses an SC:BW replay from the given byte slice.
// Parsing commands and map data sections depends on the given parameters.
// Replay ID and header sections are always parsed.
func ParseSections(repData []byte, commands, mapData bool) (*rep.Replay, error) {
	return ParseConfig(repData, Config{Commands: commands, MapData: mapData})
}

// ParseConfig parses an SC:BW replay from the given byte sice based on the given parser configuration.
// Replay ID and header sections are always parsed.
func ParseConfig(repData []byte, cfg Config) (*rep.Replay, error) {
	return ParseContext(context.Background(), repData, cfg)
}

// ParseContext is like ParseConfig, but aborts early (returning
// ErrCancelled) if ctx is cancelled before parsing completes. Cancellation
// is checked between sections, which is the only place long-running work
// can safely be abandoned without leaving the Decoder mid-chunk.
func ParseContext(ctx context.Context, repData []byte, cfg Config) (*rep.Replay, error) {
	dec := repdecoder.New(repData)
	defer dec.Close()

	return parseProtected(ctx, dec, cfg)
}

// parseProtected calls parse(), but protects the function call from panics,
// in which case it returns ErrParsing (or a more specific sentinel when the
// panic value is one of this package's own errors).
func parseProtected(ctx context.Context, dec repdecoder.Decoder, cfg Config) (r *rep.Replay, err error) {
	// Input is untrusted data, protect the parsing logic.
	// It also protects against implementation bugs.
	defer func() {
		if rec := recover(); rec != nil {
			if rec == errEndOfBuffer {
				rec = ErrEndOfBuffer
			}
			if asErr, ok := rec.(error); ok && isKnownSentinel(asErr) {
				logger.Debug().Err(asErr).Msg("parsing aborted")
				err = asErr
				return
			}

			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			logger.Error().
				Interface("panic", rec).
				Str("stack", string(buf[:n])).
				Msg("parsing panicked")
			err = ErrParsing
		}
	}()

	return parse(ctx, dec, cfg)
}

// isKnownSentinel tells if err is one of the sentinel errors this package
// deliberately panics with (as opposed to an unexpected implementation bug).
func isKnownSentinel(err error) bool {
	switch err {
	case ErrEndOfBuffer, ErrDecompressionFailed, ErrMalformedSection, ErrCancelled:
		return true
	}
	return false
}

// Section describes a Section of the replay.
type Section struct {
	// ID of the section
	ID int

	// Size of the uncompressed section in bytes;
	// 0 means the Size has to be read as a section of 4 bytes
	Size int32

	// ParseFunc defines the function responsible to process (parse / interpret)
	// the section's data.
	ParseFunc func(data []byte, r *rep.Replay, cfg Config) error
}

// Sections describes the subsequent Sections of replays
var Sections = []*Section{
	{0, 0x04, parseReplayID},
	{1, 0x279, parseHeader},
	{2, 0, parseCommands},
	{3, 0, parseMapData},
}

// Named sections
var (
	SectionReplayID = Sections[0]
	SectionHeader   = Sections[1]
	SectionCommands = Sections[2]
	SectionMapData  = Sections[3]
)

// modernSectionIDs lists the trailing custom sections modern clients (and
// ShieldBattery in particular) append after MapData. Unlike the 4 core
// sections these are optional: a replay may have zero or more of them, each
// prefixed by a 4-byte ASCII tag and laid out exactly like a map data
// sub-section (tag, then a 4-byte length, then that many bytes).
var modernSectionIDs = map[string]bool{
	"SKIN": true,
	"LMTS": true,
	"BFIX": true,
	"CCLR": true,
	"GCFG": true,
}

// parse parses an SC:BW replay using the given Decoder.
func parse(ctx context.Context, dec repdecoder.Decoder, cfg Config) (*rep.Replay, error) {
	r := new(rep.Replay)

	// Determine last section that needs to be decoded / parsed:
	var lastSection *Section
	switch {
	case cfg.MapData:
		lastSection = SectionMapData
	case cfg.Commands:
		lastSection = SectionCommands
	default:
		lastSection = SectionHeader
	}

	// A replay is a sequence of sections:
	for _, s := range Sections {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}

		if err := dec.NewSection(); err != nil {
			return nil, fmt.Errorf("Decoder.NewSection() error: %v", err)
		}

		// Determine section size:
		size := s.Size
		if size == 0 {
			sizeData, err := dec.Section(4)
			if err != nil {
				return nil, fmt.Errorf("Decoder.Section() error when reading size: %v", err)
			}
			size = int32(binary.LittleEndian.Uint32(sizeData))
		}

		// Read section data
		data, err := dec.Section(size)
		if err != nil && s.ID == SectionReplayID.ID {
			err = ErrNotReplayFile // In case of Replay ID section return special error
		}
		if err != nil {
			return nil, fmt.Errorf("Decoder.Section() error: %v", err)
		}

		// Need to process?
		switch {
		case s == SectionCommands && !cfg.Commands:
		case s == SectionMapData && !cfg.MapData:
		default:
			// Process section data
			if err = s.ParseFunc(data, r, cfg); err != nil {
				return nil, fmt.Errorf("ParseFunc() error (sectionID: %d): %v", s.ID, err)
			}

			if s == SectionCommands && len(data) > 0 && len(r.Commands.Cmds) == 0 {
				if recovered := recoverCommandsSection(data); recovered != nil {
					logger.Warn().
						Int("recoveredBytes", len(recovered)).
						Msg("commands section yielded no commands, retrying against a recovered byte stream")
					retryCommandsSection(recovered, r, cfg)
				}
			}
		}

		if s == lastSection {
			if s == SectionMapData {
				parseModernSections(ctx, dec, r, cfg)
			}
			break
		}
	}

	r.Computed = r.Compute()

	return r, nil
}

// parseModernSections reads the trailing custom sections modern replays
// (chiefly ShieldBattery-recorded ones) may append after MapData. Each one
// is a flat {id [4]byte, size uint32, raw []byte} record with no checksum
// or chunking of its own, unlike the core sections, so it's read with
// RawBytes rather than Section. Running out of sections here is expected
// and not an error: most replays have none of these.
func parseModernSections(ctx context.Context, dec repdecoder.Decoder, r *rep.Replay, cfg Config) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := dec.NewSection(); err != nil {
			return // No more sections, nothing unusual about that.
		}

		idData, err := dec.RawBytes(4)
		if err != nil {
			return
		}

		sizeData, err := dec.RawBytes(4)
		if err != nil {
			return
		}
		size := int32(binary.LittleEndian.Uint32(sizeData))

		data, err := dec.RawBytes(size)
		if err != nil {
			logger.Debug().Err(err).Msg("failed to read trailing modern section")
			return
		}

		rep.ApplyModernSection(r, string(idData), data)
	}
}

// repIDs is the possible valid content of the Replay ID section
var repIDs = [][]byte{
	[]byte("seRS"), // Starting from 1.21
	[]byte("reRS"), // Up until 1.20. Abbreviation for replay ReSource?
}

// parseReplayID processes the replay ID data.
func parseReplayID(data []byte, r *rep.Replay, cfg Config) (err error) {
	for _, repID := range repIDs {
		if bytes.Equal(data, repID) {
			return
		}
	}

	return ErrNotReplayFile
}

var headerFields = []*rep.DebugFieldDescriptor{
	{Offset: 0x00, Length: 1, Name: "Engine"},
	{Offset: 0x01, Length: 4, Name: "Frames"},
	{Offset: 0x08, Length: 8, Name: "Start time"},
	{Offset: 0x18, Length: 28, Name: "Title"},
	{Offset: 0x34, Length: 2, Name: "Map width"},
	{Offset: 0x36, Length: 2, Name: "Map height"},
	{Offset: 0x39, Length: 1, Name: "Available slots count"},
	{Offset: 0x3a, Length: 1, Name: "Speed"},
	{Offset: 0x3c, Length: 2, Name: "Type"},
	{Offset: 0x3e, Length: 2, Name: "SubType"},
	{Offset: 0x48, Length: 24, Name: "Host"},
	{Offset: 0x61, Length: 26, Name: "Map"},
	{Offset: 0xa1, Length: 432, Name: "Player structs (12)"},
	{Offset: 0xa1, Length: 36, Name: "Player 1 struct"},
	{Offset: 0xa1, Length: 2, Name: "Player 1 slot ID"},
	{Offset: 0xa1 + 4, Length: 1, Name: "Player 1 ID"},
	{Offset: 0xa1 + 8, Length: 1, Name: "Player 1 type"},
	{Offset: 0xa1 + 9, Length: 1, Name: "Player 1 race"},
	{Offset: 0xa1 + 10, Length: 1, Name: "Player 1 team"},
	{Offset: 0xa1 + 11, Length: 25, Name: "Player 1 name"},
	{Offset: 0xa1 + 36, Length: 36, Name: "Player 2 struct"},
	{Offset: 0x251, Length: 8 * 4, Name: "Player colors (8)"},
	{Offset: 0x251, Length: 4, Name: "Player 1 color"},
	{Offset: 0x251 + 4, Length: 4, Name: "Player 2 color"},
}

// parseHeader processes the replay header data.
func parseHeader(data []byte, r *rep.Replay, cfg Config) error {
	bo := binary.LittleEndian // ByteOrder reader: little-endian

	h := new(rep.Header)
	r.Header = h
	if cfg.Debug {
		h.Debug = &rep.HeaderDebug{
			Data:   data,
			Fields: headerFields,
		}
	}

	h.Engine = repcore.EngineByID(data[0x00])
	h.Frames = repcore.Frame(bo.Uint32(data[0x01:]))
	h.StartTime = time.Unix(int64(bo.Uint32(data[0x08:])), 0) // replay stores seconds since EPOCH
	h.Title, h.RawTitle = strdecode.CString(data[0x18 : 0x18+28])
	h.MapWidth = bo.Uint16(data[0x34:])
	h.MapHeight = bo.Uint16(data[0x36:])
	h.AvailSlotsCount = data[0x39]
	h.Speed = repcore.SpeedByID(data[0x3a])
	h.Type = repcore.GameTypeByID(bo.Uint16(data[0x3c:]))
	h.SubType = bo.Uint16(data[0x3e:])
	h.Host, h.RawHost = strdecode.CString(data[0x48 : 0x48+24])
	h.Map, h.RawMap = strdecode.CString(data[0x61 : 0x61+26])

	// Parse players
	const (
		slotsCount = 12
		maxPlayers = 8
	)
	h.PIDPlayers = make(map[byte]*rep.Player, slotsCount)
	h.Slots = make([]*rep.Player, slotsCount)
	playerStructs := data[0xa1 : 0xa1+432]
	for i := range h.Slots {
		p := new(rep.Player)
		h.Slots[i] = p
		ps := playerStructs[i*36 : i*36+432/slotsCount]
		p.SlotID = bo.Uint16(ps)
		p.ID = ps[4]
		p.Type = repcore.PlayerTypeByID(ps[8])
		p.Race = repcore.RaceByID(ps[9])
		p.Team = ps[10]
		p.Name, p.RawName = strdecode.CString(ps[11 : 11+25])

		if i < maxPlayers {
			p.Color = repcore.ColorByID(bo.Uint32(data[0x251+i*4:]))
		}

		// Filter real players:
		if p.Name != "" {
			h.OrigPlayers = append(h.OrigPlayers, p)
			h.PIDPlayers[p.ID] = p
		}
	}

	// If game type is melee or OneOnOne, all players' teams may be set to 0 or 1.
	// Heuristic improvements: If 2 players only and their teams are the same, change teams to 1 and 2,
	// and so matchup will be e.g. ZvT instead of ZT,
	// and winner detection can also work (because teams will be different).
	if (h.Type == repcore.GameTypeMelee || h.Type == repcore.GameType1v1) && len(h.OrigPlayers) == 2 &&
		h.OrigPlayers[0].Team == h.OrigPlayers[1].Team {
		h.OrigPlayers[0].Team = 1
		h.OrigPlayers[1].Team = 2
	}
	// Also if game type is FFA, teams are set to 0.
	// Assign teams incrementing from 1.
	if h.Type == repcore.GameTypeFFA {
		for i, p := range h.OrigPlayers {
			p.Team = byte(i + 1)
		}
	}

	// Fill Players in team order:
	h.Players = make([]*rep.Player, len(h.OrigPlayers))
	copy(h.Players, h.OrigPlayers)
	sort.SliceStable(h.Players, func(i int, j int) bool {
		return h.Players[i].Team < h.Players[j].Team
	})

	return nil
}

// recoverCommandsSection is a last resort tried when the commands section
// decoded cleanly but produced zero commands, which usually means the
// section's own chunk framing (not the command framing parseCommands
// handles) was shifted or malformed. It tries, in order, a zlib-magic scan
// and greedy inflate, then a scan for a plausible (playerID, typeID) byte
// pair to resync on. It returns nil if neither strategy found anything.
func recoverCommandsSection(data []byte) []byte {
	if recovered := repdecoder.RecoverCompressedStream(data); recovered != nil {
		return recovered
	}
	return repdecoder.ScanOpcodeWindows(data, repcmd.IsKnownTypeID)
}

// retryCommandsSection re-runs parseCommands against a recovered byte
// stream, on a best-effort basis: recovered bytes are a guess by
// construction, so a panic out of this attempt (e.g. errEndOfBuffer from a
// guess that ran off the end) is swallowed rather than allowed to fail
// parsing that otherwise already succeeded.
func retryCommandsSection(recovered []byte, r *rep.Replay, cfg Config) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Debug().Interface("panic", rec).Msg("commands section recovery attempt failed")
		}
	}()

	if err := parseCommands(recovered, r, cfg); err != nil {
		logger.Debug().Err(err).Msg("commands section recovery attempt failed")
	}
}

// parseCommands processes the players' commands data.
func parseCommands(data []byte, r *rep.Replay, cfg Config) error {
	cs := new(rep.Commands)
	r.Commands = cs
	if cfg.Debug {
		cs.Debug = &rep.CommandsDebug{Data: data}
	}

	br := &binReader{b: data}
	size := uint32(len(data))
	unknownStreak := 0
	var lastFrame uint32

	for br.pos < size {
		startPos := br.pos
		frame := br.getUint32()

		// Command block in this frame
		cmdBlockSize := br.getByte()                    // cmd block size (remaining)
		cmdBlockEndPos := br.pos + uint32(cmdBlockSize) // Cmd block end position

		if cmdBlockEndPos > size {
			// The declared framing runs past the section: the cursor has
			// desynced from block boundaries. Fall back to the legacy
			// inline frame-sync scheme before giving up on the rest of
			// the section.
			br.setPos(startPos)
			syncFrame, syncEnd, ok := readFrameSyncBlock(br, size, lastFrame)
			if !ok {
				break
			}
			frame, cmdBlockEndPos = syncFrame, syncEnd
		}
		lastFrame = frame

		for br.pos < cmdBlockEndPos {
			parseOk := true

			var cmd repcmd.Cmd
			base := &repcmd.Base{
				Frame: repcore.Frame(frame),
			}
			base.PlayerID = br.getByte()
			base.Type = repcmd.TypeByID(br.getByte())

			switch base.Type.ID { // Try to list in frequency order:

			case repcmd.TypeIDRightClick:
				rccmd := &repcmd.RightClickCmd{Base: base}
				rccmd.Pos.X = br.getUint16()
				rccmd.Pos.Y = br.getUint16()
				rccmd.UnitTag = repcmd.UnitTag(br.getUint16())
				rccmd.Unit = repcmd.UnitByID(br.getUint16())
				rccmd.Queued = br.getByte() != 0
				cmd = rccmd

			case repcmd.TypeIDSelect, repcmd.TypeIDSelectAdd, repcmd.TypeIDSelectRemove:
				count := br.getByte()
				selectCmd := &repcmd.SelectCmd{
					Base:     base,
					UnitTags: make([]repcmd.UnitTag, count),
				}
				for i := byte(0); i < count; i++ {
					selectCmd.UnitTags[i] = repcmd.UnitTag(br.getUint16())
				}
				cmd = selectCmd

			case repcmd.TypeIDHotkey:
				hotkeyCmd := &repcmd.HotkeyCmd{Base: base}
				hotkeyCmd.HotkeyType = repcmd.HotkeyTypeByID(br.getByte())
				hotkeyCmd.Group = br.getByte()
				cmd = hotkeyCmd

			case repcmd.TypeIDTrain, repcmd.TypeIDUnitMorph:
				cmd = &repcmd.TrainCmd{
					Base: base,
					Unit: repcmd.UnitByID(br.getUint16()),
				}

			case repcmd.TypeIDTargetedOrder:
				tocmd := &repcmd.TargetedOrderCmd{Base: base}
				tocmd.Pos.X = br.getUint16()
				tocmd.Pos.Y = br.getUint16()
				tocmd.UnitTag = repcmd.UnitTag(br.getUint16())
				tocmd.Unit = repcmd.UnitByID(br.getUint16())
				tocmd.Order = repcmd.OrderByID(br.getByte())
				tocmd.Queued = br.getByte() != 0
				cmd = tocmd

			case repcmd.TypeIDBuild:
				order := repcmd.OrderByID(br.getByte())
				pos := repcore.Point{X: br.getUint16(), Y: br.getUint16()}
				unit := repcmd.UnitByID(br.getUint16())

				if order.IsLand() {
					cmd = &repcmd.LandCmd{Base: base, Order: order, Pos: pos, Unit: unit}
				} else {
					cmd = &repcmd.BuildCmd{Base: base, Order: order, Pos: pos, Unit: unit}
				}

			case repcmd.TypeIDStop, repcmd.TypeIDBurrow, repcmd.TypeIDUnburrow,
				repcmd.TypeIDReturnCargo, repcmd.TypeIDHoldPosition, repcmd.TypeIDUnloadAll,
				repcmd.TypeIDUnsiege, repcmd.TypeIDSiege, repcmd.TypeIDCloack, repcmd.TypeIDDecloack:
				cmd = &repcmd.QueueableCmd{
					Base:   base,
					Queued: br.getByte() != 0,
				}

			case repcmd.TypeIDLeaveGame:
				cmd = &repcmd.LeaveGameCmd{
					Base:   base,
					Reason: repcmd.LeaveReasonByID(br.getByte()),
				}

			case repcmd.TypeIDMinimapPing:
				pingCmd := &repcmd.MinimapPingCmd{Base: base}
				pingCmd.Pos.X = br.getUint16()
				pingCmd.Pos.Y = br.getUint16()
				cmd = pingCmd

			case repcmd.TypeIDChat:
				chatCmd := &repcmd.ChatCmd{Base: base}
				chatCmd.SenderSlotID = br.getByte()
				chatCmd.Message = strdecode.Decode(rawUntilNUL(br.readBytes(80)))
				cmd = chatCmd

			case repcmd.TypeIDVision:
				bits := br.getUint16()
				visionCmd := &repcmd.VisionCmd{
					Base: base,
				}
				// There is 1 bit for each slot, 0x01: shared vision for that slot
				for i := byte(0); i < 12; i++ {
					if bits&0x01 != 0 {
						visionCmd.SlotIDs = append(visionCmd.SlotIDs, i)
					}
					bits >>= 1
				}
				cmd = visionCmd

			case repcmd.TypeIDAlliance:
				bits := br.getUint32()
				allianceCmd := &repcmd.AllianceCmd{
					Base: base,
				}
				// There are 2 bits for each slot, 0x00: not allied, 0x1: allied, 0x02: allied victory
				for i := byte(0); i < 11; i++ { // only 11 slots, 12th is always 0x01 or 0x02
					if x := bits & 0x03; x != 0 {
						allianceCmd.SlotIDs = append(allianceCmd.SlotIDs, i)
						if x == 2 {
							allianceCmd.AlliedVictory = true
						}
					}
					bits >>= 2
				}
				cmd = allianceCmd

			case repcmd.TypeIDGameSpeed:
				cmd = &repcmd.GameSpeedCmd{
					Base:  base,
					Speed: repcore.SpeedByID(br.getByte()),
				}

			case repcmd.TypeIDCancelTrain:
				cmd = &repcmd.CancelTrainCmd{
					Base:    base,
					UnitTag: repcmd.UnitTag(br.getUint16()),
				}

			case repcmd.TypeIDUnload:
				cmd = &repcmd.UnloadCmd{
					Base:    base,
					UnitTag: repcmd.UnitTag(br.getUint16()),
				}

			case repcmd.TypeIDLiftOff:
				liftOffCmd := &repcmd.LiftOffCmd{Base: base}
				liftOffCmd.Pos.X = br.getUint16()
				liftOffCmd.Pos.Y = br.getUint16()
				cmd = liftOffCmd

			case repcmd.TypeIDTech:
				cmd = &repcmd.TechCmd{
					Base: base,
					Tech: repcmd.TechByID(br.getByte()),
				}

			case repcmd.TypeIDUpgrade:
				cmd = &repcmd.UpgradeCmd{
					Base:    base,
					Upgrade: repcmd.UpgradeByID(br.getByte()),
				}

			case repcmd.TypeIDBuildingMorph:
				cmd = &repcmd.BuildingMorphCmd{
					Base: base,
					Unit: repcmd.UnitByID(br.getUint16()),
				}

			case repcmd.TypeIDLatency:
				cmd = &repcmd.LatencyCmd{
					Base:    base,
					Latency: repcmd.LatencyTypeByID(br.getByte()),
				}

			case repcmd.TypeIDCheat:
				cheatCmd := &repcmd.CheatCmd{Base: base}
				cheatCmd.CheatsBitmap = br.getUint32()
				cheatCmd.CheatCodes = repcmd.CheatCodesByBitMap(cheatCmd.CheatsBitmap)
				cmd = cheatCmd

			case repcmd.TypeIDSaveGame, repcmd.TypeIDLoadGame:
				count := br.getUint32()
				br.skip(count)

			// NO ADDITIONAL DATA:

			case repcmd.TypeIDKeepAlive:
			case repcmd.TypeIDRestartGame:
			case repcmd.TypeIDPause:
			case repcmd.TypeIDResume:
			case repcmd.TypeIDCancelBuild:
			case repcmd.TypeIDCancelMorph:
			case repcmd.TypeIDCarrierStop:
			case repcmd.TypeIDReaverStop:
			case repcmd.TypeIDOrderNothing:
			case repcmd.TypeIDTrainFighter:
			case repcmd.TypeIDMergeArchon:
			case repcmd.TypeIDCancelNuke:
			case repcmd.TypeIDCancelTech:
			case repcmd.TypeIDCancelUpgrade:
			case repcmd.TypeIDCancelAddon:
			case repcmd.TypeIDStim:
			case repcmd.TypeIDVoiceEnable:
			case repcmd.TypeIDVoiceDisable:
			case repcmd.TypeIDStartGame:
			case repcmd.TypeIDBriefingStart:
			case repcmd.TypeIDMergeDarkArchon:
			case repcmd.TypeIDMakeGamePublic:

			// DON'T CARE COMMANDS:

			case repcmd.TypeIDSync:
				br.skip(6)
			case repcmd.TypeIDVoiceSquelch:
				br.skip(1)
			case repcmd.TypeIDVoiceUnsquelch:
				br.skip(1)
			case repcmd.TypeIDDownloadPercentage:
				br.skip(1)
			case repcmd.TypeIDChangeGameSlot:
				br.skip(5)
			case repcmd.TypeIDNewNetPlayer:
				br.skip(7)
			case repcmd.TypeIDJoinedGame:
				br.skip(17)
			case repcmd.TypeIDChangeRace:
				br.skip(2)
			case repcmd.TypeIDTeamGameTeam:
				br.skip(1)
			case repcmd.TypeIDUMSTeam:
				br.skip(1)
			case repcmd.TypeIDMeleeTeam:
				br.skip(2)
			case repcmd.TypeIDSwapPlayers:
				br.skip(2)
			case repcmd.TypeIDSavedData:
				br.skip(12)
			case repcmd.TypeIDReplaySpeed:
				br.skip(9)

			// Variants introduced with 1.21, which added a 2-byte pad field
			// to several command bodies (see DESIGN.md for how the byte
			// values of these type IDs were chosen).

			case repcmd.TypeIDRightClick121:
				rccmd := &repcmd.RightClickCmd{Base: base}
				rccmd.Pos.X = br.getUint16()
				rccmd.Pos.Y = br.getUint16()
				rccmd.UnitTag = repcmd.UnitTag(br.getUint16())
				br.getUint16() // pad, always 0
				rccmd.Unit = repcmd.UnitByID(br.getUint16())
				rccmd.Queued = br.getByte() != 0
				cmd = rccmd

			case repcmd.TypeIDTargetedOrder121:
				tocmd := &repcmd.TargetedOrderCmd{Base: base}
				tocmd.Pos.X = br.getUint16()
				tocmd.Pos.Y = br.getUint16()
				tocmd.UnitTag = repcmd.UnitTag(br.getUint16())
				br.getUint16() // pad, always 0
				tocmd.Unit = repcmd.UnitByID(br.getUint16())
				tocmd.Order = repcmd.OrderByID(br.getByte())
				tocmd.Queued = br.getByte() != 0
				cmd = tocmd

			case repcmd.TypeIDUnload121:
				ucmd := &repcmd.UnloadCmd{Base: base}
				ucmd.UnitTag = repcmd.UnitTag(br.getUint16())
				br.getUint16() // pad, always 0
				cmd = ucmd

			case repcmd.TypeIDSelect121, repcmd.TypeIDSelectAdd121, repcmd.TypeIDSelectRemove121:
				count := br.getByte()
				selectCmd := &repcmd.SelectCmd{
					Base:     base,
					UnitTags: make([]repcmd.UnitTag, count),
				}
				for i := byte(0); i < count; i++ {
					selectCmd.UnitTags[i] = repcmd.UnitTag(br.getUint16())
					br.getUint16() // pad, always 0
				}
				cmd = selectCmd

			default:
				// We don't know how to parse this command, we have to skip
				// to the end of the command block
				// (potentially skipping additional commands...)
				var remBytes []byte
				if br.pos <= cmdBlockEndPos && cmdBlockEndPos <= uint32(len(br.b)) {
					remBytes = br.b[br.pos:cmdBlockEndPos]
				}
				logger.Debug().
					Uint8("typeID", base.Type.ID).
					Int32("frame", int32(base.Frame)).
					Uint8("playerID", base.PlayerID).
					Bytes("remaining", remBytes).
					Msg("skipping unrecognized command")
				pec := &repcmd.ParseErrCmd{Base: base}
				if len(cs.Cmds) > 0 {
					pec.PrevCmd = cs.Cmds[len(cs.Cmds)-1]
				}
				cs.ParseErrCmds = append(cs.ParseErrCmds, pec)
				br.pos = cmdBlockEndPos
				parseOk = false

				unknownStreak++
				if unknownStreak >= maxConsecutiveUnknownCmds {
					logger.Warn().
						Int("streak", unknownStreak).
						Msg("too many consecutive unrecognized commands, abandoning commands section")
					return nil
				}
			}

			if parseOk {
				unknownStreak = 0
				if cmd == nil {
					cs.Cmds = append(cs.Cmds, base)
				} else {
					cs.Cmds = append(cs.Cmds, cmd)
				}
			}
		}

		br.pos = cmdBlockEndPos
	}

	return nil
}

// rawUntilNUL trims a byte slice at its first NUL byte and returns it as a
// string, for callers that want the raw bytes decoded via strdecode.Decode
// rather than the combined strdecode.CString helper (e.g. chat messages,
// which aren't a fixed replay header field).
func rawUntilNUL(data []byte) string {
	for i, ch := range data {
		if ch == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// parseMapData processes the map data data.
func parseMapData(data []byte, r *rep.Replay, cfg Config) error {
	md := new(rep.MapData)
	r.MapData = md
	if cfg.Debug {
		md.Debug = &rep.MapDataDebug{Data: data}
	}

	// Map data section is a sequence of sub-sections:
	br := &binReader{b: data}
	size := uint32(len(data))
	for br.pos < size {
		id := br.getString(4)
		ssSize := br.getUint32()    // sub-section size (remaining)
		ssEndPos := br.pos + ssSize // sub-section end position

		switch id {
		case "VER ":
			md.Version = br.getUint16()
		case "ERA ": // Tile set sub-section
			md.TileSet = repcore.TileSetByID(br.getUint16() & 0x07)
		case "DIM ": // Dimension sub-section
			// If map has a non-standard size, the replay header contains
			// invalid map size, this is the correct one.
			width := br.getUint16()
			height := br.getUint16()
			if width <= 256 && height <= 256 {
				if width > r.Header.MapWidth {
					r.Header.MapWidth = width
				}
				if height > r.Header.MapHeight {
					r.Header.MapHeight = height
				}
			}
		case "MTXM": // Tile sub-section
			// map_width*map_height (a tile is an uint16 value)
			maxI := ssSize / 2
			// Note: Sometimes map is broken into multiple sections.
			// The first one is the biggest (whole map size),
			// but the beginning of map is empty. The subsequent MTXM
			// sub-sections will fill the whole at the beginning.
			// An example was found when the first MTXM section was only
			// 8 elements, and the next was the whole map, beginning also filled.
			// Therefore if currently allocated Tile is small, a new one is allocated.
			if len(md.Tiles) < int(maxI) {
				md.Tiles = make([]uint16, maxI)
			}
			for i := uint32(0); i < maxI; i++ {
				md.Tiles[i] = br.getUint16()
			}
		case "UNIT": // Unit sub-section
			for br.pos < ssEndPos {
				unitEndPos := br.pos + 36 // 36 bytes for each unit

				br.skip(4) // uint32 unit class instance ("serial number")
				x := br.getUint16()
				y := br.getUint16()
				unitID := br.getUint16()
				br.skip(2)              // uint16 Type of relation to another building (i.e. add-on, nydus link)
				br.skip(2)              // uint16 Flags of special properties (e.g. cloacked, burrowed etc.)
				br.skip(2)              // uint16 valid elements flag
				ownerID := br.getByte() // 0-based SlotID

				switch unitID {
				case repcmd.UnitIDMineralField1, repcmd.UnitIDMineralField2, repcmd.UnitIDMineralField3:
					md.MineralFields = append(md.MineralFields, repcore.Point{X: x, Y: y})
				case repcmd.UnitIDVespeneGeyser:
					md.Geysers = append(md.Geysers, repcore.Point{X: x, Y: y})
				case repcmd.UnitIDStartLocation:
					md.StartLocations = append(md.StartLocations,
						rep.StartLocation{Point: repcore.Point{X: x, Y: y}, SlotID: ownerID},
					)
				}

				// Skip unprocessed unit data:
				br.setPos(unitEndPos)
			}
		}

		// Part or all of the sub-section might be unprocessed, skip the unprocessed bytes
		br.setPos(ssEndPos)
	}

	return nil
}
