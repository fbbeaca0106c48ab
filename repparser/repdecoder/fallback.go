/*

This file implements last-resort recovery scans for a commands section
whose normal chunked decompression produced nothing usable (for example,
a replay recorded by a third-party client with shifted or missing chunk
framing). Both scans are explicitly bounded by a byte budget and meant to
be tried only after the regular decoder has already failed; neither is
part of the normal decode path.

*/

package repdecoder

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

const (
	// fallbackScanWindow bounds how much of the raw input the recovery
	// scans will look at, so a pathological file can't turn recovery into
	// an unbounded scan.
	fallbackScanWindow = 1 << 20 // 1 MiB

	// maxFallbackZlibCandidates bounds how many zlib-magic offsets
	// RecoverCompressedStream will attempt to inflate.
	maxFallbackZlibCandidates = 64
)

// zlibFlevels are the second-byte values a standards-compliant zlib header
// (first byte 0x78) may carry, one per compression level bucket.
var zlibFlevels = [...]byte{0x01, 0x5e, 0x9c, 0xda}

// RecoverCompressedStream scans raw for zlib stream headers and greedily
// inflates from each candidate offset, concatenating whatever inflates
// cleanly. It returns nil if nothing in raw inflated to anything.
func RecoverCompressedStream(raw []byte) []byte {
	if len(raw) > fallbackScanWindow {
		raw = raw[:fallbackScanWindow]
	}

	var out bytes.Buffer
	found := 0
	for i := 0; i < len(raw)-1 && found < maxFallbackZlibCandidates; i++ {
		if raw[i] != 0x78 || !isZlibFlevel(raw[i+1]) {
			continue
		}

		chunk, err := inflateZlibAt(raw[i:])
		if err != nil || len(chunk) == 0 {
			continue
		}
		out.Write(chunk)
		found++
	}

	if out.Len() == 0 {
		return nil
	}
	return out.Bytes()
}

func isZlibFlevel(b byte) bool {
	for _, f := range zlibFlevels {
		if b == f {
			return true
		}
	}
	return false
}

func inflateZlibAt(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

// ScanOpcodeWindows is tried when even zlib-magic scanning finds nothing.
// It slides across raw looking for a byte pair shaped like a command's
// (playerID, typeID) header — a plausible player slot (0-11) followed by a
// type ID isKnownType recognizes — and returns raw starting at the first
// such window, on the theory that a real command stream starts there even
// if everything before it is noise. isKnownType lets the caller supply
// command-type knowledge without this package depending on the command
// model package.
func ScanOpcodeWindows(raw []byte, isKnownType func(byte) bool) []byte {
	if len(raw) > fallbackScanWindow {
		raw = raw[:fallbackScanWindow]
	}

	const maxPlayerSlot = 11

	for i := 0; i < len(raw)-1; i++ {
		playerID, typeID := raw[i], raw[i+1]
		if playerID > maxPlayerSlot || !isKnownType(typeID) {
			continue
		}
		return raw[i:]
	}

	return nil
}
