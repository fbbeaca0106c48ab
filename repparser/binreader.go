// This file contains the bounds-checked binary reader used throughout the
// parser. It generalizes the teacher's original sliceReader (which trusted
// its callers and simply panicked on a bad slice index) into a reader whose
// bounds checks are explicit and whose failure is a named, recoverable
// error rather than an arbitrary runtime panic.

package repparser

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// errEndOfBuffer is the panic value used to unwind out of a binReader
// method when a read would run past the end of the buffer. It is
// recovered at the package's public API boundary (parseProtected) and
// surfaced as ErrEndOfBuffer.
var errEndOfBuffer = errors.New("end of buffer")

// binReader aids bounds-checked reading of data from a byte slice.
type binReader struct {
	// b is the byte slice to read from
	b []byte

	// pos is the index of the next byte to read
	pos uint32
}

// canRead tells if n more bytes can be read without running past the end
// of the buffer.
func (r *binReader) canRead(n uint32) bool {
	return uint64(r.pos)+uint64(n) <= uint64(len(r.b))
}

// require panics with errEndOfBuffer if n more bytes cannot be read.
func (r *binReader) require(n uint32) {
	if !r.canRead(n) {
		panic(errEndOfBuffer)
	}
}

// remaining returns the number of unread bytes.
func (r *binReader) remaining() uint32 {
	return uint32(len(r.b)) - r.pos
}

// setPos sets the cursor to an absolute position.
func (r *binReader) setPos(pos uint32) {
	r.pos = pos
}

// skip advances the cursor by n bytes.
func (r *binReader) skip(n uint32) {
	r.require(n)
	r.pos += n
}

// getByte returns the next byte.
func (r *binReader) getByte() (v byte) {
	r.require(1)
	v, r.pos = r.b[r.pos], r.pos+1
	return
}

// getUint16 returns the next 2 bytes as an uint16 value (little-endian).
func (r *binReader) getUint16() (v uint16) {
	r.require(2)
	v, r.pos = binary.LittleEndian.Uint16(r.b[r.pos:]), r.pos+2
	return
}

// getUint32 returns the next 4 bytes as an uint32 value (little-endian).
func (r *binReader) getUint32() (v uint32) {
	r.require(4)
	v, r.pos = binary.LittleEndian.Uint32(r.b[r.pos:]), r.pos+4
	return
}

// getString returns the next size bytes as a string, with no further
// decoding applied.
func (r *binReader) getString(size uint32) (v string) {
	r.require(size)
	v, r.pos = string(r.b[r.pos:r.pos+size]), r.pos+size
	return
}

// readBytes returns a copy of the next size bytes.
func (r *binReader) readBytes(size uint32) (v []byte) {
	r.require(size)
	v = make([]byte, size)
	r.pos += uint32(copy(v, r.b[r.pos:]))
	return
}

// readFixedString consumes exactly n bytes and returns them unmodified;
// callers apply the string decoding try-chain (internal/strdecode)
// themselves, since the raw bytes are independently useful for debugging.
func (r *binReader) readFixedString(n uint32) []byte {
	return r.readBytes(n)
}

// hexDump renders length bytes starting at offset as a classic hex dump
// (16 bytes per line, hex followed by an ASCII gutter), bounded to the
// buffer's actual length.
func (r *binReader) hexDump(offset, length uint32) string {
	end := offset + length
	if end > uint32(len(r.b)) {
		end = uint32(len(r.b))
	}
	if offset > end {
		return ""
	}

	data := r.b[offset:end]

	var sb []byte
	for i := 0; i < len(data); i += 16 {
		j := i + 16
		if j > len(data) {
			j = len(data)
		}
		line := data[i:j]

		sb = append(sb, fmt.Sprintf("%08x  ", offset+uint32(i))...)
		for k := 0; k < 16; k++ {
			if k < len(line) {
				sb = append(sb, fmt.Sprintf("%02x ", line[k])...)
			} else {
				sb = append(sb, "   "...)
			}
			if k == 7 {
				sb = append(sb, ' ')
			}
		}
		sb = append(sb, " |"...)
		for _, c := range line {
			if c >= 0x20 && c <= 0x7E {
				sb = append(sb, c)
			} else {
				sb = append(sb, '.')
			}
		}
		sb = append(sb, "|\n"...)
	}

	return string(sb)
}
