/*

This file implements decoding the modern (starting from 1.18) replay format.

Decompression normally succeeds on the first, straightforward attempt
(treat the chunk as a standard zlib stream). Some replays recorded by
third-party clients have been observed with a chunk that is valid DEFLATE
data but missing or shifted zlib framing; for those, a small chain of
fallback strategies is tried, and the best-scoring plausible result (see
validate.go) is kept.

*/

package repdecoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// modernDecoder is the Decoder implementation for modern replays.
type modernDecoder struct {
	decoder

	// zr is the reused zlib reader for the straightforward decompression path.
	zr io.ReadCloser
}

func (d *modernDecoder) Section(size int32) (result []byte, err error) {
	var count int32
	if count, result, err = d.sectionHeader(size); result != nil || err != nil {
		return
	}

	resBuf := bytes.NewBuffer(make([]byte, 0, size))

	for ; count > 0; count-- {
		var length int32 // compressed length of the chunk
		if length, err = d.readInt32(); err != nil {
			return
		}

		if int32(len(d.buf)) < length {
			d.buf = make([]byte, length)
		}
		compressed := d.buf[:length]
		if _, err = io.ReadFull(d.r, compressed); err != nil {
			return nil, err
		}

		if length <= 4 {
			// Not compressed.
			if _, err = resBuf.Write(compressed); err != nil {
				return
			}
			continue
		}

		decompressed, derr := d.decompressChunk(compressed)
		if derr != nil {
			return nil, derr
		}
		if _, err = resBuf.Write(decompressed); err != nil {
			return
		}
	}

	return resBuf.Bytes(), nil
}

// decompressChunk tries the standard zlib path first, then falls back to a
// chain of raw-deflate strategies, keeping the best-scoring plausible
// result.
func (d *modernDecoder) decompressChunk(compressed []byte) ([]byte, error) {
	if out, err := d.decompressZlib(compressed); err == nil && isPlausible(out) {
		return out, nil
	}

	var (
		best      []byte
		bestScore = -1
	)

	candidates := [][]byte{
		compressed,               // raw inflate as-is
		skipBytes(compressed, 2), // raw inflate after skipping a 2-byte (possibly truncated zlib) header
	}
	for off := 1; off <= 9 && off < len(compressed); off++ {
		candidates = append(candidates, compressed[off:])
	}

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		out, err := rawInflate(candidate)
		if err != nil {
			continue
		}
		if score := densityScore(out); score > bestScore {
			best, bestScore = out, score
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no decompression strategy succeeded", ErrDecompressionFailed)
	}

	return best, nil
}

// decompressZlib decompresses compressed as a standard zlib stream,
// reusing the decoder's zlib.Reader across chunks when possible.
func (d *modernDecoder) decompressZlib(compressed []byte) ([]byte, error) {
	var err error
	if resetter, ok := d.zr.(zlib.Resetter); ok {
		err = resetter.Reset(bytes.NewReader(compressed), nil)
	} else {
		d.zr, err = zlib.NewReader(bytes.NewReader(compressed))
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, d.zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rawInflate decompresses data as a headerless DEFLATE stream.
func rawInflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, fr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// skipBytes returns data[n:], or nil if data is shorter than n bytes.
func skipBytes(data []byte, n int) []byte {
	if len(data) <= n {
		return nil
	}
	return data[n:]
}
