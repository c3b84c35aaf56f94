package chart

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/tougshire/orgchart/pkg/errors"
)

const (
	pngSignatureLen = 8
	ihdrChunkLen    = 4 + 4 + 13 + 4 // length, type, data, crc
	inchesPerMeter  = 39.3700787
)

// EncodePNG writes img as PNG to w, recording dpi in a pHYs chunk placed
// right after the header.
func EncodePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	data := buf.Bytes()
	split := pngSignatureLen + ihdrChunkLen
	if len(data) < split {
		return errors.New(errors.ErrCodeInternal, "encode png: short output")
	}

	if _, err := w.Write(data[:split]); err != nil {
		return err
	}
	if dpi > 0 {
		if _, err := w.Write(physChunk(dpi)); err != nil {
			return err
		}
	}
	_, err := w.Write(data[split:])
	return err
}

// physChunk builds a pHYs chunk with equal horizontal and vertical density
// in pixels per meter.
func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) * inchesPerMeter))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
