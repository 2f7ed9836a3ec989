// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// withPHYs splices a pHYs chunk right after IHDR (which always occupies
// bytes 8..33 of an encoded PNG).
func withPHYs(data []byte, ppm uint32) []byte {
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk, 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // meters
	crc := crc32.ChecksumIEEE(chunk[4:17])
	binary.BigEndian.PutUint32(chunk[17:], crc)

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:33]...)
	out = append(out, chunk...)
	return append(out, data[33:]...)
}

func TestProbeDefaultDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 200, 100), 0o644))

	info, err := Probe(path)
	require.NoError(t, err)
	assert.Equal(t, 200, info.WidthPx)
	assert.Equal(t, 100, info.HeightPx)
	assert.InDelta(t, DefaultDPI, info.DPI, 0.001, "no metadata falls back to the default")
}

func TestProbePNGDensity(t *testing.T) {
	// 11811 pixels per meter is the canonical 300 DPI value.
	path := filepath.Join(t.TempDir(), "dense.png")
	require.NoError(t, os.WriteFile(path, withPHYs(encodePNG(t, 10, 10), 11811), 0o644))

	info, err := Probe(path)
	require.NoError(t, err)
	assert.InDelta(t, 300, info.DPI, 0.01)
}

func TestPNGDPIUnknownUnit(t *testing.T) {
	data := withPHYs(encodePNG(t, 4, 4), 11811)
	// Flip the unit byte to "unknown"; density no longer means anything.
	data[33+16] = 0
	assert.Zero(t, pngDPI(data))
}

func jfifSegment(units byte, density uint16) []byte {
	seg := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x10, // APP0, length 16
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x01, // version
		units,
		0x00, 0x00, 0x00, 0x00, // densities, patched below
		0x00, 0x00, // thumbnail
	}
	binary.BigEndian.PutUint16(seg[14:], density)
	binary.BigEndian.PutUint16(seg[16:], density)
	return seg
}

func TestJPEGDPI(t *testing.T) {
	tests := []struct {
		name    string
		units   byte
		density uint16
		want    float64
	}{
		{"dots per inch", 1, 150, 150},
		{"dots per centimeter", 2, 59, 149.86},
		{"aspect ratio only", 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, jpegDPI(jfifSegment(tt.units, tt.density)), 0.001)
		})
	}
}

func TestScaledCm(t *testing.T) {
	tests := []struct {
		name  string
		info  Info
		wantW float64
		wantH float64
	}{
		{
			name:  "wide image capped proportionally",
			info:  Info{WidthPx: 1920, HeightPx: 960, DPI: 96},
			wantW: 16.5,
			wantH: 8.25,
		},
		{
			name:  "narrow image keeps natural size",
			info:  Info{WidthPx: 96, HeightPx: 192, DPI: 96},
			wantW: 2.54,
			wantH: 5.08,
		},
		{
			name:  "high density shrinks physical size",
			info:  Info{WidthPx: 3000, HeightPx: 3000, DPI: 600},
			wantW: 12.7,
			wantH: 12.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.info.ScaledCm(16.5)
			assert.InDelta(t, tt.wantW, w, 0.001)
			assert.InDelta(t, tt.wantH, h, 0.001)
		})
	}
}

func TestProbeErrors(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "noise.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Probe(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
