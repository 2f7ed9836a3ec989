// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images probes image files for pixel dimensions and resolution
// metadata and converts them to physical page sizes.
package images

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"os"

	// Registered decoders for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultDPI is assumed when a file carries no resolution metadata or
// declares a zero density.
const DefaultDPI = 96

// Info describes an image's pixel dimensions and resolution.
type Info struct {
	WidthPx  int
	HeightPx int
	DPI      float64
}

// Probe reads an image file header and returns its dimensions and DPI.
func Probe(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	var dpi float64
	switch format {
	case "png":
		dpi = pngDPI(data)
	case "jpeg":
		dpi = jpegDPI(data)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	return Info{WidthPx: cfg.Width, HeightPx: cfg.Height, DPI: dpi}, nil
}

// ScaledCm returns the rendered width and height in centimeters. Widths
// above maxCm scale down proportionally to exactly maxCm; narrower images
// keep their natural size.
func (i Info) ScaledCm(maxCm float64) (w, h float64) {
	w = float64(i.WidthPx) / i.DPI * 2.54
	h = float64(i.HeightPx) / i.DPI * 2.54
	if w > maxCm {
		h *= maxCm / w
		w = maxCm
	}
	return w, h
}

// pngDPI reads the pHYs chunk. Chunks follow the 8-byte signature as
// length(4) type(4) data crc(4); pHYs data is x and y pixels-per-unit
// plus a unit byte (1 = meters).
func pngDPI(data []byte) float64 {
	off := 8
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off:]))
		typ := string(data[off+4 : off+8])
		body := off + 8
		if body+length > len(data) {
			return 0
		}
		if typ == "pHYs" && length >= 9 {
			ppu := binary.BigEndian.Uint32(data[body:])
			if data[body+8] == 1 && ppu > 0 {
				return float64(ppu) * 0.0254
			}
			return 0
		}
		if typ == "IDAT" || typ == "IEND" {
			return 0
		}
		off = body + length + 4
	}
	return 0
}

// jpegDPI reads the JFIF APP0 density fields (units 1 = dots per inch,
// 2 = dots per centimeter).
func jpegDPI(data []byte) float64 {
	off := 2 // past SOI
	for off+4 <= len(data) {
		if data[off] != 0xFF {
			return 0
		}
		marker := data[off+1]
		if marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7) {
			off += 2
			continue
		}
		length := int(binary.BigEndian.Uint16(data[off+2:]))
		if marker == 0xE0 && off+2+length <= len(data) && length >= 14 {
			seg := data[off+4 : off+2+length]
			if bytes.HasPrefix(seg, []byte("JFIF\x00")) {
				units := seg[7]
				density := float64(binary.BigEndian.Uint16(seg[8:]))
				switch units {
				case 1:
					return density
				case 2:
					return density * 2.54
				}
				return 0
			}
		}
		if marker == 0xDA { // start of scan, no metadata past here
			return 0
		}
		off += 2 + length
	}
	return 0
}
