// Package decoder recovers lockd.app content from raw transaction
// payloads: token extraction, protocol field decoding, embedded media
// detection, vote aggregation and transaction classification.
package decoder

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const (
	// binaryScanLimit bounds how many bytes IsBinary inspects.
	binaryScanLimit = 512
	// svgScanLimit bounds how many bytes the SVG probe inspects.
	svgScanLimit = 100
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// signatureProbe matches one image format at fixed byte offsets.
type signatureProbe struct {
	format model.ImageFormat
	match  func([]byte) bool
}

// Probes run in fixed priority order; the first match wins. The order
// matters where signatures could overlap.
var signatureProbes = []signatureProbe{
	{model.FormatJPEG, matchJPEG},
	{model.FormatPNG, matchPNG},
	{model.FormatGIF, matchGIF},
	{model.FormatBMP, matchBMP},
	{model.FormatWEBP, matchWEBP},
	{model.FormatTIFF, matchTIFF},
	{model.FormatAVIF, matchAVIF},
	{model.FormatSVG, matchSVG},
}

// DetectFormat identifies a payload by its signature bytes. Total:
// input matching no known signature yields FormatUnknown.
func DetectFormat(data []byte) model.ImageFormat {
	for _, p := range signatureProbes {
		if p.match(data) {
			return p.format
		}
	}
	return model.FormatUnknown
}

// JPEG signature: FF D8 FF
func matchJPEG(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF
}

// PNG signature: 89 50 4E 47 0D 0A 1A 0A
func matchPNG(b []byte) bool {
	return bytes.HasPrefix(b, pngMagic)
}

// GIF signature: GIF87a or GIF89a
func matchGIF(b []byte) bool {
	if len(b) < 6 {
		return false
	}
	return bytes.HasPrefix(b, []byte("GIF87a")) || bytes.HasPrefix(b, []byte("GIF89a"))
}

// BMP signature: 42 4D
func matchBMP(b []byte) bool {
	return len(b) >= 2 && b[0] == 'B' && b[1] == 'M'
}

// WebP signature: RIFF at 0, WEBP at 8
func matchWEBP(b []byte) bool {
	return len(b) >= 12 &&
		b[0] == 'R' && b[1] == 'I' && b[2] == 'F' && b[3] == 'F' &&
		b[8] == 'W' && b[9] == 'E' && b[10] == 'B' && b[11] == 'P'
}

// TIFF signatures: II 2A 00 (little-endian) or MM 00 2A (big-endian)
func matchTIFF(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	le := b[0] == 'I' && b[1] == 'I' && b[2] == 0x2A && b[3] == 0x00
	be := b[0] == 'M' && b[1] == 'M' && b[2] == 0x00 && b[3] == 0x2A
	return le || be
}

// AVIF: ISO BMFF with ftyp box at 4 and brand avif/avis at 8
func matchAVIF(b []byte) bool {
	if len(b) < 12 {
		return false
	}
	if b[4] != 'f' || b[5] != 't' || b[6] != 'y' || b[7] != 'p' {
		return false
	}
	brand := string(b[8:12])
	return brand == "avif" || brand == "avis"
}

// SVG has no magic bytes; the probe scans the leading bytes for an
// <svg tag plus an xmlns attribute as UTF-8 text.
func matchSVG(b []byte) bool {
	limit := len(b)
	if limit > svgScanLimit {
		limit = svgScanLimit
	}
	head := b[:limit]
	if !utf8.Valid(head) {
		return false
	}
	s := strings.ToLower(string(head))
	return strings.Contains(s, "<svg") && strings.Contains(s, "xmlns")
}

// IsBinary reports whether a payload should be treated as binary
// rather than text. A short list of always-binary leading bytes is
// checked first, then the share of non-printable bytes over at most
// the first 512 bytes: above 10 percent means binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	switch data[0] {
	case 0x00, 0x89, 0xFF:
		return true
	}
	limit := len(data)
	if limit > binaryScanLimit {
		limit = binaryScanLimit
	}
	nonPrintable := 0
	for _, b := range data[:limit] {
		if (b < 0x20 && b != '\t' && b != '\n' && b != '\r') || b == 0x7F {
			nonPrintable++
		}
	}
	return nonPrintable*10 > limit
}
