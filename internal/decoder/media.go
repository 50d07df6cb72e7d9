package decoder

import (
	"encoding/binary"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const (
	// unknownBinaryMinLen is the smallest binary token span preserved
	// as an unknown-format record when no signature matches. Shorter
	// spans and raw scripts carry too much structural noise.
	unknownBinaryMinLen = 32
	// gifHeaderLen covers the GIF signature plus the 2-byte LE width
	// and height fields at offsets 6 and 8.
	gifHeaderLen = 10
	// gifDescriptorOffset is where image-descriptor counting starts,
	// past the header and global color table flag bytes.
	gifDescriptorOffset = 13
)

// ExtractMedia searches a transaction for one embedded image. Tiers,
// first known-signature match wins: each raw token span, each output
// script, the concatenation of all outputs (images split across
// outputs), the decoded body. Out-of-bounds candidates fall through to
// the next tier. When every tier misses, a sizable binary token span
// is still preserved as an unknown-format record rather than dropped.
// Nothing found returns nil, never an error.
func ExtractMedia(tokens []model.Token, outputs [][]byte, body string) *model.ImageRecord {
	for _, tok := range tokens {
		if rec := recordFor(tok.Bytes()); rec != nil {
			return rec
		}
	}
	for _, out := range outputs {
		if rec := recordFor(out); rec != nil {
			return rec
		}
	}
	if len(outputs) > 1 {
		var joined []byte
		for _, out := range outputs {
			joined = append(joined, out...)
		}
		if rec := recordFor(joined); rec != nil {
			return rec
		}
	}
	if decoded := DecodeBody(body); len(decoded) > 0 {
		if rec := recordFor(decoded); rec != nil {
			return rec
		}
	}
	for _, tok := range tokens {
		if tok.IsText() || len(tok.Raw) < unknownBinaryMinLen {
			continue
		}
		return newImageRecord(model.FormatUnknown, tok.Raw)
	}
	return nil
}

// recordFor probes one candidate buffer. Binary buffers run the full
// signature table; text buffers are only probed for SVG so ordinary
// UTF-8 never reads as a binary format.
func recordFor(data []byte) *model.ImageRecord {
	if len(data) == 0 {
		return nil
	}
	if IsBinary(data) {
		if format := DetectFormat(data); format != model.FormatUnknown {
			return newImageRecord(format, data)
		}
		return nil
	}
	if matchSVG(data) {
		return newImageRecord(model.FormatSVG, data)
	}
	return nil
}

func newImageRecord(format model.ImageFormat, data []byte) *model.ImageRecord {
	payload := make([]byte, len(data))
	copy(payload, data)
	rec := &model.ImageRecord{
		Format:      format,
		ContentType: format.ContentType(),
		Data:        payload,
	}
	if format == model.FormatGIF {
		fillGIFMetadata(rec)
	}
	return rec
}

// fillGIFMetadata reads the logical screen width and height from the
// little-endian fields at offsets 6 and 8, then flags animation when
// more than one image-descriptor byte (0x2C) appears past the header.
// The descriptor count is approximate, not a GIF parse: 0x2C inside
// pixel data also matches.
func fillGIFMetadata(rec *model.ImageRecord) {
	data := rec.Data
	if len(data) < gifHeaderLen {
		return
	}
	rec.Width = uint32(binary.LittleEndian.Uint16(data[6:8]))
	rec.Height = uint32(binary.LittleEndian.Uint16(data[8:10]))
	if len(data) <= gifDescriptorOffset {
		return
	}
	descriptors := 0
	for _, b := range data[gifDescriptorOffset:] {
		if b == 0x2C {
			descriptors++
		}
	}
	rec.IsAnimated = descriptors > 1
}
