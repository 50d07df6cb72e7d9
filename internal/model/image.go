package model

// ImageFormat tags the binary signature matched against a payload.
type ImageFormat string

var (
	FormatJPEG    ImageFormat = "jpeg"
	FormatPNG     ImageFormat = "png"
	FormatGIF     ImageFormat = "gif"
	FormatBMP     ImageFormat = "bmp"
	FormatWEBP    ImageFormat = "webp"
	FormatTIFF    ImageFormat = "tiff"
	FormatAVIF    ImageFormat = "avif"
	FormatSVG     ImageFormat = "svg"
	FormatUnknown ImageFormat = "unknown"
)

// ContentType returns the MIME type for the format. Unknown binary
// payloads map to application/octet-stream.
func (f ImageFormat) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatWEBP:
		return "image/webp"
	case FormatTIFF:
		return "image/tiff"
	case FormatAVIF:
		return "image/avif"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// ImageRecord holds an embedded media payload recovered from a
// transaction. Width, Height and IsAnimated are best-effort GIF
// metadata and zero-valued for other formats.
type ImageRecord struct {
	Format      ImageFormat
	ContentType string
	Data        []byte
	Width       uint32
	Height      uint32
	IsAnimated  bool
}
