package composer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"
)

// EncodePNG encodes the composed raster to a lossless PNG payload.
// Returns ErrEncode if encoding fails; a failed encode aborts only this
// export attempt and never touches stored memories.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// ExportFilename generates the download filename for an export performed at
// the given time: "memory-<unix-millis>.png".
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("memory-%d.png", now.UnixMilli())
}
