package composer

import "errors"

// Errors reported by the composition pipeline. Both abort the export
// attempt only; stored memories are never touched by a failed export.
var (
	// ErrDecode is returned when a memory's photo payload cannot be decoded
	// into a raster (corrupt or truncated data, or decode timeout).
	ErrDecode = errors.New("photo decode failed")

	// ErrEncode is returned when the composed raster cannot be encoded to
	// the output file format.
	ErrEncode = errors.New("image encode failed")
)
