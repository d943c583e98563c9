package composer

import "math"

// Canvas geometry. These values define the export artifact format and must
// not change: artifacts produced by different versions have to be
// pixel-compatible.
const (
	// CanvasSize is the width and height of the square export canvas.
	CanvasSize = 1080

	// photoPadding is the minimum space between the canvas edge and the photo.
	photoPadding = 100

	// maxPhotoSize is the largest dimension the photo may occupy.
	maxPhotoSize = CanvasSize - 2*photoPadding

	// verticalShift raises the photo above true center to leave room for
	// the date caption below it.
	verticalShift = 50

	// frameBorder is the width of the white frame around the photo.
	frameBorder = 20

	// captionStrip is the frame area below the photo reserved for the date
	// caption, producing the polaroid look.
	captionStrip = 80

	// dateBaselineOffset positions the date text baseline below the photo.
	dateBaselineOffset = 50

	// watermarkBaseline is the watermark text baseline, measured from the
	// top of the canvas.
	watermarkBaseline = CanvasSize - 30
)

// Layout describes where the photo and its frame land on the canvas.
type Layout struct {
	// PhotoW, PhotoH are the photo's drawn dimensions after shrink-to-fit.
	PhotoW, PhotoH int

	// PhotoX, PhotoY are the top-left corner of the drawn photo.
	PhotoX, PhotoY int

	// FrameX, FrameY, FrameW, FrameH describe the white frame rectangle,
	// drawn before the photo so only the border and bottom strip stay visible.
	FrameX, FrameY, FrameW, FrameH int

	// Scaled reports whether the photo was resampled. Photos already within
	// maxPhotoSize on their dominant axis are drawn at intrinsic size.
	Scaled bool
}

// FitPhoto applies the shrink-to-fit rule to a photo's intrinsic
// dimensions: scale the dominant axis down to maxPhotoSize preserving
// aspect ratio, and never upscale a photo that already fits.
func FitPhoto(w0, h0 int) (w1, h1 int) {
	if w0 > h0 {
		if w0 > maxPhotoSize {
			return maxPhotoSize, roundScale(h0, w0)
		}
	} else {
		if h0 > maxPhotoSize {
			return roundScale(w0, h0), maxPhotoSize
		}
	}
	return w0, h0
}

// roundScale computes dim * maxPhotoSize / dominant rounded to the nearest
// pixel.
func roundScale(dim, dominant int) int {
	return int(math.Round(float64(dim) * maxPhotoSize / float64(dominant)))
}

// PlacePhoto computes the full canvas layout for a photo with the given
// intrinsic dimensions: shrink-to-fit, center with the caption shift, and
// size the frame from the scaled dimensions so the polaroid look holds for
// any aspect ratio.
func PlacePhoto(w0, h0 int) Layout {
	w1, h1 := FitPhoto(w0, h0)

	x := (CanvasSize - w1) / 2
	y := (CanvasSize-h1)/2 - verticalShift

	return Layout{
		PhotoW: w1,
		PhotoH: h1,
		PhotoX: x,
		PhotoY: y,
		FrameX: x - frameBorder,
		FrameY: y - frameBorder,
		FrameW: w1 + 2*frameBorder,
		FrameH: h1 + frameBorder + captionStrip,
		Scaled: w1 != w0 || h1 != h0,
	}
}

// DateBaseline returns the y coordinate of the date caption baseline for
// this layout.
func (l Layout) DateBaseline() int {
	return l.PhotoY + l.PhotoH + dateBaselineOffset
}
