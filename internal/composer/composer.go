package composer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"time"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// watermarkText is the fixed string stamped near the bottom of the canvas
// when watermarking is enabled.
const watermarkText = "Scrapebook of Memories"

// watermarkAlpha is the watermark's reduced opacity.
const watermarkAlpha = 0x80

// Font sizes for the two text layers, in points at 72 DPI.
const (
	dateFontSize      = 24
	watermarkFontSize = 16
)

// frameColor is the polaroid frame fill.
var frameColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Composer renders memories into share-ready rasters. Font faces are parsed
// once at construction; a Composer is safe for concurrent use because every
// render draws onto its own canvas.
type Composer struct {
	dateFace      font.Face
	watermarkFace font.Face
	decodeTimeout time.Duration
	logger        *slog.Logger
}

// New creates a Composer with the given decode timeout. If log is nil, the
// default logger is used.
func New(decodeTimeout time.Duration, log *slog.Logger) (*Composer, error) {
	if decodeTimeout <= 0 {
		return nil, fmt.Errorf("decode timeout must be positive, got %v", decodeTimeout)
	}
	if log == nil {
		log = slog.Default()
	}

	dateFace, err := newFace(goitalic.TTF, dateFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare date font: %w", err)
	}

	watermarkFace, err := newFace(goregular.TTF, watermarkFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare watermark font: %w", err)
	}

	return &Composer{
		dateFace:      dateFace,
		watermarkFace: watermarkFace,
		decodeTimeout: decodeTimeout,
		logger:        log.With(slog.String("component", "composer")),
	}, nil
}

// newFace parses a TTF payload into a fixed-size face. Hinting is disabled
// so glyph rasterization is identical on every platform.
func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Compose renders the memory onto a fresh square canvas using the given
// template and watermark option. The result is deterministic: the same
// inputs always produce pixel-identical output.
//
// Decode is the only suspension point; drawing begins only after the photo
// has fully decoded, and a decode failure aborts the whole render with no
// partial output.
func (c *Composer) Compose(
	ctx context.Context,
	memory *domain.Memory,
	template domain.Template,
	watermark bool,
) (*image.RGBA, error) {
	photo, err := c.Decode(ctx, memory.PhotoData)
	if err != nil {
		c.logger.Warn("photo decode failed during compose",
			slog.String("error", err.Error()),
			slog.String("memory_id", memory.ID.String()))
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))

	// Background fill.
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(template.BackgroundColor()), image.Point{}, draw.Src)

	bounds := photo.Bounds()
	layout := PlacePhoto(bounds.Dx(), bounds.Dy())

	// Frame first, photo second: the photo covers the frame's interior, so
	// only the border and the bottom caption strip remain visible. This
	// holds for any aspect ratio because the frame is sized from the scaled
	// photo dimensions.
	frameRect := image.Rect(
		layout.FrameX,
		layout.FrameY,
		layout.FrameX+layout.FrameW,
		layout.FrameY+layout.FrameH,
	)
	draw.Draw(canvas, frameRect, image.NewUniform(frameColor), image.Point{}, draw.Over)

	drawn := photo
	if layout.Scaled {
		drawn = resize.Resize(uint(layout.PhotoW), uint(layout.PhotoH), photo, resize.Lanczos3)
	}
	photoRect := image.Rect(
		layout.PhotoX,
		layout.PhotoY,
		layout.PhotoX+layout.PhotoW,
		layout.PhotoY+layout.PhotoH,
	)
	draw.Draw(canvas, photoRect, drawn, drawn.Bounds().Min, draw.Over)

	// Date caption, centered below the photo inside the frame strip.
	c.drawCenteredText(
		canvas,
		c.dateFace,
		domain.DisplayDate(memory.CapturedAt),
		layout.DateBaseline(),
		template.TextColor(),
	)

	if watermark {
		c.drawCenteredText(
			canvas,
			c.watermarkFace,
			watermarkText,
			watermarkBaseline,
			template.TextColorWithAlpha(watermarkAlpha),
		)
	}

	return canvas, nil
}

// drawCenteredText renders text horizontally centered on the canvas with
// its baseline at y.
func (c *Composer) drawCenteredText(
	canvas *image.RGBA,
	face font.Face,
	text string,
	baseline int,
	col color.NRGBA,
) {
	width := font.MeasureString(face, text)
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(CanvasSize/2) - width/2,
			Y: fixed.I(baseline),
		},
	}
	d.DrawString(text)
}
