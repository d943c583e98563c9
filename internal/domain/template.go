package domain

import (
	"image/color"
)

// Template is a named color scheme applied at export time. Templates are a
// fixed catalog, read-only at runtime; they are not user data.
type Template struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background_color"`
	Text       string `json:"text_color"`
}

// templates is the export template catalog. IDs and colors are stable:
// exported artifacts must look identical across versions.
var templates = []Template{
	{ID: "minimal", Name: "Minimal", Background: "#FFFFFF", Text: "#000000"},
	{ID: "vintage", Name: "Vintage", Background: "#F4E8D0", Text: "#5C4033"},
	{ID: "modern", Name: "Modern", Background: "#1A1A1A", Text: "#FFFFFF"},
	{ID: "pastel", Name: "Pastel", Background: "#FFE8E8", Text: "#6B5B95"},
	{ID: "nature", Name: "Nature", Background: "#E8F5E9", Text: "#2E7D32"},
}

// Templates returns the full export template catalog in display order.
// The returned slice is a copy; callers may not mutate the catalog.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID looks up a template by its stable ID.
// Returns ErrTemplateNotFound if the ID is not in the catalog.
func TemplateByID(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

// BackgroundColor decodes the template's background hex color.
func (t Template) BackgroundColor() color.NRGBA {
	return parseHexColor(t.Background, 0xFF)
}

// TextColor decodes the template's text hex color with full opacity.
func (t Template) TextColor() color.NRGBA {
	return parseHexColor(t.Text, 0xFF)
}

// TextColorWithAlpha decodes the template's text hex color with the given
// alpha, as used for the reduced-opacity watermark.
func (t Template) TextColorWithAlpha(alpha uint8) color.NRGBA {
	return parseHexColor(t.Text, alpha)
}

// parseHexColor decodes a "#RRGGBB" string. Catalog colors are validated by
// tests, so a malformed component simply decodes to zero.
func parseHexColor(s string, alpha uint8) color.NRGBA {
	if len(s) == 7 && s[0] == '#' {
		return color.NRGBA{
			R: hexByte(s[1], s[2]),
			G: hexByte(s[3], s[4]),
			B: hexByte(s[5], s[6]),
			A: alpha,
		}
	}
	return color.NRGBA{A: alpha}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
