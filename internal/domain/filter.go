package domain

// Filter describes a capture-time photo filter. The filter is baked into
// the photo by the capture flow before the memory reaches this service, so
// Style is informational only and is never reapplied at render time.
type Filter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

// FilterNone is the identity filter applied when a photo is captured
// without any effect.
const FilterNone = "none"

// filters is the capture filter catalog, in the order the capture UI
// presents them.
var filters = []Filter{
	{ID: FilterNone, Name: "Original", Style: ""},
	{ID: "vintage", Name: "Vintage", Style: "sepia(0.5) contrast(1.2) brightness(0.9)"},
	{ID: "bw", Name: "B&W", Style: "grayscale(1) contrast(1.1)"},
	{ID: "warm", Name: "Warm", Style: "sepia(0.2) saturate(1.5) hue-rotate(-10deg)"},
	{ID: "cool", Name: "Cool", Style: "saturate(1.2) hue-rotate(20deg) brightness(1.1)"},
	{ID: "dreamy", Name: "Dreamy", Style: "contrast(0.9) brightness(1.1) blur(0.5px)"},
}

// Filters returns the capture filter catalog in display order.
// The returned slice is a copy; callers may not mutate the catalog.
func Filters() []Filter {
	out := make([]Filter, len(filters))
	copy(out, filters)
	return out
}

// isValidFilterID reports whether id names a filter in the catalog.
func isValidFilterID(id string) bool {
	for _, f := range filters {
		if f.ID == id {
			return true
		}
	}
	return false
}
