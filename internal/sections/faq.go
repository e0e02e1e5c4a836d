package sections

const (
	GlyphClosed = "+"
	GlyphOpen   = "−"
)

// Accordion tracks which FAQ item is expanded. At most one item is open; the
// zero value has every item closed.
type Accordion struct {
	open int // index+1, 0 when nothing is open
}

// OpenAt returns an accordion with item i open; a negative i closes all.
func OpenAt(i int) Accordion {
	if i < 0 {
		return Accordion{}
	}
	return Accordion{open: i + 1}
}

// Toggle opens item i, closing any other; toggling the open item closes it.
func (a Accordion) Toggle(i int) Accordion {
	if i < 0 || a.open == i+1 {
		return Accordion{}
	}
	return Accordion{open: i + 1}
}

func (a Accordion) IsOpen(i int) bool {
	return i >= 0 && a.open == i+1
}

// Open returns the open index, or -1.
func (a Accordion) Open() int {
	return a.open - 1
}

func (a Accordion) Glyph(i int) string {
	if a.IsOpen(i) {
		return GlyphOpen
	}
	return GlyphClosed
}
