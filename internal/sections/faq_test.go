package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codr1/careerbuilder/internal/models"
)

func TestAccordionOnlyOneOpen(t *testing.T) {
	a := OpenAt(0)
	assert.True(t, a.IsOpen(0))
	assert.Equal(t, GlyphOpen, a.Glyph(0))
	assert.Equal(t, GlyphClosed, a.Glyph(2))

	a = a.Toggle(2)
	assert.False(t, a.IsOpen(0), "opening item 2 closes item 0")
	assert.True(t, a.IsOpen(2))
	assert.Equal(t, GlyphClosed, a.Glyph(0))
	assert.Equal(t, GlyphOpen, a.Glyph(2))

	a = a.Toggle(2)
	assert.Equal(t, -1, a.Open())
	assert.Equal(t, GlyphClosed, a.Glyph(2))
}

func TestAccordionZeroValueClosed(t *testing.T) {
	var a Accordion
	for i := range SampleFAQ() {
		assert.False(t, a.IsOpen(i))
	}
	assert.Equal(t, Accordion{}, OpenAt(-4))
	assert.Equal(t, Accordion{}, OpenAt(1).Toggle(-1))
}

func TestFAQRenderShowsOnlyOpenAnswer(t *testing.T) {
	p := defaultProps()
	p.FAQ = OpenAt(0).Toggle(2)
	p.FAQURL = "/api/v1/sections/faq"
	out := render(t, models.SectionFAQ, p)

	faq := SampleFAQ()
	assert.Equal(t, 1, strings.Count(out, `class="cb-faq-answer"`))
	assert.Contains(t, out, faq[2].Answer)
	assert.NotContains(t, out, faq[0].Answer)
	assert.Equal(t, 1, strings.Count(out, GlyphOpen))
	assert.Equal(t, len(faq)-1, strings.Count(out, `>`+GlyphClosed+`<`))
	assert.Contains(t, out, `hx-get="/api/v1/sections/faq?current=2&amp;toggle=0"`)
}

func TestFAQRenderStaticWithoutURL(t *testing.T) {
	out := render(t, models.SectionFAQ, defaultProps())
	assert.NotContains(t, out, "hx-get")
	assert.NotContains(t, out, `class="cb-faq-answer"`)
}
