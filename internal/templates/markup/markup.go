// Package markup is a small HTML writer for components built directly on
// templ.ComponentFunc.
package markup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML and keeps the first write error.
type Writer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Rawf formats trusted markup. Arguments are not escaped.
func (m *Writer) Rawf(format string, args ...any) {
	m.Raw(fmt.Sprintf(format, args...))
}

// Text writes escaped text, safe in element bodies and quoted attributes.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Textf formats then escapes.
func (m *Writer) Textf(format string, args ...any) {
	m.Text(fmt.Sprintf(format, args...))
}

// Vals writes an escaped JSON object for hx-vals attributes.
func (m *Writer) Vals(vals map[string]any) {
	data, err := json.Marshal(vals)
	if err != nil {
		if m.err == nil {
			m.err = err
		}
		return
	}
	m.Text(string(data))
}

// URL writes a sanitized, escaped URL for href/src attributes.
func (m *Writer) URL(u string) {
	m.Text(string(templ.URL(u)))
}

// Component renders a nested component into the same stream.
func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *Writer) Err() error {
	return m.err
}

// Func adapts a writer callback into a templ.Component.
func Func(render func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		render(ctx, m)
		return m.Err()
	})
}
