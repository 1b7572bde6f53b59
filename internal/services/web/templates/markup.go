package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attr is one HTML attribute. Boolean attributes render without a value.
type attr struct {
	name    string
	value   string
	boolean bool
}

func a(name, value string) attr {
	return attr{name: name, value: value}
}

// when returns a boolean attribute that is only rendered if on is true.
func when(on bool, name string) attr {
	if !on {
		return attr{}
	}
	return attr{name: name, boolean: true}
}

// urlAttrs are sanitized through templ.URL before escaping.
var urlAttrs = map[string]bool{"href": true, "action": true, "src": true, "data-href": true}

// htmlWriter writes escaped markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) open(tag string, attrs ...attr) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, at := range attrs {
		if at.name == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(at.name)
		if at.boolean {
			continue
		}
		value := at.value
		if urlAttrs[at.name] {
			value = string(templ.URL(value))
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	h.raw(b.String())
}

func (h *htmlWriter) close(tag string) {
	h.raw("</", tag, ">")
}

// element writes a full element with escaped text content.
func (h *htmlWriter) element(tag string, content string, attrs ...attr) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// optional returns an attribute that is skipped when value is empty.
func optional(name, value string) attr {
	if value == "" {
		return attr{}
	}
	return a(name, value)
}
