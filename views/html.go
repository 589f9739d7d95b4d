package views

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"gorm.io/datatypes"
)

// html writes markup to w and remembers the first write error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped for element content or a quoted attribute.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// href writes a sanitized, escaped URL.
func (h *html) href(u string) {
	h.text(string(templ.URL(u)))
}

func (h *html) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// paragraphs splits text on blank lines, the way linebreaks does in a template.
func (h *html) paragraphs(text string) {
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		h.raw("<p>")
		for i, line := range strings.Split(p, "\n") {
			if i > 0 {
				h.raw("<br>")
			}
			h.text(line)
		}
		h.raw("</p>")
	}
}

// MediaURL maps a stored media reference such as "projects/a.jpg" to its public URL.
func MediaURL(ref string) string {
	return "/media/" + strings.TrimPrefix(ref, "/")
}

func monthYear(d datatypes.Date) string {
	return time.Time(d).Format("Jan 2006")
}

// dateSpan renders "Jan 2020 - Present" for an ongoing entry.
func dateSpan(start datatypes.Date, end *datatypes.Date, current bool) string {
	if current {
		return monthYear(start) + " - Present"
	}
	return monthYear(start) + " - " + monthYear(*end)
}
