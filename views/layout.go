package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rpupo63/portfolio-site/models"
)

// Page carries the per-request values every page shares.
type Page struct {
	Title  string
	Active string // nav entry to highlight: home, about, projects, contact
	Flash  string
}

var navItems = []struct{ key, label, href string }{
	{"home", "Home", "/"},
	{"about", "About", "/about/"},
	{"projects", "Projects", "/projects/"},
	{"contact", "Contact", "/contact/"},
}

// Layout wraps body in the shared document shell with navigation and the flash slot.
func Layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		title := "Portfolio"
		if page.Title != "" {
			title = page.Title + " | Portfolio"
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(title)
		h.raw(`</title><link rel="icon" href="/static/images/favicon.jpg">`,
			`<link rel="stylesheet" href="/static/css/style.css"></head><body>`)

		h.raw(`<nav class="navbar"><a class="brand" href="/">Portfolio</a><ul>`)
		for _, item := range navItems {
			h.raw(`<li><a href="`, item.href, `"`)
			if item.key == page.Active {
				h.raw(` class="active" aria-current="page"`)
			}
			h.raw(`>`, item.label, `</a></li>`)
		}
		h.raw(`</ul></nav>`)

		if page.Flash != "" {
			h.raw(`<div class="messages"><div class="alert alert-success" role="status">`)
			h.text(page.Flash)
			h.raw(`</div></div>`)
		}

		h.raw(`<main>`)
		h.render(body)
		h.raw(`</main><footer><p>&copy; Portfolio</p></footer></body></html>`)
		return h.err
	})
}

func projectCard(p *models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<article class="project-card">`)
		if p.Image != nil && *p.Image != "" {
			h.raw(`<img src="`)
			h.href(MediaURL(*p.Image))
			h.raw(`" alt="`)
			h.text(p.Title)
			h.raw(`">`)
		}
		h.raw(`<h3><a href="`)
		h.href(projectURL(p.ID))
		h.raw(`">`)
		h.text(p.Title)
		h.raw(`</a></h3>`)
		if p.Featured {
			h.raw(`<span class="badge">Featured</span>`)
		}
		h.raw(`<p>`)
		h.text(truncateWords(p.Description, 30))
		h.raw(`</p>`)
		h.render(techList(p.TechnologiesList()))
		h.raw(`</article>`)
		return h.err
	})
}

func techList(techs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(techs) == 0 {
			return nil
		}
		h := newHTML(ctx, w)
		h.raw(`<ul class="technologies">`)
		for _, t := range techs {
			h.raw(`<li>`)
			h.text(t)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

func projectURL(id uint) string {
	return fmt.Sprintf("/projects/%d/", id)
}

// truncateWords keeps the first n words of s, marking the cut with an ellipsis.
func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + " …"
}
