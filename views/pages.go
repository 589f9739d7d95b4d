package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rpupo63/portfolio-site/forms"
	"github.com/rpupo63/portfolio-site/models"
)

type HomeData struct {
	Featured []*models.Project
	Skills   []models.SkillGroup
	Latest   *models.Experience
}

type AboutData struct {
	Experiences []*models.Experience
	Education   []*models.Education
	Skills      []models.SkillGroup
}

type ContactData struct {
	Form      forms.ContactForm
	Result    forms.Result
	CSRFField string // hidden input name; empty when CSRF is disabled
	CSRFToken string
}

func Home(page Page, data HomeData) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="hero"><img class="profile" src="/static/images/profile.jpg" alt="Profile photo">`,
			`<h1>Welcome to my portfolio</h1>`)
		if data.Latest != nil {
			h.raw(`<p class="current-role">`)
			h.text(data.Latest.Position)
			h.raw(` at `)
			h.text(data.Latest.Company)
			h.raw(`</p>`)
		}
		h.raw(`<a class="button" href="/projects/">View my work</a> <a class="button" href="/contact/">Get in touch</a></section>`)

		h.raw(`<section class="featured"><h2>Featured Projects</h2>`)
		if len(data.Featured) == 0 {
			h.raw(`<p class="empty">No featured projects yet.</p>`)
		}
		h.raw(`<div class="project-grid">`)
		for _, p := range data.Featured {
			h.render(projectCard(p))
		}
		h.raw(`</div></section>`)

		h.render(skillGroups(data.Skills))
		return h.err
	}))
}

func About(page Page, data AboutData) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="about"><img src="/static/images/about-me.jpg" alt="About me"><h1>About Me</h1></section>`)

		h.raw(`<section class="experience"><h2>Experience</h2>`)
		for _, e := range data.Experiences {
			h.raw(`<article class="timeline-item"><h3>`)
			h.text(e.Position)
			h.raw(`</h3><p class="company">`)
			h.text(e.Company)
			if e.Location != "" {
				h.raw(` &middot; `)
				h.text(e.Location)
			}
			h.raw(`</p><p class="dates">`)
			h.text(dateSpan(e.StartDate, e.EndDate, e.IsCurrent()))
			h.raw(`</p>`)
			h.paragraphs(e.Description)
			h.raw(`</article>`)
		}
		h.raw(`</section>`)

		h.raw(`<section class="education"><h2>Education</h2>`)
		for _, e := range data.Education {
			h.raw(`<article class="timeline-item"><h3>`)
			h.text(e.Degree)
			h.raw(` in `)
			h.text(e.FieldOfStudy)
			h.raw(`</h3><p class="institution">`)
			h.text(e.Institution)
			h.raw(`</p><p class="dates">`)
			h.text(dateSpan(e.StartDate, e.EndDate, e.IsCurrent()))
			h.raw(`</p>`)
			if gpa := e.GPAString(); gpa != "" {
				h.raw(`<p class="gpa">GPA: `)
				h.text(gpa)
				h.raw(`</p>`)
			}
			h.raw(`</article>`)
		}
		h.raw(`</section>`)

		h.render(skillGroups(data.Skills))
		return h.err
	}))
}

func Projects(page Page, projects []*models.Project) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="projects"><h1>Projects</h1>`)
		if len(projects) == 0 {
			h.raw(`<p class="empty">No projects yet.</p>`)
		}
		h.raw(`<div class="project-grid">`)
		for _, p := range projects {
			h.render(projectCard(p))
		}
		h.raw(`</div></section>`)
		return h.err
	}))
}

func ProjectDetail(page Page, p *models.Project) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<article class="project-detail"><h1>`)
		h.text(p.Title)
		h.raw(`</h1>`)
		if p.Image != nil && *p.Image != "" {
			h.raw(`<img src="`)
			h.href(MediaURL(*p.Image))
			h.raw(`" alt="`)
			h.text(p.Title)
			h.raw(`">`)
		}
		h.paragraphs(p.Description)
		h.render(techList(p.TechnologiesList()))
		h.raw(`<p class="links">`)
		if p.GithubURL != nil && *p.GithubURL != "" {
			h.raw(`<a class="button" rel="noopener" href="`)
			h.href(*p.GithubURL)
			h.raw(`">GitHub</a> `)
		}
		if p.LiveURL != nil && *p.LiveURL != "" {
			h.raw(`<a class="button" rel="noopener" href="`)
			h.href(*p.LiveURL)
			h.raw(`">Live Demo</a>`)
		}
		h.raw(`</p><p class="created">Added `)
		h.text(p.CreatedDate.Format("January 2, 2006"))
		h.raw(`</p><a href="/projects/">&larr; All projects</a></article>`)
		return h.err
	}))
}

func Contact(page Page, data ContactData) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="contact"><h1>Contact Me</h1>`,
			`<form method="post" action="/contact/" novalidate>`)
		if data.CSRFField != "" {
			h.raw(`<input type="hidden" name="`)
			h.text(data.CSRFField)
			h.raw(`" value="`)
			h.text(data.CSRFToken)
			h.raw(`">`)
		}

		fields := []struct {
			name, label, kind, value string
			maxLen                   int
		}{
			{"name", "Name", "text", data.Form.Name, 100},
			{"email", "Email", "email", data.Form.Email, 254},
			{"subject", "Subject", "text", data.Form.Subject, 200},
		}
		for _, f := range fields {
			h.raw(`<div class="form-group"><label for="id_`, f.name, `">`, f.label, `</label>`,
				`<input type="`, f.kind, `" name="`, f.name, `" id="id_`, f.name,
				`" maxlength="`, strconv.Itoa(f.maxLen), `" required value="`)
			h.text(f.value)
			h.raw(`">`)
			h.render(fieldError(data.Result.For(f.name)))
			h.raw(`</div>`)
		}

		h.raw(`<div class="form-group"><label for="id_message">Message</label>`,
			`<textarea name="message" id="id_message" rows="5" required>`)
		h.text(data.Form.Message)
		h.raw(`</textarea>`)
		h.render(fieldError(data.Result.For("message")))
		h.raw(`</div><button type="submit">Send Message</button></form></section>`)
		return h.err
	}))
}

// ErrorPage renders the 404, 429 and 500 pages.
func ErrorPage(page Page, status int, message string) templ.Component {
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="error-page"><h1>`, strconv.Itoa(status), `</h1><p>`)
		h.text(message)
		h.raw(`</p><a href="/">Back to home</a></section>`)
		return h.err
	}))
}

func fieldError(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		h := newHTML(ctx, w)
		h.raw(`<div class="field-error">`)
		h.text(msg)
		h.raw(`</div>`)
		return h.err
	})
}

func skillGroups(groups []models.SkillGroup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="skills"><h2>Skills</h2>`)
		for _, g := range groups {
			h.raw(`<div class="skill-category"><h3>`)
			h.text(g.Category)
			h.raw(`</h3>`)
			for _, s := range g.Skills {
				h.raw(`<div class="skill"><span class="skill-name">`)
				h.text(s.Name)
				h.raw(`</span><div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100" aria-valuenow="`,
					strconv.Itoa(s.Proficiency), `"><div class="progress-bar" style="width: `,
					fmt.Sprintf("%d%%", s.Proficiency), `"></div></div></div>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
		return h.err
	})
}
