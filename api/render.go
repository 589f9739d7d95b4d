package api

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
)

// Renderer writes templ pages, the HTML counterpart of Responder.
type Renderer struct {
	logger zerolog.Logger
}

func NewRenderer(logger zerolog.Logger) Renderer {
	return Renderer{logger}
}

func (rd Renderer) Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		rd.logger.Error().Err(err).Str("path", r.URL.Path).Msg("error rendering page")
	}
}

// RenderError maps err to the 404, 429 or 500 page. Unexpected errors are logged.
func (rd Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.StatusOf(err)

	var title, message string
	switch status {
	case http.StatusNotFound:
		title, message = "Page Not Found", "The page you are looking for does not exist."
	case http.StatusTooManyRequests:
		title, message = "Too Many Requests", "You have sent too many messages. Please try again in a minute."
	case http.StatusForbidden:
		title, message = "Forbidden", "The form has expired. Please reload the page and try again."
	case http.StatusBadRequest:
		title, message = "Bad Request", "The request could not be understood."
	default:
		status = http.StatusInternalServerError
		title, message = "Server Error", "Something went wrong on our side. Please try again later."
		rd.logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("page failed")
	}

	rd.Render(w, r, status, views.ErrorPage(views.Page{Title: title}, status, message))
}

// NotFound is the router's fallback handler.
func (rd Renderer) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.RenderError(w, r, errs.NewNotFound("page"))
	}
}
