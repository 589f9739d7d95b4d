package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/forms"
	"github.com/rpupo63/portfolio-site/metrics"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	contactSuccessMessage = "Thank you for your message! I will get back to you soon."
	notifyTimeout         = 20 * time.Second
)

// ContactNotifier delivers contact notifications; services.Dispatcher implements it.
type ContactNotifier interface {
	Dispatch(ctx context.Context, n services.Notification) error
}

type contactHandler struct {
	renderer    Renderer
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	notifier    ContactNotifier
	flashes     flashStore
	csrfEnabled bool
}

func newContactHandler(contactRepo *database.ContactRepo, n ContactNotifier, flashes flashStore, csrfEnabled bool) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		renderer:    NewRenderer(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    n,
		flashes:     flashes,
		csrfEnabled: csrfEnabled,
	}
}

func (h contactHandler) page(flash string) views.Page {
	return views.Page{Title: "Contact", Active: "contact", Flash: flash}
}

func (h contactHandler) formData(r *http.Request, form forms.ContactForm, result forms.Result) views.ContactData {
	data := views.ContactData{Form: form, Result: result}
	if h.csrfEnabled {
		data.CSRFField = csrfFieldName
		data.CSRFToken = csrf.Token(r)
	}
	return data
}

// showForm renders an empty form and any message left by a previous submission.
func (h contactHandler) showForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flash := h.flashes.Pop(w, r)
		h.renderer.Render(w, r, http.StatusOK, views.Contact(h.page(flash), h.formData(r, forms.ContactForm{}, forms.Result{})))
	}
}

// submit validates and stores the message, notifies the owner and redirects
// back to the form. Notification failures never fail the request.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 64<<10)

		form, err := forms.ParseContactForm(r)
		if err != nil {
			metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
			h.renderer.RenderError(w, r, errs.NewBadRequestError("unreadable contact form"))
			return
		}

		result := form.Validate()
		if !result.Valid() {
			metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
			h.renderer.Render(w, r, http.StatusBadRequest, views.Contact(h.page(""), h.formData(r, form, result)))
			return
		}

		contact := form.Contact()
		if err := h.contactRepo.Add(r.Context(), contact); err != nil {
			metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
			h.renderer.RenderError(w, r, wrapDatabaseError("insert", "contact", err))
			return
		}
		metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
		h.logger.Info().Uint("contactID", contact.ID).Msg("Contact message stored")

		h.notify(r.Context(), contact.ID, services.ContactNotification(contact))

		if err := h.flashes.Set(w, contactSuccessMessage); err != nil {
			h.logger.Error().Err(err).Msg("could not set flash message")
		}
		http.Redirect(w, r, "/contact/", http.StatusSeeOther)
	}
}

// notify outlives a client that disconnects after submitting.
func (h contactHandler) notify(ctx context.Context, contactID uint, n services.Notification) {
	if h.notifier == nil {
		h.logger.Warn().Uint("contactID", contactID).Msg("No notifier configured, skipping notification")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := h.notifier.Dispatch(ctx, n)
	switch {
	case err == nil:
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	case errs.IsConfigMissingError(err):
		metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
		h.logger.Warn().Err(err).Uint("contactID", contactID).Msg("No notification channel configured, contact saved without notification")
	case errs.IsDeliveryError(err):
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		h.logger.Error().Err(err).Uint("contactID", contactID).Msg("Notification provider rejected contact notification")
	default:
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		h.logger.Error().Err(err).Uint("contactID", contactID).Msg("Error sending contact notification")
	}
}

// rateLimited is served instead of submit once a client exceeds the limit.
func (h contactHandler) rateLimited() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.ContactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		h.renderer.RenderError(w, r, errs.NewTooManyRequestsError("contact form"))
	}
}
