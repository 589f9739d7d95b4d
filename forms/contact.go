package forms

import (
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// ContactForm is the public contact form as submitted.
type ContactForm struct {
	Name    string `form:"name" validate:"required,nonul,max=100"`
	Email   string `form:"email" validate:"required,nonul,email,max=254"`
	Subject string `form:"subject" validate:"required,nonul,max=200"`
	Message string `form:"message" validate:"required,nonul"`
}

// Result is the outcome of validating a ContactForm: either valid or a list of
// field errors.
type Result struct {
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// For returns the first error message for field, or "".
func (r Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// ParseContactForm reads the url-encoded body of r. Values are trimmed and
// invalid UTF-8 is replaced with U+FFFD.
func ParseContactForm(r *http.Request) (ContactForm, error) {
	if err := r.ParseForm(); err != nil {
		return ContactForm{}, errs.NewMalformedPayloadError("contact form", err)
	}
	return ContactForm{
		Name:    cleanValue(r.PostFormValue("name")),
		Email:   cleanValue(r.PostFormValue("email")),
		Subject: cleanValue(r.PostFormValue("subject")),
		Message: cleanValue(r.PostFormValue("message")),
	}, nil
}

func cleanValue(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD"))
}

func (f ContactForm) Validate() Result {
	return Result{Errors: Validate(f)}
}

// Contact converts a validated form into a record ready to insert.
func (f ContactForm) Contact() *models.Contact {
	return &models.Contact{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	}
}
