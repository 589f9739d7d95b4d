package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/metrics"
)

func validContactForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"I enjoyed your projects."},
	}
}

func contactCount(t *testing.T, s *testServer) int64 {
	t.Helper()
	n, err := s.db.ContactRepo().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestContactFormRenders(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.get("/contact/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"name", "email", "subject", "message"} {
		if !strings.Contains(body, `name="`+name+`"`) {
			t.Errorf("field %q missing", name)
		}
	}
	if strings.Contains(body, csrfFieldName) {
		t.Error("csrf field rendered without CSRF_KEY")
	}
}

func TestContactSubmitStoresAndRedirects(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.postForm("/contact/", validContactForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/contact/" {
		t.Errorf("Location = %q", got)
	}
	if got := contactCount(t, s); got != 1 {
		t.Errorf("contacts = %d, want 1", got)
	}
	if got := s.notifier.count(); got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}

	contacts, err := s.db.ContactRepo().FindAll(context.Background(), database.OrderByCreatedDesc)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if contacts[0].Email != "ada@example.com" || contacts[0].Subject != "Hello" {
		t.Errorf("stored contact = %+v", contacts[0])
	}

	// The flash survives exactly one page view.
	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("flash cookie not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/contact/", nil)
	req.AddCookie(flash)
	rec = s.do(req)
	if !strings.Contains(rec.Body.String(), contactSuccessMessage) {
		t.Error("success message not shown after redirect")
	}
	if !strings.Contains(rec.Body.String(), `<div class="alert alert-success" role="status">`) {
		t.Error("flash markup missing")
	}

	rec = s.get("/contact/")
	if strings.Contains(rec.Body.String(), contactSuccessMessage) {
		t.Error("success message shown without the flash cookie")
	}
}

func TestContactSubmitSurvivesNotifierFailure(t *testing.T) {
	s := newTestServer(t, nil)
	s.notifier.err = errors.New("smtp down")

	rec := s.postForm("/contact/", validContactForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := contactCount(t, s); got != 1 {
		t.Errorf("contacts = %d, want 1", got)
	}
}

func TestContactNotificationOutcomes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sent", nil, "sent"},
		{"no channel", errs.NewConfigMissingError("RESEND_API_KEY"), "skipped"},
		{"rejected", errs.NewDeliveryError("email", http.StatusUnprocessableEntity, "bad address"), "failed"},
		{"unreachable", errors.New("dial tcp: timeout"), "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			s.notifier.err = tt.err
			counter := metrics.NotificationsTotal.WithLabelValues(tt.want)
			before := testutil.ToFloat64(counter)

			if rec := s.postForm("/contact/", validContactForm()); rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("%s notifications grew by %v, want 1", tt.want, got)
			}
		})
	}
}

func TestContactSubmitInvalid(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantError string
		keepValue string
	}{
		{
			name: "bad email",
			form: url.Values{
				"name":    {"Ada"},
				"email":   {"not-an-email"},
				"subject": {"Hello"},
				"message": {"Hi"},
			},
			wantError: "Enter a valid email address.",
			keepValue: `value="not-an-email"`,
		},
		{
			name: "missing message",
			form: url.Values{
				"name":    {"Ada"},
				"email":   {"ada@example.com"},
				"subject": {"Hello"},
			},
			wantError: "This field is required.",
			keepValue: `value="ada@example.com"`,
		},
		{
			name: "name too long",
			form: url.Values{
				"name":    {strings.Repeat("a", 101)},
				"email":   {"ada@example.com"},
				"subject": {"Hello"},
				"message": {"Hi"},
			},
			wantError: "at most 100 characters",
			keepValue: `value="Hello"`,
		},
		{
			name: "nul in message",
			form: url.Values{
				"name":    {"Ada"},
				"email":   {"ada@example.com"},
				"subject": {"Hello"},
				"message": {"a\x00b"},
			},
			wantError: "Null characters are not allowed.",
			keepValue: `value="ada@example.com"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)

			rec := s.postForm("/contact/", tt.form)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, `<div class="field-error">`) || !strings.Contains(body, tt.wantError) {
				t.Errorf("error %q not rendered", tt.wantError)
			}
			if !strings.Contains(body, tt.keepValue) {
				t.Errorf("submitted value %s not preserved", tt.keepValue)
			}
			if got := contactCount(t, s); got != 0 {
				t.Errorf("contacts = %d, want 0", got)
			}
			if got := s.notifier.count(); got != 0 {
				t.Errorf("notifications = %d, want 0", got)
			}
		})
	}
}

func TestContactSubmitRateLimited(t *testing.T) {
	s := newTestServer(t, map[string]string{"CONTACT_RATE_PER_MINUTE": "2"})

	for i := 0; i < 2; i++ {
		if rec := s.postForm("/contact/", validContactForm()); rec.Code != http.StatusSeeOther {
			t.Fatalf("submission %d: status = %d", i, rec.Code)
		}
	}

	rec := s.postForm("/contact/", validContactForm())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := contactCount(t, s); got != 2 {
		t.Errorf("contacts = %d, want 2", got)
	}

	// Viewing the form is not limited.
	if rec := s.get("/contact/"); rec.Code != http.StatusOK {
		t.Errorf("GET status = %d", rec.Code)
	}
}

func TestContactCSRF(t *testing.T) {
	s := newTestServer(t, map[string]string{"CSRF_KEY": "abcdefghijklmnopqrstuvwxyz012345"})

	rec := s.get("/contact/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="`+csrfFieldName+`"`) {
		t.Fatal("csrf field missing")
	}

	rec = s.postForm("/contact/", validContactForm())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status without token = %d, want 403", rec.Code)
	}
	if got := contactCount(t, s); got != 0 {
		t.Errorf("contacts = %d, want 0", got)
	}
}
