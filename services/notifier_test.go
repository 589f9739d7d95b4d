package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type recordingNotifier struct {
	name string
	err  error
	sent []Notification
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Send(_ context.Context, n Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestContactNotification(t *testing.T) {
	n := ContactNotification(&models.Contact{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "Let's build an engine.",
	})

	if n.Subject != "Portfolio Contact: Collaboration" {
		t.Errorf("Subject = %q", n.Subject)
	}
	if want := "From: Ada Lovelace (ada@example.com)\n\nLet's build an engine."; n.Body != want {
		t.Errorf("Body = %q, want %q", n.Body, want)
	}
	if n.ReplyTo != "ada@example.com" {
		t.Errorf("ReplyTo = %q", n.ReplyTo)
	}
}

func TestDispatcher_NoChannels(t *testing.T) {
	err := NewDispatcher().Dispatch(context.Background(), Notification{})
	if !errs.IsConfigMissingError(err) {
		t.Errorf("Dispatch() error = %v, want config missing", err)
	}
}

func TestDispatcher_SendsEveryChannel(t *testing.T) {
	email := &recordingNotifier{name: "email"}
	sms := &recordingNotifier{name: "sms", err: errors.New("twilio down")}
	d := NewDispatcher(email, sms)

	err := d.Dispatch(context.Background(), Notification{Subject: "s"})
	if err == nil || !strings.Contains(err.Error(), "sms: twilio down") {
		t.Errorf("Dispatch() error = %v, want sms failure", err)
	}
	if len(email.sent) != 1 || len(sms.sent) != 1 {
		t.Errorf("sent email=%d sms=%d, want 1 each", len(email.sent), len(sms.sent))
	}
	if got := d.Names(); len(got) != 2 || got[0] != "email" || got[1] != "sms" {
		t.Errorf("Names() = %v", got)
	}
}

func TestDispatcher_RegisterReplaces(t *testing.T) {
	first := &recordingNotifier{name: "email"}
	second := &recordingNotifier{name: "email"}
	d := NewDispatcher(first)
	d.Register(second)

	if err := d.Dispatch(context.Background(), Notification{}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(first.sent) != 0 || len(second.sent) != 1 {
		t.Errorf("replacement not used: first=%d second=%d", len(first.sent), len(second.sent))
	}
	if len(d.Names()) != 1 {
		t.Errorf("Names() = %v, want one channel", d.Names())
	}
}

func TestNewDispatcherFromConfig_NothingConfigured(t *testing.T) {
	d := NewDispatcherFromConfig(map[string]string{})
	if len(d.Names()) != 0 {
		t.Errorf("Names() = %v, want none", d.Names())
	}
}

func TestNewEmailNotifier_MissingConfig(t *testing.T) {
	_, err := NewEmailNotifier(map[string]string{"RESEND_API_KEY": "re_test"})
	if !errs.IsConfigMissingError(err) {
		t.Errorf("NewEmailNotifier() error = %v, want config missing", err)
	}
}

func newResendServer(t *testing.T, status int, response string, got *ResendEmailRequest, headers *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if headers != nil {
			*headers = r.Header.Clone()
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEmailNotifier_Send(t *testing.T) {
	var req ResendEmailRequest
	var headers http.Header
	srv := newResendServer(t, http.StatusOK, `{"id":"email_123"}`, &req, &headers)

	notifier, err := NewEmailNotifier(map[string]string{
		"RESEND_API_KEY":    "re_test",
		"RESEND_FROM_EMAIL": "Portfolio <noreply@example.com>",
		"CONTACT_RECIPIENT": "owner@example.com",
		"RESEND_BASE_URL":   srv.URL,
	})
	if err != nil {
		t.Fatalf("NewEmailNotifier() error = %v", err)
	}

	id, err := notifier.SendEmail(context.Background(), "Portfolio Contact: Hi", "From: Ada (ada@example.com)\n\nHello", "ada@example.com", []string{"owner@example.com"})
	if err != nil {
		t.Fatalf("SendEmail() error = %v", err)
	}
	if id != "email_123" {
		t.Errorf("SendEmail() id = %q", id)
	}
	if req.Subject != "Portfolio Contact: Hi" || req.ReplyTo != "ada@example.com" || len(req.To) != 1 || req.To[0] != "owner@example.com" {
		t.Errorf("request payload = %+v", req)
	}
	if got := headers.Get("Authorization"); got != "Bearer re_test" {
		t.Errorf("Authorization = %q", got)
	}
	if headers.Get("Idempotency-Key") == "" {
		t.Error("missing Idempotency-Key header")
	}
}

func TestEmailNotifier_RejectedByResend(t *testing.T) {
	srv := newResendServer(t, http.StatusUnprocessableEntity, `{"message":"Invalid from address"}`, nil, nil)

	notifier, err := NewEmailNotifier(map[string]string{
		"RESEND_API_KEY":    "re_test",
		"RESEND_FROM_EMAIL": "bad",
		"CONTACT_RECIPIENT": "owner@example.com",
		"RESEND_BASE_URL":   srv.URL,
	})
	if err != nil {
		t.Fatalf("NewEmailNotifier() error = %v", err)
	}

	err = notifier.Send(context.Background(), Notification{Subject: "s", Body: "b"})
	if !errs.IsDeliveryError(err) {
		t.Fatalf("Send() error = %v, want delivery error", err)
	}
	if !strings.Contains(err.Error(), "Invalid from address") {
		t.Errorf("error %q does not carry the Resend message", err)
	}
}

type fakeMessages struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSNotifier_Send(t *testing.T) {
	api := &fakeMessages{}
	s := &SMSNotifier{api: api, from: "+15550000000", to: "+15551111111"}

	long := strings.Repeat("x", 1000)
	if err := s.Send(context.Background(), Notification{Subject: "Portfolio Contact: Hi", Body: long}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if *api.params.To != "+15551111111" || *api.params.From != "+15550000000" {
		t.Errorf("params to=%q from=%q", *api.params.To, *api.params.From)
	}
	if n := len([]rune(*api.params.Body)); n != smsBodyLimit {
		t.Errorf("body has %d runes, want %d", n, smsBodyLimit)
	}
}

func TestSMSNotifier_Failure(t *testing.T) {
	s := &SMSNotifier{api: &fakeMessages{err: errors.New("unauthorized")}, from: "a", to: "b"}
	if err := s.Send(context.Background(), Notification{}); !errs.IsDeliveryError(err) {
		t.Errorf("Send() error = %v, want delivery error", err)
	}
}

func TestNewSMSNotifier_MissingConfig(t *testing.T) {
	_, err := NewSMSNotifier(map[string]string{"TWILIO_ACCOUNT_SID": "AC123"})
	if !errs.IsConfigMissingError(err) {
		t.Errorf("NewSMSNotifier() error = %v, want config missing", err)
	}
}
