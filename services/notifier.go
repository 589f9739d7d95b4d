package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog/log"
)

// Notification is a channel-neutral message to the site owner.
type Notification struct {
	Subject string
	Body    string
	ReplyTo string
}

// ContactNotification builds the message sent when a visitor submits the contact form.
func ContactNotification(c *models.Contact) Notification {
	return Notification{
		Subject: "Portfolio Contact: " + c.Subject,
		Body:    fmt.Sprintf("From: %s (%s)\n\n%s", c.Name, c.Email, c.Message),
		ReplyTo: c.Email,
	}
}

// Notifier delivers a Notification over one channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// Dispatcher fans a notification out to every registered channel.
type Dispatcher struct {
	mu        sync.RWMutex
	notifiers map[string]Notifier
	order     []string
}

func NewDispatcher(notifiers ...Notifier) *Dispatcher {
	d := &Dispatcher{notifiers: make(map[string]Notifier)}
	for _, n := range notifiers {
		d.Register(n)
	}
	return d
}

// NewDispatcherFromConfig registers the email and SMS channels that are configured.
// Missing configuration disables a channel with a warning.
func NewDispatcherFromConfig(c map[string]string) *Dispatcher {
	d := NewDispatcher()

	email, err := NewEmailNotifier(c)
	if err != nil {
		log.Warn().Err(err).Msg("Email notifications disabled")
	} else {
		d.Register(email)
	}

	if config.GetString(c, "TWILIO_ACCOUNT_SID", "") != "" {
		sms, err := NewSMSNotifier(c)
		if err != nil {
			log.Warn().Err(err).Msg("SMS notifications disabled")
		} else {
			d.Register(sms)
		}
	}

	return d
}

// Register adds n, replacing any notifier with the same name.
func (d *Dispatcher) Register(n Notifier) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.notifiers[n.Name()]; !ok {
		d.order = append(d.order, n.Name())
	}
	d.notifiers[n.Name()] = n
}

// Names lists registered channels in registration order.
func (d *Dispatcher) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.order...)
}

// Dispatch sends n on every channel and joins the failures. With no channel
// registered it reports ErrConfigMissing so callers can log that nothing was sent.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.order) == 0 {
		return errs.NewConfigMissingError("RESEND_API_KEY")
	}

	var failures []error
	for _, name := range d.order {
		if err := d.notifiers[name].Send(ctx, n); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(failures...)
}
