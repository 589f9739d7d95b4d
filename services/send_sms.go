package services

import (
	"context"
	"net/http"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// smsBodyLimit keeps a notification within a few SMS segments.
const smsBodyLimit = 480

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier texts a short summary of a notification through Twilio.
type SMSNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewSMSNotifier requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN,
// TWILIO_FROM_NUMBER and CONTACT_SMS_TO.
func NewSMSNotifier(c map[string]string) (*SMSNotifier, error) {
	for _, key := range []string{"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_FROM_NUMBER", "CONTACT_SMS_TO"} {
		if config.GetString(c, key, "") == "" {
			return nil, errs.NewConfigMissingError(key)
		}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.GetString(c, "TWILIO_ACCOUNT_SID", ""),
		Password: config.GetString(c, "TWILIO_AUTH_TOKEN", ""),
	})

	return &SMSNotifier{
		api:  client.Api,
		from: config.GetString(c, "TWILIO_FROM_NUMBER", ""),
		to:   config.GetString(c, "CONTACT_SMS_TO", ""),
	}, nil
}

func (s *SMSNotifier) Name() string {
	return "sms"
}

// Send ignores ctx: the Twilio client does not accept one.
func (s *SMSNotifier) Send(_ context.Context, n Notification) error {
	body := n.Subject + "\n" + n.Body
	if r := []rune(body); len(r) > smsBodyLimit {
		body = string(r[:smsBodyLimit-1]) + "…"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.NewDeliveryError("sms", http.StatusBadGateway, err.Error())
	}
	if msg != nil && msg.Sid != nil {
		log.Info().Str("sid", *msg.Sid).Msg("Successfully sent SMS via Twilio")
	}
	return nil
}
