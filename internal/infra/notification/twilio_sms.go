package notification

import (
	"context"
	"fmt"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSMSSender creates an SMS sender backed by the Twilio REST API.
func NewTwilioSMSSender(cfg *config.TwilioConfig) service.SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioSMSSender{
		client: client,
		from:   cfg.FromNumber,
	}
}

// SendSMS sends a text message to a single phone number in E.164 format.
func (s *twilioSMSSender) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	return nil
}
