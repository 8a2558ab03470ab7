package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// MailSender defines the interface for outbound transactional email.
type MailSender interface {
	// SendEmail sends a plain-text email to a single recipient.
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender defines the interface for outbound SMS delivery.
type SMSSender interface {
	// SendSMS sends a text message to a single phone number in E.164 format.
	SendSMS(ctx context.Context, to, body string) error
}
