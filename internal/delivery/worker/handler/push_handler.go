package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying delivery lifecycle events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	mailSender      service.MailSender
	smsSender       service.SMSSender
	riderRepo       repository.RiderRepository
	userRepo        repository.UserRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	MailSender      service.MailSender
	SMSSender       service.SMSSender
	RiderRepo       repository.RiderRepository
	UserRepo        repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		mailSender:      params.MailSender,
		smsSender:       params.SMSSender,
		riderRepo:       params.RiderRepo,
		userRepo:        params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Notifier] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Notifier] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse the delivery event
	var event service.DeliveryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Notifier] Failed to parse delivery event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Notifier] Processing delivery event",
		slog.String("type", event.Type),
		slog.String("delivery_id", event.DeliveryID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Notifier] Failed to process delivery event",
			slog.String("type", event.Type),
			slog.String("delivery_id", event.DeliveryID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Notifier] Delivery event processed",
		slog.String("type", event.Type),
		slog.String("delivery_id", event.DeliveryID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DeliveryEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent routes an event to the notification flow matching its type
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	switch event.Type {
	case service.EventDeliveryCreated:
		return h.notifyAreaRiders(ctx, logger, event)
	case service.EventRiderMatched:
		return h.notifyMatchedRider(ctx, logger, event)
	case service.EventDeliveryAccepted:
		return h.notifyDeliveryAccepted(ctx, logger, event)
	case service.EventDeliveryPickedUp:
		return h.notifyPickedUp(ctx, logger, event)
	case service.EventDeliveryConfirmed:
		return h.notifyConfirmed(ctx, logger, event)
	default:
		logger.Warn("[Notifier] Unknown event type, dropping", slog.String("type", event.Type))

		return nil
	}
}

// notifyAreaRiders fans a new delivery out to every rider operating around its landmark
func (h *PushHandler) notifyAreaRiders(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	riders, err := h.riderRepo.FindRidersByOperatingArea(ctx, event.Landmark)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(riders) == 0 {
		logger.Info("[Notifier] No riders operating around landmark",
			slog.String("landmark", event.Landmark),
		)

		return nil
	}

	subject := fmt.Sprintf("New delivery job around %s", event.Landmark)
	body := fmt.Sprintf(
		"A new delivery of %s is waiting around %s.\nPickup: %s\nDropoff: %s\nEstimated price: %.2f",
		event.PackageName, event.Landmark, event.PickupPlace, event.DropoffPlace, event.Price,
	)
	smsBody := fmt.Sprintf("New delivery job around %s: %s. Open the app to accept.", event.Landmark, event.PackageName)

	notified := 0
	for _, rider := range riders {
		// Re-check against the event's landmark so a stale area listing
		// cannot route the offer to a rider who no longer serves it.
		if !rider.ServesArea(event.Landmark) {
			continue
		}

		h.sendEmail(ctx, logger, rider.Email, subject, body)
		h.sendSMS(ctx, logger, rider.Phone, smsBody)
		h.pushToToken(ctx, logger, rider.DeviceToken, subject, smsBody, h.eventData(event))
		notified++
	}

	logger.Info("[Notifier] Notified area riders",
		slog.String("landmark", event.Landmark),
		slog.Int("rider_count", notified),
	)

	return nil
}

// notifyMatchedRider offers the delivery to the nearest rider picked by dispatch
func (h *PushHandler) notifyMatchedRider(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	riderID, err := uuid.Parse(event.RiderID)
	if err != nil {
		return errors.WithStack(err)
	}

	rider, err := h.riderRepo.FindRiderByID(ctx, riderID)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			logger.Warn("[Notifier] Matched rider no longer exists", slog.String("rider_id", event.RiderID))

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	subject := "You have been matched with a delivery"
	body := fmt.Sprintf(
		"You are the closest rider to a delivery of %s.\nPickup: %s\nDropoff: %s\nEstimated price: %.2f\nOpen the app to accept or reject.",
		event.PackageName, event.PickupPlace, event.DropoffPlace, event.Price,
	)
	smsBody := fmt.Sprintf("You have been matched with a delivery of %s from %s. Open the app to respond.", event.PackageName, event.PickupPlace)

	h.sendEmail(ctx, logger, rider.Email, subject, body)
	h.sendSMS(ctx, logger, rider.Phone, smsBody)
	h.pushToToken(ctx, logger, rider.DeviceToken, subject, smsBody, h.eventData(event))

	return nil
}

// notifyDeliveryAccepted tells the requesting user a rider took the job
func (h *PushHandler) notifyDeliveryAccepted(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	user, err := h.findEventUser(ctx, logger, event)
	if err != nil || user == nil {
		return err
	}

	if user.DeviceToken == nil {
		logger.Info("[Notifier] User has no device token, skipping push",
			slog.String("user_id", user.ID.String()),
		)

		return nil
	}

	h.pushToToken(ctx, logger, user.DeviceToken,
		"Delivery request accepted",
		fmt.Sprintf("A rider accepted your delivery of %s.", event.PackageName),
		h.eventData(event),
	)

	return nil
}

// notifyPickedUp texts the delivery code to the requester once the package is in transit
func (h *PushHandler) notifyPickedUp(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	user, err := h.findEventUser(ctx, logger, event)
	if err != nil || user == nil {
		return err
	}

	smsBody := fmt.Sprintf(
		"Your package %s has been picked up. Delivery code: %06d. Share it only on handoff.",
		event.PackageName, event.DeliveryCode,
	)
	h.sendSMS(ctx, logger, user.Phone, smsBody)

	h.pushToToken(ctx, logger, user.DeviceToken,
		"Package picked up",
		fmt.Sprintf("Your delivery of %s is on its way.", event.PackageName),
		h.eventData(event),
	)

	return nil
}

// notifyConfirmed closes the loop with the requester after drop-off
func (h *PushHandler) notifyConfirmed(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) error {
	user, err := h.findEventUser(ctx, logger, event)
	if err != nil || user == nil {
		return err
	}

	subject := "Delivery completed"
	body := fmt.Sprintf(
		"Your delivery of %s to %s has been confirmed. Thank you for using our service.",
		event.PackageName, event.DropoffPlace,
	)
	h.sendEmail(ctx, logger, user.Email, subject, body)

	h.pushToToken(ctx, logger, user.DeviceToken, subject,
		fmt.Sprintf("Your delivery of %s is complete.", event.PackageName),
		h.eventData(event),
	)

	return nil
}

// findEventUser resolves the requesting user behind an event. A missing user
// is dropped as permanent; repository failures are retryable.
func (h *PushHandler) findEventUser(ctx context.Context, logger *slog.Logger, event *service.DeliveryEvent) (*entity.User, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("[Notifier] Event user no longer exists", slog.String("user_id", event.UserID))

			return nil, nil
		}

		return nil, newRetryableError(errors.WithStack(err))
	}

	return user, nil
}

// sendEmail sends a transactional email when a mail sender is configured
func (h *PushHandler) sendEmail(ctx context.Context, logger *slog.Logger, to, subject, body string) {
	if h.mailSender == nil || to == "" {
		return
	}

	if err := h.mailSender.SendEmail(ctx, to, subject, body); err != nil {
		logger.Warn("[Notifier] Failed to send email", slog.String("to", to), slog.Any("error", err))
	}
}

// sendSMS sends a text message when an SMS sender is configured
func (h *PushHandler) sendSMS(ctx context.Context, logger *slog.Logger, to, body string) {
	if h.smsSender == nil || to == "" {
		return
	}

	if err := h.smsSender.SendSMS(ctx, to, body); err != nil {
		logger.Warn("[Notifier] Failed to send SMS", slog.String("to", to), slog.Any("error", err))
	}
}

// pushToToken sends a push notification when a device token is known
func (h *PushHandler) pushToToken(ctx context.Context, logger *slog.Logger, token *string, title, body string, data map[string]string) {
	if h.notificationSvc == nil || token == nil || *token == "" {
		return
	}

	if err := h.notificationSvc.SendSingleNotification(ctx, *token, title, body, data); err != nil {
		logger.Warn("[Notifier] Failed to send push notification", slog.Any("error", err))
	}
}

// eventData flattens an event into push notification data
func (h *PushHandler) eventData(event *service.DeliveryEvent) map[string]string {
	return map[string]string{
		"type":        event.Type,
		"delivery_id": event.DeliveryID,
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
