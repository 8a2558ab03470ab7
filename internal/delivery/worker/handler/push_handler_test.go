package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	mockrepository "dispatch/internal/mocks/repository"
	mockservice "dispatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler         *PushHandler
	notificationSvc *mockservice.MockNotificationService
	mailSender      *mockservice.MockMailSender
	smsSender       *mockservice.MockSMSSender
	riderRepo       *mockrepository.MockRiderRepository
	userRepo        *mockrepository.MockUserRepository
	echo            *echo.Echo
}

func createTestPushHandler(t *testing.T) *pushHandlerFixtures {
	t.Helper()

	notificationSvc := mockservice.NewMockNotificationService(t)
	mailSender := mockservice.NewMockMailSender(t)
	smsSender := mockservice.NewMockSMSSender(t)
	riderRepo := mockrepository.NewMockRiderRepository(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	return &pushHandlerFixtures{
		handler: &PushHandler{
			verifyPushAuth:  false,
			logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
			notificationSvc: notificationSvc,
			mailSender:      mailSender,
			smsSender:       smsSender,
			riderRepo:       riderRepo,
			userRepo:        userRepo,
		},
		notificationSvc: notificationSvc,
		mailSender:      mailSender,
		smsSender:       smsSender,
		riderRepo:       riderRepo,
		userRepo:        userRepo,
		echo:            echo.New(),
	}
}

// pushRequest wraps a delivery event in the Pub/Sub push envelope
func (f *pushHandlerFixtures) pushRequest(t *testing.T, event *service.DeliveryEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(data),
			"messageId": "msg-1",
		},
		"subscription": "projects/local/subscriptions/delivery-events-sub",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func deviceToken(token string) *string {
	return &token
}

func TestPushHandler_DeliveryCreated_FansOutToAreaRiders(t *testing.T) {
	fixtures := createTestPushHandler(t)

	riders := []*entity.Rider{
		{ID: uuid.New(), Name: "Ayo", Email: "ayo@example.com", Phone: "+2348011111111", OperatingAreas: []string{"yaba"}, DeviceToken: deviceToken("token-a")},
		{ID: uuid.New(), Name: "Bisi", Email: "bisi@example.com", Phone: "+2348022222222", OperatingAreas: []string{"ikeja", "yaba"}},
	}
	// A rider whose listing no longer covers the landmark is skipped entirely.
	stale := &entity.Rider{ID: uuid.New(), Name: "Chidi", Email: "chidi@example.com", Phone: "+2348033333333", OperatingAreas: []string{"ikeja"}, DeviceToken: deviceToken("token-c")}
	fixtures.riderRepo.EXPECT().
		FindRidersByOperatingArea(mock.Anything, "yaba").
		Return(append(riders, stale), nil)

	for _, rider := range riders {
		fixtures.mailSender.EXPECT().
			SendEmail(mock.Anything, rider.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(nil)
		fixtures.smsSender.EXPECT().
			SendSMS(mock.Anything, rider.Phone, mock.AnythingOfType("string")).
			Return(nil)
	}

	// Only the rider with a registered device gets a push
	fixtures.notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:        service.EventDeliveryCreated,
		DeliveryID:  uuid.New().String(),
		UserID:      uuid.New().String(),
		PackageName: "Documents",
		Landmark:    "yaba",
		PickupPlace: "12 Marina Road",
		Price:       1500,
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RiderMatched_NotifiesMatchedRider(t *testing.T) {
	fixtures := createTestPushHandler(t)
	riderID := uuid.New()

	rider := &entity.Rider{ID: riderID, Name: "Ayo", Email: "ayo@example.com", Phone: "+2348011111111", DeviceToken: deviceToken("token-a")}
	fixtures.riderRepo.EXPECT().FindRiderByID(mock.Anything, riderID).Return(rider, nil)
	fixtures.mailSender.EXPECT().
		SendEmail(mock.Anything, rider.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fixtures.smsSender.EXPECT().
		SendSMS(mock.Anything, rider.Phone, mock.AnythingOfType("string")).
		Return(nil)
	fixtures.notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:        service.EventRiderMatched,
		DeliveryID:  uuid.New().String(),
		UserID:      uuid.New().String(),
		RiderID:     riderID.String(),
		PackageName: "Documents",
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeliveryPickedUp_TextsCodeToRequester(t *testing.T) {
	fixtures := createTestPushHandler(t)
	userID := uuid.New()

	user := &entity.User{ID: userID, Phone: "+2348033333333"}
	fixtures.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(user, nil)
	fixtures.smsSender.EXPECT().
		SendSMS(mock.Anything, user.Phone, mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "482913")
		})).
		Return(nil)

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:         service.EventDeliveryPickedUp,
		DeliveryID:   uuid.New().String(),
		DeliveryCode: 482913,
		UserID:       userID.String(),
		PackageName:  "Documents",
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeliveryAccepted_SkipsUserWithoutToken(t *testing.T) {
	fixtures := createTestPushHandler(t)
	userID := uuid.New()

	fixtures.userRepo.EXPECT().
		FindUserByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Phone: "+2348033333333"}, nil)

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:       service.EventDeliveryAccepted,
		DeliveryID: uuid.New().String(),
		UserID:     userID.String(),
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableRepoFailure_Returns503(t *testing.T) {
	fixtures := createTestPushHandler(t)

	fixtures.riderRepo.EXPECT().
		FindRidersByOperatingArea(mock.Anything, "yaba").
		Return(nil, fmt.Errorf("connection refused"))

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:       service.EventDeliveryCreated,
		DeliveryID: uuid.New().String(),
		UserID:     uuid.New().String(),
		Landmark:   "yaba",
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownEventType_Acked(t *testing.T) {
	fixtures := createTestPushHandler(t)

	c, rec := fixtures.pushRequest(t, &service.DeliveryEvent{
		Type:       "delivery.unknown",
		DeliveryID: uuid.New().String(),
	})

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedData_Returns400(t *testing.T) {
	fixtures := createTestPushHandler(t)

	body := `{"message": {"data": "not base64!!", "messageId": "msg-1"}, "subscription": "sub"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fixtures.echo.NewContext(req, rec)

	require.NoError(t, fixtures.handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
