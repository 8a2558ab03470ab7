package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/delivery/http/validator"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockusecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryHandlerFixtures struct {
	handler    *DeliveryHandler
	deliveryUC *mockusecase.MockDeliveryUsecase
	echo       *echo.Echo
}

func createTestDeliveryHandler(t *testing.T) *deliveryHandlerFixtures {
	t.Helper()

	deliveryUC := mockusecase.NewMockDeliveryUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	return &deliveryHandlerFixtures{
		handler: &DeliveryHandler{
			deliveryUC: deliveryUC,
			logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		deliveryUC: deliveryUC,
		echo:       e,
	}
}

func (f *deliveryHandlerFixtures) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uuid.UUID, roles ...string) {
	c.Set("userID", userID)
	c.Set("roles", roles)
}

func TestDeliveryHandler_CreateDelivery_Success(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)
	userID := uuid.New()

	body := `{
		"package_name": "Documents",
		"phone": "+2348012345678",
		"pickup_location": "12 Marina Road",
		"delivery_location": "3 Allen Avenue",
		"estimated_price": 1500,
		"landmark": "yaba"
	}`
	c, rec := fixtures.newContext(http.MethodPost, "/deliveries", body)
	authenticate(c, userID, "user")

	created := &entity.Delivery{ID: uuid.New(), UserID: userID, PackageName: "Documents", Code: 482913}
	fixtures.deliveryUC.EXPECT().
		CreateDelivery(mock.Anything, entity.Actor{ID: userID, Role: entity.RoleUser}, mock.MatchedBy(func(input *usecase.CreateDeliveryInput) bool {
			return input.PackageName == "Documents" && input.Landmark == "yaba"
		})).
		Return(created, nil)

	require.NoError(t, fixtures.handler.CreateDelivery(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Documents")
}

func TestDeliveryHandler_CreateDelivery_MissingFields(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodPost, "/deliveries", `{"package_name": "Documents"}`)
	authenticate(c, uuid.New(), "user")

	require.NoError(t, fixtures.handler.CreateDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestDeliveryHandler_CreateDelivery_NoToken(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodPost, "/deliveries", `{}`)

	require.NoError(t, fixtures.handler.CreateDelivery(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeliveryHandler_GetDelivery_InvalidID(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodGet, "/deliveries/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fixtures.handler.GetDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestDeliveryHandler_AcceptDelivery_AlreadyAssigned(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)
	riderID := uuid.New()
	deliveryID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPost, "/rider/deliveries/"+deliveryID.String()+"/accept", "")
	authenticate(c, riderID, "rider")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	fixtures.deliveryUC.EXPECT().
		AcceptDelivery(mock.Anything, riderID, deliveryID).
		Return(nil, errors.Wrap(domainerrors.ErrAlreadyAssigned, "another rider got there first"))

	require.NoError(t, fixtures.handler.AcceptDelivery(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_ASSIGNED")
}

func TestDeliveryHandler_ConfirmDeliveryByCode_Success(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodPost, "/deliveries/confirm/code", `{"delivery_code": 123456}`)
	authenticate(c, uuid.New(), "user")

	confirmed := &entity.Delivery{ID: uuid.New(), Code: 123456, IsDelivered: true, Status: entity.DeliveryStatusDelivered}
	fixtures.deliveryUC.EXPECT().
		ConfirmDeliveryByCode(mock.Anything, 123456).
		Return(confirmed, nil)

	require.NoError(t, fixtures.handler.ConfirmDeliveryByCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entity.Delivery `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsDelivered)
}

func TestDeliveryHandler_ConfirmDeliveryByCode_OutOfRange(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodPost, "/deliveries/confirm/code", `{"delivery_code": 99}`)
	authenticate(c, uuid.New(), "user")

	require.NoError(t, fixtures.handler.ConfirmDeliveryByCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryHandler_RejectDelivery_ReturnsNextRider(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)
	riderID := uuid.New()
	deliveryID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPost, "/rider/deliveries/"+deliveryID.String()+"/reject", "")
	authenticate(c, riderID, "rider")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	next := &entity.Rider{ID: uuid.New(), Name: "Tunde"}
	fixtures.deliveryUC.EXPECT().
		RejectDelivery(mock.Anything, riderID, deliveryID).
		Return(next, nil)

	require.NoError(t, fixtures.handler.RejectDelivery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tunde")
}

func TestDeliveryHandler_UploadPackageImage_MissingFile(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)

	c, rec := fixtures.newContext(http.MethodPost, "/deliveries/images", "")
	authenticate(c, uuid.New(), "user")

	require.NoError(t, fixtures.handler.UploadPackageImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "IMAGE_REQUIRED")
}

func TestDeliveryHandler_GetDeliveryCodeQR_Success(t *testing.T) {
	fixtures := createTestDeliveryHandler(t)
	userID := uuid.New()
	deliveryID := uuid.New()

	c, rec := fixtures.newContext(http.MethodGet, "/deliveries/"+deliveryID.String()+"/qrcode", "")
	authenticate(c, userID, "user")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	png := []byte{0x89, 0x50, 0x4e, 0x47}
	fixtures.deliveryUC.EXPECT().
		DeliveryCodeQR(mock.Anything, userID, deliveryID).
		Return(png, nil)

	require.NoError(t, fixtures.handler.GetDeliveryCodeQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
