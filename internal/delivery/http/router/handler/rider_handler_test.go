package handler

import (
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

type riderHandlerFixtures struct {
	handler *RiderHandler
	riderUC *mockusecase.MockRiderUsecase
	echo    *echo.Echo
}

func createTestRiderHandler(t *testing.T) *riderHandlerFixtures {
	t.Helper()

	riderUC := mockusecase.NewMockRiderUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	return &riderHandlerFixtures{
		handler: &RiderHandler{
			riderUC: riderUC,
			logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		riderUC: riderUC,
		echo:    e,
	}
}

func (f *riderHandlerFixtures) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestRiderHandler_UpdateLocation_Success(t *testing.T) {
	fixtures := createTestRiderHandler(t)
	riderID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPut, "/rider/location", `{"latitude": 6.5244, "longitude": 3.3792}`)
	authenticate(c, riderID, "rider")

	fixtures.riderUC.EXPECT().
		UpdateLocation(mock.Anything, riderID, mock.MatchedBy(func(input *usecase.UpdateRiderLocationInput) bool {
			return input.Latitude == 6.5244 && input.Longitude == 3.3792
		})).
		Return(nil)

	require.NoError(t, fixtures.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRiderHandler_UpdateLocation_OutOfRange(t *testing.T) {
	fixtures := createTestRiderHandler(t)

	c, rec := fixtures.newContext(http.MethodPut, "/rider/location", `{"latitude": 123.0, "longitude": 3.3792}`)
	authenticate(c, uuid.New(), "rider")

	require.NoError(t, fixtures.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiderHandler_UpdateStatus_Normalizes(t *testing.T) {
	fixtures := createTestRiderHandler(t)
	riderID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPut, "/rider/status", `{"status": "Active"}`)
	authenticate(c, riderID, "rider")

	fixtures.riderUC.EXPECT().
		UpdateStatus(mock.Anything, riderID, entity.RiderStatusActive).
		Return(nil)

	require.NoError(t, fixtures.handler.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRiderHandler_SetOperatingAreas_Empty(t *testing.T) {
	fixtures := createTestRiderHandler(t)

	c, rec := fixtures.newContext(http.MethodPut, "/rider/operating-areas", `{"landmarks": []}`)
	authenticate(c, uuid.New(), "rider")

	require.NoError(t, fixtures.handler.SetOperatingAreas(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiderHandler_ListOpenDeliveries_RequiresLandmark(t *testing.T) {
	fixtures := createTestRiderHandler(t)

	c, rec := fixtures.newContext(http.MethodGet, "/rider/deliveries/open", "")
	authenticate(c, uuid.New(), "rider")

	require.NoError(t, fixtures.handler.ListOpenDeliveries(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "landmark")
}

func TestRiderHandler_ListOpenDeliveries_Success(t *testing.T) {
	fixtures := createTestRiderHandler(t)

	c, rec := fixtures.newContext(http.MethodGet, "/rider/deliveries/open?landmark=yaba", "")
	authenticate(c, uuid.New(), "rider")

	open := []*entity.Delivery{{ID: uuid.New(), Landmark: "yaba", PackageName: "Groceries"}}
	fixtures.riderUC.EXPECT().
		ListOpenDeliveries(mock.Anything, "yaba").
		Return(open, nil)

	require.NoError(t, fixtures.handler.ListOpenDeliveries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Groceries")
}

func TestRiderHandler_VerifyRider_Success(t *testing.T) {
	fixtures := createTestRiderHandler(t)
	adminID := uuid.New()
	riderID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPost, "/admin/riders/"+riderID.String()+"/verify", "")
	authenticate(c, adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(riderID.String())

	fixtures.riderUC.EXPECT().
		VerifyRider(mock.Anything, entity.Actor{ID: adminID, Role: entity.RoleAdmin}, riderID).
		Return(nil)

	require.NoError(t, fixtures.handler.VerifyRider(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRiderHandler_VerifyRider_NotAdmin(t *testing.T) {
	fixtures := createTestRiderHandler(t)
	riderID := uuid.New()

	c, rec := fixtures.newContext(http.MethodPost, "/admin/riders/"+riderID.String()+"/verify", "")
	authenticate(c, uuid.New(), "rider")
	c.SetParamNames("id")
	c.SetParamValues(riderID.String())

	fixtures.riderUC.EXPECT().
		VerifyRider(mock.Anything, mock.AnythingOfType("entity.Actor"), riderID).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "admin role required"))

	require.NoError(t, fixtures.handler.VerifyRider(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
