package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RiderHandlerParams holds dependencies for RiderHandler, injected by Fx.
type RiderHandlerParams struct {
	fx.In

	RiderUC usecase.RiderUsecase
	Logger  *slog.Logger
}

// RiderHandler holds dependencies for rider management handlers
type RiderHandler struct {
	riderUC usecase.RiderUsecase
	logger  *slog.Logger
}

// NewRiderHandler is the constructor for RiderHandler
func NewRiderHandler(params RiderHandlerParams) *RiderHandler {
	return &RiderHandler{
		riderUC: params.RiderUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest represents the request body for switching rider availability
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OperatingAreasRequest represents the request body for replacing operating areas
type OperatingAreasRequest struct {
	Landmarks []string `json:"landmarks" validate:"required,min=1"`
}

// UpdateLocation handles a rider position ping
func (h *RiderHandler) UpdateLocation(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateRiderLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.riderUC.UpdateLocation(c.Request().Context(), riderID, &req); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

// UpdateStatus handles switching the rider between active and inactive
func (h *RiderHandler) UpdateStatus(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	status := entity.RiderStatus(strings.ToLower(req.Status))
	if err := h.riderUC.UpdateStatus(c.Request().Context(), riderID, status); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully")
}

// SetOperatingAreas handles replacing the rider's operating areas
func (h *RiderHandler) SetOperatingAreas(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req OperatingAreasRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operating areas input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.riderUC.SetOperatingAreas(c.Request().Context(), riderID, req.Landmarks); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Operating areas updated successfully")
}

// ListOpenDeliveries handles retrieving unassigned deliveries around a landmark
func (h *RiderHandler) ListOpenDeliveries(c echo.Context) error {
	landmark := c.QueryParam("landmark")
	if landmark == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "landmark query parameter is required")
	}

	deliveries, err := h.riderUC.ListOpenDeliveries(c.Request().Context(), landmark)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveries, "Open deliveries retrieved successfully")
}

// VerifyRider handles an admin marking a rider account as verified
func (h *RiderHandler) VerifyRider(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	riderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rider ID")
	}

	if err := h.riderUC.VerifyRider(c.Request().Context(), actor, riderID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rider verified successfully")
}

// getUserID extracts the authenticated subject ID from the context
func (h *RiderHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// getActor builds the acting identity from the authenticated token claims
func (h *RiderHandler) getActor(c echo.Context) (entity.Actor, error) {
	userID, err := h.getUserID(c)
	if err != nil {
		return entity.Actor{}, err
	}

	rolesVal, _ := c.Get("roles").([]string)
	roles := entity.RolesFromStrings(rolesVal)
	if len(roles) == 0 {
		return entity.Actor{}, response.Forbidden(c, "FORBIDDEN", "Role information missing")
	}

	return entity.Actor{ID: userID, Role: roles[0]}, nil
}

// handleAppError handles application errors
func (h *RiderHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
