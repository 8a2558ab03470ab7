package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery lifecycle handlers
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// ConfirmByCodeRequest represents the request body for confirming a delivery by its code
type ConfirmByCodeRequest struct {
	DeliveryCode int `json:"delivery_code" validate:"required,min=100000,max=999999"`
}

// CreateDelivery handles placing a new delivery
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	var req usecase.CreateDeliveryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	delivery, err := h.deliveryUC.CreateDelivery(c.Request().Context(), actor, &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery placed successfully")
}

// GetDelivery handles retrieving a single delivery
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	delivery, err := h.deliveryUC.GetDelivery(c.Request().Context(), deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery retrieved successfully")
}

// ListDeliveries handles retrieving the acting user's deliveries
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveries, err := h.deliveryUC.ListUserDeliveries(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveries, "Deliveries retrieved successfully")
}

// DeleteDelivery handles removing a delivery before pickup
func (h *DeliveryHandler) DeleteDelivery(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	if err := h.deliveryUC.DeleteDelivery(c.Request().Context(), userID, deliveryID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery deleted successfully")
}

// ConfirmDelivery handles the owner confirming a completed delivery
func (h *DeliveryHandler) ConfirmDelivery(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.ConfirmDeliveryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	delivery, err := h.deliveryUC.ConfirmDelivery(c.Request().Context(), userID, &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery confirmed successfully")
}

// ConfirmDeliveryByCode handles confirming a delivery by its 6-digit code
func (h *DeliveryHandler) ConfirmDeliveryByCode(c echo.Context) error {
	var req ConfirmByCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	delivery, err := h.deliveryUC.ConfirmDeliveryByCode(c.Request().Context(), req.DeliveryCode)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery confirmed successfully")
}

// GetDeliveryCodeQR renders the delivery code of an owned delivery as a QR image
func (h *DeliveryHandler) GetDeliveryCodeQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	png, err := h.deliveryUC.DeliveryCodeQR(c.Request().Context(), userID, deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UploadPackageImage handles storing a package image ahead of delivery creation
func (h *DeliveryHandler) UploadPackageImage(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return h.handleAppError(c, domainerrors.ErrImageRequired)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded image")
	}
	defer file.Close()

	input := &usecase.AttachImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	}

	imageURL, err := h.deliveryUC.AttachPackageImage(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"image_url": imageURL}, "Package image stored successfully")
}

// AcceptDelivery handles a rider accepting an open delivery
func (h *DeliveryHandler) AcceptDelivery(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	delivery, err := h.deliveryUC.AcceptDelivery(c.Request().Context(), riderID, deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery accepted successfully")
}

// RejectDelivery handles a rider turning down an offered delivery. The
// delivery stays open; the next nearest rider is notified instead.
func (h *DeliveryHandler) RejectDelivery(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	rider, err := h.deliveryUC.RejectDelivery(c.Request().Context(), riderID, deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rider, "Delivery rerouted to another rider")
}

// MarkPickedUp handles the assigned rider recording package pickup
func (h *DeliveryHandler) MarkPickedUp(c echo.Context) error {
	riderID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	delivery, err := h.deliveryUC.MarkPickedUp(c.Request().Context(), riderID, deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery marked as picked up")
}

// getUserID extracts the authenticated subject ID from the context
func (h *DeliveryHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// getActor builds the acting identity from the authenticated token claims
func (h *DeliveryHandler) getActor(c echo.Context) (entity.Actor, error) {
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
func (h *DeliveryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
