package handler

import (
	"log/slog"
	"net/http"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler serves shop registration for shopkeepers and admins
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// SubmitRegistrationRequest represents a shopkeeper's application
type SubmitRegistrationRequest struct {
	ShopName  string  `json:"shop_name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Lat       float64 `json:"lat" validate:"min=-90,max=90"`
	Lng       float64 `json:"lng" validate:"min=-180,max=180"`
	MachineID string  `json:"machine_id" validate:"omitempty,uuid"`
}

// RejectRegistrationRequest carries an optional reason
type RejectRegistrationRequest struct {
	Reason string `json:"reason"`
}

// Submit files a registration for the shopkeeper
func (h *RegistrationHandler) Submit(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	var req SubmitRegistrationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.SubmitRegistrationInput{
		ShopName: req.ShopName,
		Address:  req.Address,
		Location: entity.Location{Lat: req.Lat, Lng: req.Lng},
	}
	if req.MachineID != "" {
		machineID := uuid.MustParse(req.MachineID)
		input.MachineID = &machineID
	}

	registration, err := h.registrationUC.Submit(c.Request().Context(), actor.UserID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registration)
}

// ListMine lists the shopkeeper's registrations, newest first
func (h *RegistrationHandler) ListMine(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	registrations, err := h.registrationUC.ListMyRegistrations(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registrations)
}

// List is the admin listing, optionally filtered by ?status=
func (h *RegistrationHandler) List(c echo.Context) error {
	var status *entity.RegistrationStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.RegistrationStatus(raw)
		status = &s
	}

	registrations, err := h.registrationUC.ListRegistrations(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registrations)
}

// Approve creates the shop for a pending registration
func (h *RegistrationHandler) Approve(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	registrationID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "registration ID")
	}

	result, err := h.registrationUC.Approve(c.Request().Context(), actor.UserID, registrationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Reject declines a pending registration
func (h *RegistrationHandler) Reject(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	registrationID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "registration ID")
	}

	var req RejectRegistrationRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Malformed reject input")
		}
	}

	registration, err := h.registrationUC.Reject(c.Request().Context(), actor.UserID, registrationID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registration)
}
