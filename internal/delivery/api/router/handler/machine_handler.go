package handler

import (
	"log/slog"
	"net/http"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/slider"
	"solarjuice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MachineHandlerParams holds dependencies for MachineHandler, injected by Fx.
type MachineHandlerParams struct {
	fx.In

	MachineUC usecase.MachineUsecase
	Logger    *slog.Logger
}

// MachineHandler serves the machine control panel
type MachineHandler struct {
	machineUC usecase.MachineUsecase
	logger    *slog.Logger
}

// NewMachineHandler is the constructor for MachineHandler
func NewMachineHandler(params MachineHandlerParams) *MachineHandler {
	return &MachineHandler{
		machineUC: params.MachineUC,
		logger:    params.Logger,
	}
}

// UpdateMachineRequest is a partial update of the machine controls
type UpdateMachineRequest struct {
	Speed              *int     `json:"speed" validate:"omitnil,min=0,max=100"`
	IsCharging         *bool    `json:"is_charging"`
	IsPaymentMachineOn *bool    `json:"is_payment_machine_on"`
	IsLightOn          *bool    `json:"is_light_on"`
	FanSpeed           *string  `json:"fan_speed" validate:"omitnil,oneof=off low medium high"`
	SolarEfficiency    *float64 `json:"solar_efficiency" validate:"omitnil,min=0,max=1"`
}

// GetMachine returns one machine
func (h *MachineHandler) GetMachine(c echo.Context) error {
	machineID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "machine ID")
	}

	machine, err := h.machineUC.GetMachine(c.Request().Context(), machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// GetMachineStatus returns the machine with its derived battery figures
func (h *MachineHandler) GetMachineStatus(c echo.Context) error {
	machineID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "machine ID")
	}

	status, err := h.machineUC.GetMachineStatus(c.Request().Context(), machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// UpdateMachine applies a partial update of the controls
func (h *MachineHandler) UpdateMachine(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	machineID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "machine ID")
	}

	var req UpdateMachineRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.UpdateMachineInput{
		Speed:              req.Speed,
		IsCharging:         req.IsCharging,
		IsPaymentMachineOn: req.IsPaymentMachineOn,
		IsLightOn:          req.IsLightOn,
		SolarEfficiency:    req.SolarEfficiency,
	}
	if req.FanSpeed != nil {
		fan := entity.FanSpeed(*req.FanSpeed)
		input.FanSpeed = &fan
	}

	machine, err := h.machineUC.UpdateMachine(c.Request().Context(), actor.UserID, machineID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// CycleFan advances the fan to its next speed
func (h *MachineHandler) CycleFan(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	machineID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "machine ID")
	}

	machine, err := h.machineUC.CycleFanSpeed(c.Request().Context(), actor.UserID, machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// SliderResponse is the updated machine plus the knob angle that shows its
// new speed, so a client can redraw either widget.
type SliderResponse struct {
	*entity.Machine
	KnobAngle float64 `json:"knob_angle"`
}

// SetSpeedFromSlider sets the juicer speed from a knob or track reading
func (h *MachineHandler) SetSpeedFromSlider(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	machineID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "machine ID")
	}

	var req usecase.SliderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Malformed slider input")
	}

	machine, err := h.machineUC.SetSpeedFromSlider(c.Request().Context(), actor.UserID, machineID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SliderResponse{
		Machine:   machine,
		KnobAngle: slider.RadialAngle(machine.Speed, entity.MinMachineSpeed, entity.MaxMachineSpeed),
	})
}
