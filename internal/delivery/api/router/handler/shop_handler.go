package handler

import (
	"log/slog"
	"net/http"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC    usecase.ShopUsecase
	MachineUC usecase.MachineUsecase
	Logger    *slog.Logger
}

// ShopHandler serves the map, shop details and shop QR codes
type ShopHandler struct {
	shopUC    usecase.ShopUsecase
	machineUC usecase.MachineUsecase
	logger    *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC:    params.ShopUC,
		machineUC: params.MachineUC,
		logger:    params.Logger,
	}
}

// ResolveQRRequest carries the scanned QR content
type ResolveQRRequest struct {
	Data string `json:"data" validate:"required"`
}

// ListNearby lists approved shops nearest first from ?lat=&lng=
func (h *ShopHandler) ListNearby(c echo.Context) error {
	result, err := h.shopUC.ListNearbyShops(c.Request().Context(), queryLocation(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetShop returns one shop
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "shop ID")
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// GetShopMachine returns the machine installed at the shop
func (h *ShopHandler) GetShopMachine(c echo.Context) error {
	shopID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "shop ID")
	}

	machine, err := h.machineUC.GetMachineByShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// GetShopQR returns the shop QR code as a PNG image
func (h *ShopHandler) GetShopQR(c echo.Context) error {
	shopID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "shop ID")
	}

	png, err := h.shopUC.GenerateShopQR(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR returns the shop a scanned QR code points at
func (h *ShopHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shop, err := h.shopUC.ResolveShopQR(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// SelectShop records the customer's choice of shop
func (h *ShopHandler) SelectShop(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	shopID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "shop ID")
	}

	shop, err := h.shopUC.SelectShop(c.Request().Context(), actor.UserID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// GetDirections returns the route summary from ?lat=&lng= to the shop
func (h *ShopHandler) GetDirections(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	shopID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "shop ID")
	}

	directions, err := h.shopUC.GetDirections(c.Request().Context(), actor.UserID, shopID, queryLocation(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, directions)
}

// GetMyShop returns the shopkeeper's approved shop
func (h *ShopHandler) GetMyShop(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	shop, err := h.shopUC.GetMyShop(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}
