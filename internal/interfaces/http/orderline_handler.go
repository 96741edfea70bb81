package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
)

// OrderLineHandler serves the product lines of an order (protected).
type OrderLineHandler struct {
	uc *usecase.OrderLineUseCase
}

func NewOrderLineHandler(uc *usecase.OrderLineUseCase) *OrderLineHandler {
	return &OrderLineHandler{uc: uc}
}

// ListByOrder godoc
// @Summary      Productlijnen van een bestelling
// @Tags         bestellingen
// @Security     Bearer
// @Produce      json
// @Param        bestellingId  query  string  true   "Bestellingsnummer of prefix"
// @Param        bedrijfId     query  string  false  "Genegeerd; het bedrijf komt uit het token"
// @Success      200  {object}  dto.OrderLineListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productenBestelling [get]
func (h *OrderLineHandler) ListByOrder(c *fiber.Ctx) error {
	id := c.Query("bestellingId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "bestellingId is vereist"})
	}
	out, err := h.uc.ListByOrder(SessionFrom(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bestelling niet gevonden"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bestelling hoort niet bij dit bedrijf"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "geen bedrijf gekoppeld aan deze sessie"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
