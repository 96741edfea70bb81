package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
)

// OrderHandler serves the order list and detail routes (protected).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Bestellingen van het eigen bedrijf, gefilterd en gepagineerd
// @Tags         bestellingen
// @Security     Bearer
// @Produce      json
// @Param        pagina            query  int     false  "Paginanummer, vanaf 0"
// @Param        rijen             query  int     false  "Rijen per pagina"
// @Param        id                query  string  false  "Deel van het bestellingsnummer"
// @Param        bedrag            query  string  false  "Exact bedrag"
// @Param        vanDatum          query  string  false  "Vanaf datum (YYYY-MM-DD)"
// @Param        totDatum          query  string  false  "Tot datum (YYYY-MM-DD)"
// @Param        bestellingstatus  query  string  false  "Bestellingstatus-label"
// @Param        betaalstatus      query  string  false  "Betaalstatus-label"
// @Param        zoek              query  string  false  "Vrije zoekterm"
// @Param        order_by          query  string  false  "Sorteerveld (bedrag, datum, bestellingstatus, betaalstatus, id)"
// @Param        order             query  string  false  "asc of desc"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/bestellingen [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ongeldige queryparameters"})
	}
	out, err := h.uc.List(SessionFrom(c), q)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Eén bestelling via (een deel van) het bestellingsnummer
// @Tags         bestellingen
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Bestellingsnummer of prefix"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bestellingen/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is vereist"})
	}
	out, err := h.uc.GetByUUID(SessionFrom(c), id)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

func orderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "geen bedrijf gekoppeld aan deze sessie"})
	}
	if errors.Is(err, domain.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ongeldige filterwaarde"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bestelling niet gevonden"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
