package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
)

// CompanyHandler serves company profiles and the update-request flow.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetByID godoc
// @Summary      Bedrijfsprofiel opvragen
// @Tags         bedrijven
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Bedrijfs-id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bedrijven/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id moet numeriek zijn"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return companyError(c, err)
	}
	return c.JSON(out)
}

// GetOwn godoc
// @Summary      Eigen bedrijfsprofiel opvragen
// @Tags         bedrijven
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/bedrijven [get]
func (h *CompanyHandler) GetOwn(c *fiber.Ctx) error {
	out, err := h.uc.GetOwn(SessionFrom(c))
	if err != nil {
		return companyError(c, err)
	}
	return c.JSON(out)
}

// RequestUpdate godoc
// @Summary      Wijziging van het eigen bedrijfsprofiel aanvragen
// @Tags         bedrijven
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanyUpdateRequestBody  true  "Gewenste gegevens"
// @Success      201   {object}  dto.CompanyUpdateRequestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bedrijven [post]
func (h *CompanyHandler) RequestUpdate(c *fiber.Ctx) error {
	var in dto.CompanyUpdateRequestBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige aanvraag"})
	}
	out, err := h.uc.RequestUpdate(SessionFrom(c), in)
	if err != nil {
		return companyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApplyUpdate godoc
// @Summary      Openstaande wijzigingsaanvraag doorvoeren
// @Tags         bedrijven
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Bedrijfs-id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bedrijven/{id} [put]
func (h *CompanyHandler) ApplyUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id moet numeriek zijn"})
	}
	out, err := h.uc.ApplyUpdate(id)
	if err != nil {
		return companyError(c, err)
	}
	return c.JSON(out)
}

func companyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "alleen het eigen bedrijf is aanpasbaar"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bedrijf of aanvraag niet gevonden"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
