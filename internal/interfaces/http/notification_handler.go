package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
)

// NotificationHandler serves the per-user notification routes.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Eigen notificaties, gefilterd en gepagineerd
// @Tags         notificaties
// @Security     Bearer
// @Produce      json
// @Param        pagina            query  int     false  "Paginanummer, vanaf 0"
// @Param        rijen             query  int     false  "Rijen per pagina"
// @Param        notificatieSoort  query  int     false  "Soortcode 0-2"
// @Param        content           query  string  false  "Tekstfilter"
// @Param        bestelling        query  int     false  "Bestellings-id"
// @Param        vanDatum          query  string  false  "Vanaf datum (YYYY-MM-DD)"
// @Param        totDatum          query  string  false  "Tot datum (YYYY-MM-DD)"
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/notificaties [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var q dto.NotificationListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ongeldige queryparameters"})
	}
	out, err := h.uc.List(SessionFrom(c), q)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Recentste ongeziene notificaties
// @Tags         notificaties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RecentNotificationsResponse
// @Router       /api/notificaties/recent [get]
func (h *NotificationHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(SessionFrom(c))
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Eén notificatie openen; markeert als gelezen
// @Tags         notificaties
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Notificatie-id"
// @Success      200  {object}  dto.NotificationDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notificaties/{id} [get]
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id moet numeriek zijn"})
	}
	out, err := h.uc.GetByID(SessionFrom(c), id)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Status van een notificatie aanpassen
// @Tags         notificaties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Notificatie-id"
// @Param        body  body  dto.UpdateNotificationRequest  true  "Nieuwe status"
// @Success      200   {object}  dto.NotificationItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notificaties/{id} [put]
func (h *NotificationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id moet numeriek zijn"})
	}
	var in dto.UpdateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige aanvraag"})
	}
	out, err := h.uc.SetStatus(SessionFrom(c), id, in.Status)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

// MarkAllSeen godoc
// @Summary      Alle nieuwe notificaties als gezien markeren
// @Tags         notificaties
// @Security     Bearer
// @Produce      json
// @Success      204  "geen inhoud"
// @Router       /api/notificaties [put]
func (h *NotificationHandler) MarkAllSeen(c *fiber.Ctx) error {
	if err := h.uc.MarkAllSeen(SessionFrom(c)); err != nil {
		return notificationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Create godoc
// @Summary      Betalingsherinnering sturen naar de klant van een bestelling
// @Tags         notificaties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "Bestelling en partijen"
// @Success      201   {object}  dto.NotificationItem
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notificaties [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige aanvraag"})
	}
	out, err := h.uc.CreatePaymentReminder(SessionFrom(c), in)
	if err != nil {
		return notificationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ByOrder godoc
// @Summary      Eerste betalingsherinnering voor een bestelling
// @Tags         notificaties
// @Produce      json
// @Param        id   path  string  true  "Bestellingsnummer of prefix"
// @Success      200  {object}  dto.NotificationItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notificaties/bestelling/{id} [get]
func (h *NotificationHandler) ByOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is vereist"})
	}
	out, err := h.uc.LatestReminderForOrder(id)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

func notificationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ongeldige waarde"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "alleen leveranciers kunnen herinneringen sturen"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificatie niet gevonden"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
