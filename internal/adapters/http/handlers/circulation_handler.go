package handlers

import (
	"time"

	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"
	"openshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CirculationHandler handles borrow/return/reserve endpoints
type CirculationHandler struct {
	circulationService *services.CirculationService
}

// NewCirculationHandler creates a new circulation handler
func NewCirculationHandler(circulationService *services.CirculationService) *CirculationHandler {
	return &CirculationHandler{
		circulationService: circulationService,
	}
}

// CirculationInput identifies the item and patron for a lifecycle operation
type CirculationInput struct {
	ItemID   string `json:"item_id" validate:"required"`
	PatronID string `json:"patron_id" validate:"required"`
}

// circulationError maps lifecycle errors onto HTTP responses
func circulationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrItemNotFound:
		return response.NotFound(c, "Item not found")
	case domain.ErrPatronNotFound:
		return response.NotFound(c, "Patron not found")
	case domain.ErrReservationNotFound:
		return response.NotFound(c, "Reservation not found")
	case domain.ErrItemUnavailable, domain.ErrAlreadyReserved, domain.ErrDuplicateReservation:
		return response.Conflict(c, err.Error())
	case domain.ErrItemAvailable, domain.ErrNotBorrowed, domain.ErrCapacityExceeded, domain.ErrInvalidOperation:
		return response.UnprocessableEntity(c, err.Error())
	case domain.ErrUnknownTier:
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, "Circulation operation failed")
	}
}

// ============================================================
// POST /api/v1/circulation/borrow — lend an item to a patron
// ============================================================
func (h *CirculationHandler) Borrow(c *fiber.Ctx) error {
	var input CirculationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ItemID == "" || input.PatronID == "" {
		return response.BadRequest(c, "item_id and patron_id are required")
	}

	record, err := h.circulationService.Borrow(input.ItemID, input.PatronID, time.Now())
	if err != nil {
		return circulationError(c, err)
	}
	return response.Created(c, "Item borrowed", record)
}

// ============================================================
// POST /api/v1/circulation/return — take an item back, settle fines
// ============================================================
func (h *CirculationHandler) Return(c *fiber.Ctx) error {
	var input CirculationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ItemID == "" || input.PatronID == "" {
		return response.BadRequest(c, "item_id and patron_id are required")
	}

	result, err := h.circulationService.Return(input.ItemID, input.PatronID, time.Now())
	if err != nil {
		return circulationError(c, err)
	}
	return response.Success(c, "Item returned", result)
}

// ============================================================
// POST /api/v1/circulation/reserve — hold a loaned item
// ============================================================
func (h *CirculationHandler) Reserve(c *fiber.Ctx) error {
	var input CirculationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ItemID == "" || input.PatronID == "" {
		return response.BadRequest(c, "item_id and patron_id are required")
	}

	reservation, err := h.circulationService.Reserve(input.ItemID, input.PatronID, time.Now())
	if err != nil {
		return circulationError(c, err)
	}
	return response.Created(c, "Item reserved", reservation)
}

// ============================================================
// POST /api/v1/circulation/cancel-reservation — release a hold
// ============================================================
func (h *CirculationHandler) CancelReservation(c *fiber.Ctx) error {
	var input CirculationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ItemID == "" || input.PatronID == "" {
		return response.BadRequest(c, "item_id and patron_id are required")
	}

	if err := h.circulationService.CancelReservation(input.ItemID, input.PatronID, time.Now()); err != nil {
		return circulationError(c, err)
	}
	return response.Success(c, "Reservation cancelled", nil)
}

// ============================================================
// GET /api/v1/circulation/items/:id/state — current lifecycle state
// ============================================================
func (h *CirculationHandler) GetItemState(c *fiber.Ctx) error {
	state, err := h.circulationService.ItemState(c.Params("id"))
	if err != nil {
		return response.NotFound(c, "Item not found")
	}
	return response.Success(c, "Item state retrieved", fiber.Map{"state": state})
}

// ============================================================
// GET /api/v1/circulation/loans — active loans (?patron_id= filters)
// ============================================================
func (h *CirculationHandler) GetActiveLoans(c *fiber.Ctx) error {
	loans := h.circulationService.ActiveLoans(c.Query("patron_id"))
	return response.Success(c, "Active loans retrieved", loans)
}

// ============================================================
// GET /api/v1/circulation/loans/history — full loan ledger
// ============================================================
func (h *CirculationHandler) GetLoanHistory(c *fiber.Ctx) error {
	return response.Success(c, "Loan history retrieved", h.circulationService.LoanHistory())
}

// ============================================================
// GET /api/v1/circulation/reservations — open reservation slots
// ============================================================
func (h *CirculationHandler) GetReservations(c *fiber.Ctx) error {
	return response.Success(c, "Reservations retrieved", h.circulationService.Reservations())
}
