package handlers

import (
	"openshelf/internal/core/domain"
	"openshelf/internal/core/services"
	"openshelf/internal/pkg/pagination"
	"openshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles item, patron and librarian registry endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ============================================================
// GET /api/v1/items — list catalog items (supports ?q= search)
// ============================================================
func (h *CatalogHandler) GetItems(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	items := h.catalogService.SearchItems(c.Query("q"))
	low, high := params.Window(len(items))

	return response.Success(c, "Items retrieved",
		pagination.NewResponse(items[low:high], params, len(items)))
}

// ============================================================
// POST /api/v1/items — add a catalog item
// ============================================================
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var input services.ItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.catalogService.AddItem(&input)
	if err != nil {
		if err == domain.ErrDuplicateItem {
			return response.Conflict(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}
	return response.Created(c, "Item added", item)
}

// ============================================================
// GET /api/v1/items/:id — item details
// ============================================================
func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.catalogService.GetItem(c.Params("id"))
	if err != nil {
		return response.NotFound(c, "Item not found")
	}

	return response.Success(c, "Item retrieved", fiber.Map{
		"item":        item,
		"description": item.Describe(),
	})
}

// ============================================================
// PUT /api/v1/items/:id — update descriptive fields
// ============================================================
func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	var input services.ItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.catalogService.UpdateItem(c.Params("id"), &input)
	if err != nil {
		if err == domain.ErrItemNotFound {
			return response.NotFound(c, "Item not found")
		}
		return response.BadRequest(c, err.Error())
	}
	return response.Success(c, "Item updated", item)
}

// ============================================================
// DELETE /api/v1/items/:id — remove item (refused while in circulation)
// ============================================================
func (h *CatalogHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.catalogService.RemoveItem(c.Params("id")); err != nil {
		switch err {
		case domain.ErrItemNotFound:
			return response.NotFound(c, "Item not found")
		case domain.ErrItemInUse:
			return response.Conflict(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to remove item")
		}
	}
	return response.Success(c, "Item removed", nil)
}

// ============================================================
// GET /api/v1/patrons — list registered patrons
// ============================================================
func (h *CatalogHandler) GetPatrons(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	patrons := h.catalogService.Patrons()
	low, high := params.Window(len(patrons))

	return response.Success(c, "Patrons retrieved",
		pagination.NewResponse(patrons[low:high], params, len(patrons)))
}

// ============================================================
// POST /api/v1/patrons — register a patron
// ============================================================
func (h *CatalogHandler) RegisterPatron(c *fiber.Ctx) error {
	var input services.PatronInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	patron, err := h.catalogService.RegisterPatron(&input)
	if err != nil {
		switch err {
		case domain.ErrDuplicatePatron:
			return response.Conflict(c, err.Error())
		case domain.ErrUnknownTier:
			return response.BadRequest(c, err.Error())
		default:
			return response.BadRequest(c, err.Error())
		}
	}
	return response.Created(c, "Patron registered", patron)
}

// ============================================================
// GET /api/v1/patrons/:id — patron details
// ============================================================
func (h *CatalogHandler) GetPatron(c *fiber.Ctx) error {
	patron, err := h.catalogService.GetPatron(c.Params("id"))
	if err != nil {
		return response.NotFound(c, "Patron not found")
	}
	return response.Success(c, "Patron retrieved", patron)
}

// ============================================================
// DELETE /api/v1/patrons/:id — remove patron (refused with active loans)
// ============================================================
func (h *CatalogHandler) DeletePatron(c *fiber.Ctx) error {
	if err := h.catalogService.RemovePatron(c.Params("id")); err != nil {
		switch err {
		case domain.ErrPatronNotFound:
			return response.NotFound(c, "Patron not found")
		case domain.ErrPatronHasLoans:
			return response.Conflict(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to remove patron")
		}
	}
	return response.Success(c, "Patron removed", nil)
}

// ============================================================
// GET /api/v1/librarians — list librarian records
// ============================================================
func (h *CatalogHandler) GetLibrarians(c *fiber.Ctx) error {
	return response.Success(c, "Librarians retrieved", h.catalogService.Librarians())
}

// ============================================================
// POST /api/v1/librarians — add a librarian record
// ============================================================
func (h *CatalogHandler) CreateLibrarian(c *fiber.Ctx) error {
	var input services.LibrarianInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	librarian, err := h.catalogService.AddLibrarian(&input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.Created(c, "Librarian added", librarian)
}
