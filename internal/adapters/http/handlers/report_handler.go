package handlers

import (
	"time"

	"openshelf/internal/core/services"
	"openshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles reporting and reminder endpoints
type ReportHandler struct {
	reportService   *services.ReportService
	reminderService *services.ReminderService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService, reminderService *services.ReminderService) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		reminderService: reminderService,
	}
}

// asOf reads an optional ?as_of=YYYY-MM-DD query, defaulting to now
func asOf(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// ============================================================
// GET /api/v1/reports/most-borrowed — ranking by borrow count
// ============================================================
func (h *ReportHandler) GetMostBorrowed(c *fiber.Ctx) error {
	return response.Success(c, "Report generated", h.reportService.MostBorrowed(time.Now()))
}

// ============================================================
// GET /api/v1/reports/active-borrowers — patrons with open loans
// ============================================================
func (h *ReportHandler) GetActiveBorrowers(c *fiber.Ctx) error {
	return response.Success(c, "Report generated", h.reportService.ActiveBorrowers(time.Now()))
}

// ============================================================
// GET /api/v1/reports/overdue — overdue loans with accrued fines
// ============================================================
func (h *ReportHandler) GetOverdue(c *fiber.Ctx) error {
	at, err := asOf(c)
	if err != nil {
		return response.BadRequest(c, "Invalid as_of date, expected YYYY-MM-DD")
	}
	return response.Success(c, "Report generated", h.reportService.Overdue(at))
}

// ============================================================
// POST /api/v1/reports/reminders/run — trigger the due-date sweep
// ============================================================
func (h *ReportHandler) RunReminderSweep(c *fiber.Ctx) error {
	h.reminderService.RunSweep(time.Now())
	return response.Success(c, "Reminder sweep completed", nil)
}
