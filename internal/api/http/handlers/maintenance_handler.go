package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/subsidy-service/internal/service"
)

// MaintenanceHandler exposes the destructive demo reset.
type MaintenanceHandler struct {
	subsidy *service.SubsidyService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(subsidyService *service.SubsidyService) *MaintenanceHandler {
	return &MaintenanceHandler{subsidy: subsidyService}
}

// Reset handles POST /reset. Irreversible; intended for demo environments.
func (h *MaintenanceHandler) Reset(c *fiber.Ctx) error {
	if err := h.subsidy.ResetAll(c.Context()); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "all records cleared",
	})
}
