package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/subsidy-service/internal/api/dto"
	"github.com/spec-kit/subsidy-service/internal/service"
	apperrors "github.com/spec-kit/subsidy-service/pkg/util"
)

// VendorsHandler exposes the vendor registry, progress ledger and payout flag.
type VendorsHandler struct {
	subsidy *service.SubsidyService
}

// NewVendorsHandler constructs handler.
func NewVendorsHandler(subsidyService *service.SubsidyService) *VendorsHandler {
	return &VendorsHandler{subsidy: subsidyService}
}

// List handles GET /vendors.
func (h *VendorsHandler) List(c *fiber.Ctx) error {
	vendors, err := h.subsidy.ListVendors(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, dto.VendorResponse{
			ID:            v.ID,
			Name:          v.Name,
			WalletAddress: v.WalletAddress,
			MilestoneGoal: v.MilestoneGoal,
			RewardAmount:  v.RewardAmount,
			IsPaid:        v.IsPaid,
			CreatedAt:     v.CreatedAt,
		})
	}
	return c.JSON(out)
}

// Add handles POST /add-vendor.
func (h *VendorsHandler) Add(c *fiber.Ctx) error {
	var req dto.AddVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.WalletAddress == "" || req.MilestoneGoal == 0 || req.RewardAmount == 0 {
		return apperrors.NewValidationError("name, walletAddress, milestoneGoal and rewardAmount are required", nil)
	}

	vendor, err := h.subsidy.RegisterVendor(c.Context(), req.Name, req.WalletAddress, req.MilestoneGoal, req.RewardAmount)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "vendor registered",
		"vendorId": vendor.ID,
	})
}

// Progress handles GET /vendors/:vendorId/progress.
func (h *VendorsHandler) Progress(c *fiber.Ctx) error {
	vendorID, err := vendorIDParam(c)
	if err != nil {
		return err
	}

	total, err := h.subsidy.TotalProgress(c.Context(), vendorID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"totalProgress": total,
	})
}

// RecordProgress handles POST /vendors/:vendorId/progress.
func (h *VendorsHandler) RecordProgress(c *fiber.Ctx) error {
	vendorID, err := vendorIDParam(c)
	if err != nil {
		return err
	}

	var req dto.RecordProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("newProgress must be a positive number", nil)
	}
	if req.NewProgress == nil {
		return apperrors.NewValidationError("newProgress must be a positive number", nil)
	}

	if _, err := h.subsidy.RecordProgress(c.Context(), vendorID, *req.NewProgress); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "progress recorded",
	})
}

// Payout handles POST /vendors/:vendorId/payout.
func (h *VendorsHandler) Payout(c *fiber.Ctx) error {
	vendorID, err := vendorIDParam(c)
	if err != nil {
		return err
	}

	if err := h.subsidy.MarkPaid(c.Context(), vendorID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "vendor marked as paid",
	})
}

func vendorIDParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("vendorId")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid vendor id", map[string]any{"vendorId": c.Params("vendorId")})
	}
	return int64(id), nil
}
