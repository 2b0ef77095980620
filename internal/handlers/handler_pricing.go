package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	portssvc "github.com/opsdrop/dropship_backend/internal/core/ports/services"
	"github.com/opsdrop/dropship_backend/internal/dto"
	"github.com/opsdrop/dropship_backend/internal/middleware"
)

// pricingHandler handles HTTP requests for price and margin calculations.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPricingHandler creates a new pricingHandler.
func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// registerPricingRoutes registers routes related to price calculations.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/calculate", h.calculatePrice)
		pricing.POST("/realized-margin", h.realizedMargin)
		pricing.POST("/suggested-margin", h.suggestedMargin)
	}
}

// respondPricingError maps calculation errors onto HTTP responses. Input
// violations come back as a 400 with the full list; a resolvable-but-failed
// calculation (no rate, ceiling breach) is a 422.
func respondPricingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Pricing input rejected", slog.Int("violations", len(validationErr.Violations)))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid pricing input",
			"violations": validationErr.Violations,
		})
		return
	}
	if errors.Is(err, apperrors.ErrMissingExchangeRate) || errors.Is(err, apperrors.ErrPriceExceedsMaximum) ||
		errors.Is(err, apperrors.ErrNonPositiveSalePrice) || errors.Is(err, apperrors.ErrNonPositiveCost) {
		logger.Warn("Pricing calculation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Pricing request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error("Pricing calculation error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run calculation"})
}

// calculatePrice godoc
// @Summary Calculate a sale price
// @Description Computes the recommended sale price for a sourced product, with the full breakdown (converted cost, margin, commission, rounding).
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   input body dto.CalculatePriceRequest true "Pricing input"
// @Success 200 {object} dto.PriceCalculationResponse
// @Failure 400 {object} map[string]interface{} "Invalid input with violations list"
// @Failure 422 {object} map[string]string "No exchange rate available, or price exceeds the configured maximum"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Security BearerAuth
// @Router /pricing/calculate [post]
func (h *pricingHandler) calculatePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculatePrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.pricingService.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceCalculationResponse(result))
}

// realizedMargin godoc
// @Summary Compute the realized margin rate
// @Description Computes the margin rate actually achieved at a known sale price, net of commission and shipping.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   input body dto.RealizedMarginRequest true "Realized margin input"
// @Success 200 {object} dto.MarginRateResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 422 {object} map[string]string "Sale price or cost not positive"
// @Security BearerAuth
// @Router /pricing/realized-margin [post]
func (h *pricingHandler) realizedMargin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RealizedMarginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RealizedMargin", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.pricingService.RealizedMargin(c.Request.Context(), req)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MarginRateResponse{MarginRate: rate})
}

// suggestedMargin godoc
// @Summary Compute the margin rate for a profit target
// @Description Computes the margin rate that would yield the given net profit per unit after commission and shipping.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   input body dto.SuggestedMarginRequest true "Suggested margin input"
// @Success 200 {object} dto.MarginRateResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 422 {object} map[string]string "Cost not positive"
// @Security BearerAuth
// @Router /pricing/suggested-margin [post]
func (h *pricingHandler) suggestedMargin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SuggestedMarginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SuggestedMargin", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.pricingService.SuggestedMargin(c.Request.Context(), req)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MarginRateResponse{MarginRate: rate})
}
