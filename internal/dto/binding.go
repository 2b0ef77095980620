package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
)

// init registers the "supportedcurrency" binding tag so DTOs can constrain
// currency fields to the fixed currency set at bind time.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("supportedcurrency", func(fl validator.FieldLevel) bool {
			return pricing.IsSupportedCurrency(fl.Field().String())
		})
	}
}
