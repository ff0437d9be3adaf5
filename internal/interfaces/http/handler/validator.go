package handler

import (
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", validPaymentMethod)
	}
}

// validPaymentMethod accepts only the register's known payment methods,
// so typos fail at binding instead of reaching the domain.
func validPaymentMethod(fl validator.FieldLevel) bool {
	return sales.PaymentMethod(fl.Field().String()).IsValid()
}
