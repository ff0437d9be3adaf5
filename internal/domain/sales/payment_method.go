package sales

// PaymentMethod is the fixed set of payment methods at the register.
// The value is the display label, persisted as-is.
type PaymentMethod string

const (
	PaymentEfectivoUSD PaymentMethod = "Divisa (Efectivo $)"
	PaymentEfectivoBs  PaymentMethod = "Efectivo (Bolívares)"
	PaymentPunto       PaymentMethod = "Punto de Venta"
	PaymentPagoMovil   PaymentMethod = "Pago Móvil"
	PaymentCredito     PaymentMethod = "Crédito"
)

// AllPaymentMethods returns every known payment method
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentEfectivoUSD,
		PaymentEfectivoBs,
		PaymentPunto,
		PaymentPagoMovil,
		PaymentCredito,
	}
}

// IsValid reports whether the payment method is one of the known values
func (m PaymentMethod) IsValid() bool {
	for _, known := range AllPaymentMethods() {
		if m == known {
			return true
		}
	}
	return false
}

// IsCredit reports whether payment is deferred
func (m PaymentMethod) IsCredit() bool {
	return m == PaymentCredito
}

// String returns the display label
func (m PaymentMethod) String() string {
	return string(m)
}
