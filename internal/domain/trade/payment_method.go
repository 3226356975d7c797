package trade

import "github.com/backoffice/backend/internal/domain/shared"

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

// ValidatePaymentMethod checks that the method is a known value.
func ValidatePaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return nil
	default:
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+string(method))
	}
}
