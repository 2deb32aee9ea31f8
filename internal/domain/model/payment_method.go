package model

import "errors"

type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PayPal"
	PaymentMethodStripe PaymentMethod = "Stripe"
	PaymentMethodCash   PaymentMethod = "Cash"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// 完全一致のみ受け付ける
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodPayPal, PaymentMethodStripe, PaymentMethodCash:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) IsSet() bool {
	_, err := ParsePaymentMethod(string(m))
	return err == nil
}
