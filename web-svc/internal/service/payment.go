package service

import (
	"regexp"
	"strings"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (m PaymentMethod) Normalize() PaymentMethod {
	return PaymentMethod(strings.ToLower(strings.TrimSpace(string(m))))
}

// PaymentDetails is what the payment page collects. Nothing here is charged.
type PaymentDetails struct {
	Method     PaymentMethod `json:"method" validate:"oneof=card cash"`
	CardNumber string        `json:"card_number,omitempty"`
	ValidUntil string        `json:"valid_until,omitempty"`
	CVV        string        `json:"cvv,omitempty"`
}

type cardInput struct {
	CardNumber string `validate:"len=16,numeric"`
	ValidUntil string `validate:"datetime=01/06"`
	CVV        string `validate:"len=3,numeric"`
}

var paymentMessages = map[string]string{
	"Method":     "payment method must be card or cash",
	"CardNumber": "card number must have 16 digits",
	"ValidUntil": "expiry must be MM/YY",
	"CVV":        "CVV must have 3 digits",
}

var nonDigits = regexp.MustCompile(`\D`)

// CheckPayment accepts cash as is and checks the shape of card details.
func CheckPayment(details PaymentDetails) error {
	details.Method = details.Method.Normalize()
	if err := validateStruct(details, paymentMessages); err != nil {
		return err
	}
	if details.Method == PaymentCash {
		return nil
	}

	return validateStruct(cardInput{
		CardNumber: nonDigits.ReplaceAllString(details.CardNumber, ""),
		ValidUntil: strings.TrimSpace(details.ValidUntil),
		CVV:        strings.TrimSpace(details.CVV),
	}, paymentMessages)
}

// MaskCard keeps the last four digits.
func MaskCard(number string) string {
	digits := nonDigits.ReplaceAllString(number, "")
	if len(digits) < 4 {
		return ""
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
