// Package entity defines data models for the hotel payment relay.
package entity

// PaymentRequest is a checkout attempt posted by the booking client.
// Firstname and Email become part of the signed string exactly as received;
// they must not be trimmed or case-folded after validation, or the gateway
// will reject the signature.
type PaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Firstname   string  `json:"firstname" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required"`
	ProductInfo string  `json:"productinfo" validate:"required"`
}
