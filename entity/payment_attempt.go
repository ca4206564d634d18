package entity

import "time"

// Attempt status values stored in the payment_attempts collection.
const (
	AttemptInitiated = "initiated"
	AttemptSucceeded = "succeeded"
	AttemptFailed    = "failed"
	AttemptSettled   = "settled"
)

// PaymentAttempt records a single initiation attempt for correlation with
// gateway-side transaction logs. One document per generated transaction
// identifier; identifiers are never reused, so a client retry always opens
// a new attempt.
type PaymentAttempt struct {
	TxnId       string    `json:"txnid" bson:"txnid"`
	Amount      string    `json:"amount" bson:"amount"`
	ProductInfo string    `json:"productinfo" bson:"productinfo"`
	Firstname   string    `json:"firstname" bson:"firstname"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	Status      string    `json:"status" bson:"status"`
	Result      string    `json:"result" bson:"result"`
	AccessKey   string    `json:"access_key" bson:"access_key"`
	TimeOpened  time.Time `json:"time_opened" bson:"time_opened"`
	TimeClosed  time.Time `json:"time_closed" bson:"time_closed"`
}
