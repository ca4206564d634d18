package services

import (
	"context"
	"hotelpay/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SavePaymentAttempt(ctx context.Context, attempt *entity.PaymentAttempt) error
	GetPaymentAttempt(ctx context.Context, txnId string) (*entity.PaymentAttempt, error)

	SaveGatewayResult(ctx context.Context, result *entity.GatewayResult) error
}

type Data interface {
	DataType() string
}
