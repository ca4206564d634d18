package services

import (
	"context"
	"hotelpay/entity"
)

type Payments interface {
	Initiate(ctx context.Context, request *entity.PaymentRequest) (*entity.GatewaySession, error)
	Notify(ctx context.Context, data []byte) error
}
