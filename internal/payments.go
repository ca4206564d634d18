package internal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"hotelpay/config"
	"hotelpay/entity"
	"hotelpay/services"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// genericFailure is surfaced when the gateway rejects without a message.
const genericFailure = "payment could not be initiated"

// gatewayStatusOk is the numeric success flag in the gateway's reply.
const gatewayStatusOk = 1

// resultSuccess is the textual status of a successful post-payment callback.
const resultSuccess = "success"

// Payments builds signed initiate requests and relays them to the payment
// gateway. Stateless per call: transaction identifiers are generated
// independently, so concurrent Initiate calls need no coordination beyond
// the read-only configuration.
type Payments struct {
	conf     *config.Config
	database services.Database
	logger   services.LogHandler
	gateway  *Gateway
	hasher   *Hasher
	validate *validator.Validate
}

// NewPayments creates the payment initiation service. The gateway endpoint
// is resolved from the merchant environment; tests point RequestUrl at a
// local fake.
func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		conf:     conf,
		gateway:  NewGateway(conf),
		hasher:   NewHasher(conf.Merchant.Key, conf.Merchant.Salt),
		validate: validator.New(),
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	if p.conf.DisablePayment {
		p.logger.Warn("service disabled")
	} else {
		p.logger.Info("service enabled")
	}
}

// Initiate validates the checkout request, computes the integrity signature
// and performs the server-to-server initiate call. On success the gateway's
// access key is returned for the client to build the hosted-page redirect.
// Failures come back as *entity.PaymentError; messages never contain the
// merchant key or salt. No retries: a transient failure surfaces
// immediately and the caller retries with a fresh transaction identifier.
func (p *Payments) Initiate(ctx context.Context, request *entity.PaymentRequest) (*entity.GatewaySession, error) {
	if request == nil {
		return nil, entity.NewPaymentError(entity.ErrorValidation, "empty request")
	}
	if err := p.validate.Struct(request); err != nil {
		p.logger.Warn(fmt.Sprintf("invalid request: %s", validationDetail(err)))
		return nil, entity.NewPaymentError(entity.ErrorValidation, fmt.Sprintf("invalid fields: %s", validationDetail(err)))
	}
	if p.conf.Merchant.Key == "" || p.conf.Merchant.Salt == "" {
		p.logger.Error("merchant not configured", nil)
		return nil, entity.NewPaymentError(entity.ErrorInternal, "Internal Server Error")
	}
	if p.conf.DisablePayment {
		return nil, entity.NewPaymentError(entity.ErrorGatewayRejected, "payment service is disabled")
	}

	txnId := NewTxnId()
	// the same two-decimal string feeds the hash and the transmitted form;
	// any mismatch between them is silently rejected by the gateway
	amount := decimal.NewFromFloat(request.Amount).StringFixed(2)

	hash, err := p.hasher.RequestSignature(txnId, amount, request.ProductInfo, request.Firstname, request.Email)
	if err != nil {
		p.logger.Error(fmt.Sprintf("sign %s", txnId), err)
		return nil, entity.NewPaymentError(entity.ErrorInternal, "Internal Server Error")
	}

	p.logger.Info(fmt.Sprintf("initiate payment %s", txnId))

	attempt := &entity.PaymentAttempt{
		TxnId:       txnId,
		Amount:      amount,
		ProductInfo: request.ProductInfo,
		Firstname:   request.Firstname,
		Email:       request.Email,
		Phone:       request.Phone,
		Status:      entity.AttemptInitiated,
		TimeOpened:  time.Now(),
	}
	p.saveAttempt(ctx, attempt)

	outbound := entity.GatewayRequest{
		Key:         p.conf.Merchant.Key,
		TxnId:       txnId,
		Amount:      amount,
		ProductInfo: request.ProductInfo,
		Firstname:   request.Firstname,
		Email:       request.Email,
		Phone:       request.Phone,
		SuccessUrl:  p.conf.Merchant.SuccessUrl,
		FailureUrl:  p.conf.Merchant.FailureUrl,
		Hash:        hash,
	}

	response, err := p.gateway.InitiateLink(ctx, outbound.Form())
	if err != nil {
		p.logger.Error(fmt.Sprintf("initiate %s: gateway call", txnId), err)
		p.closeAttempt(ctx, attempt, entity.AttemptFailed, "gateway unreachable")
		return nil, entity.NewPaymentError(entity.ErrorUpstreamUnavailable, "Internal Server Error")
	}

	if response.Status != gatewayStatusOk {
		message := response.ErrorDesc
		if message == "" {
			message = genericFailure
		}
		p.logger.Warn(fmt.Sprintf("initiate %s rejected: %s", txnId, message))
		p.closeAttempt(ctx, attempt, entity.AttemptFailed, message)
		return nil, entity.NewPaymentError(entity.ErrorGatewayRejected, message)
	}
	if response.Data == "" {
		p.logger.Error(fmt.Sprintf("initiate %s", txnId), errors.New("success status with empty access key"))
		p.closeAttempt(ctx, attempt, entity.AttemptFailed, "empty access key")
		return nil, entity.NewPaymentError(entity.ErrorInternal, "Internal Server Error")
	}

	attempt.AccessKey = response.Data
	p.closeAttempt(ctx, attempt, entity.AttemptSucceeded, "access key issued")

	return &entity.GatewaySession{AccessKey: response.Data}, nil
}

// Notify processes the gateway's post-payment server callback. The body is
// the form the gateway posts after the payer leaves the hosted page; its
// reverse-order signature is verified before the result is recorded.
func (p *Payments) Notify(ctx context.Context, data []byte) error {
	params, err := url.ParseQuery(string(data))
	if err != nil {
		return fmt.Errorf("parse query: %v", err)
	}

	result := &entity.GatewayResult{
		TxnId:        params.Get("txnid"),
		Status:       params.Get("status"),
		Amount:       params.Get("amount"),
		ProductInfo:  params.Get("productinfo"),
		Firstname:    params.Get("firstname"),
		Email:        params.Get("email"),
		PaymentId:    params.Get("easepayid"),
		ErrorMessage: params.Get("error_Message"),
		Hash:         params.Get("hash"),
	}
	if result.TxnId == "" {
		return errors.New("callback without transaction id")
	}

	if result.Hash != "" {
		expected := p.hasher.ResponseSignature(result.Status, result.Email, result.Firstname, result.ProductInfo, result.Amount, result.TxnId)
		if expected != result.Hash {
			p.logger.Warn(fmt.Sprintf("callback %s: signature mismatch", result.TxnId))
			return fmt.Errorf("callback %s: signature mismatch", result.TxnId)
		}
	}

	p.logger.Info(fmt.Sprintf("callback %s: status %s", result.TxnId, result.Status))

	if p.database == nil {
		return nil
	}
	if err = p.database.SaveGatewayResult(ctx, result); err != nil {
		p.logger.Error("save gateway result", err)
	}

	attempt, err := p.database.GetPaymentAttempt(ctx, result.TxnId)
	if err != nil || attempt == nil {
		p.logger.Warn(fmt.Sprintf("callback %s: unknown attempt", result.TxnId))
		return nil
	}
	if result.Status == resultSuccess {
		p.closeAttempt(ctx, attempt, entity.AttemptSettled, result.Status)
	} else {
		message := result.ErrorMessage
		if message == "" {
			message = result.Status
		}
		p.closeAttempt(ctx, attempt, entity.AttemptFailed, message)
	}
	return nil
}

func (p *Payments) saveAttempt(ctx context.Context, attempt *entity.PaymentAttempt) {
	if p.database == nil {
		return
	}
	if err := p.database.SavePaymentAttempt(ctx, attempt); err != nil {
		p.logger.Error(fmt.Sprintf("save attempt %s", attempt.TxnId), err)
	}
}

func (p *Payments) closeAttempt(ctx context.Context, attempt *entity.PaymentAttempt, status, result string) {
	attempt.Status = status
	attempt.Result = result
	attempt.TimeClosed = time.Now()
	p.saveAttempt(ctx, attempt)
}

func validationDetail(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, strings.ToLower(f.Field()))
		}
		return strings.Join(names, ", ")
	}
	return "malformed request"
}
