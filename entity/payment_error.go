package entity

// ErrorKind classifies a failed initiation.
type ErrorKind string

const (
	// ErrorValidation marks a malformed request, rejected before hashing.
	ErrorValidation ErrorKind = "validation"
	// ErrorGatewayRejected marks an explicit non-success status from the gateway.
	ErrorGatewayRejected ErrorKind = "gateway_rejected"
	// ErrorUpstreamUnavailable marks a transport failure reaching the gateway.
	ErrorUpstreamUnavailable ErrorKind = "upstream_unavailable"
	// ErrorInternal marks any other unexpected failure.
	ErrorInternal ErrorKind = "internal"
)

// PaymentError is the failure surfaced by an initiate call. Message must be
// safe to forward to the client: it never contains the merchant key or salt.
type PaymentError struct {
	Kind    ErrorKind
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}

// NewPaymentError builds a PaymentError of the given kind.
func NewPaymentError(kind ErrorKind, message string) *PaymentError {
	return &PaymentError{Kind: kind, Message: message}
}
