package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotelpay/config"
	"hotelpay/entity"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

// stubPayments answers Initiate with a canned session or error.
type stubPayments struct {
	session  *entity.GatewaySession
	err      error
	notified []byte
}

func (s *stubPayments) Initiate(_ context.Context, _ *entity.PaymentRequest) (*entity.GatewaySession, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubPayments) Notify(_ context.Context, data []byte) error {
	s.notified = data
	return nil
}

func testRouter(payments *stubPayments) *httprouter.Router {
	server := NewServer(&config.Config{})
	server.SetLogger(NewLogger("server-test", false, nil))
	server.SetPaymentsService(payments)
	router := httprouter.New()
	server.Register(router)
	return router
}

func postJSON(router *httprouter.Router, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestInitiatePaymentEndpointSuccess(t *testing.T) {
	router := testRouter(&stubPayments{session: &entity.GatewaySession{AccessKey: "access-123"}})

	recorder := postJSON(router, "/initiate-payment",
		`{"amount":1,"firstname":"John","email":"john@example.com","phone":"9999999999","productinfo":"HotelBooking"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "access-123", body["access_key"])
}

func TestInitiatePaymentEndpointGatewayRejected(t *testing.T) {
	router := testRouter(&stubPayments{err: entity.NewPaymentError(entity.ErrorGatewayRejected, "X")})

	recorder := postJSON(router, "/initiate-payment", `{"amount":1}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "X", body["error"])
}

func TestInitiatePaymentEndpointValidation(t *testing.T) {
	router := testRouter(&stubPayments{err: entity.NewPaymentError(entity.ErrorValidation, "invalid fields: email")})

	recorder := postJSON(router, "/initiate-payment", `{"amount":1}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "invalid fields: email", body["error"])
}

func TestInitiatePaymentEndpointUpstreamFailure(t *testing.T) {
	for _, kind := range []entity.ErrorKind{entity.ErrorUpstreamUnavailable, entity.ErrorInternal} {
		router := testRouter(&stubPayments{err: entity.NewPaymentError(kind, "Internal Server Error")})

		recorder := postJSON(router, "/initiate-payment", `{"amount":1}`)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Equal(t, "Internal Server Error", body["error"])
	}
}

func TestInitiatePaymentEndpointBadBody(t *testing.T) {
	router := testRouter(&stubPayments{})

	recorder := postJSON(router, "/initiate-payment", `{not json`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "invalid request body", body["error"])
}

func TestNotifyEndpoint(t *testing.T) {
	payments := &stubPayments{}
	router := testRouter(payments)

	request := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader("txnid=TXN_1&status=success"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "txnid=TXN_1&status=success", string(payments.notified))
}
