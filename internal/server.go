package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"hotelpay/config"
	"hotelpay/entity"
	"hotelpay/services"

	"github.com/julienschmidt/httprouter"
)

const (
	initiatePayment = "/initiate-payment"
	paymentNotify   = "/notify"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(initiatePayment, s.initiatePayment)
	router.POST(paymentNotify, s.paymentNotify)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) initiatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Add request ID for tracing
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] initiate payment: read request body", reqID), err)
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	var request entity.PaymentRequest
	if err = json.Unmarshal(body, &request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] initiate payment: decode request body: %v", reqID, err))
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	session, err := s.payments.Initiate(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, err)
		return
	}

	s.writeJSON(w, http.StatusOK, session)
}

func (s *Server) paymentNotify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Add request ID for tracing
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: get body", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = s.payments.Notify(ctx, body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment notify: process body", reqID), err)
	}
	w.WriteHeader(http.StatusOK)
}

// writeError maps the payment error taxonomy onto the HTTP surface:
// validation and explicit gateway rejections answer 400 with the safe
// message, everything else answers a generic 500. Stack traces and
// merchant secrets never reach the response body.
func (s *Server) writeError(w http.ResponseWriter, reqID string, err error) {
	var paymentErr *entity.PaymentError
	if errors.As(err, &paymentErr) {
		switch paymentErr.Kind {
		case entity.ErrorValidation, entity.ErrorGatewayRejected:
			s.logger.Warn(fmt.Sprintf("[%s] initiate payment: %s: %s", reqID, paymentErr.Kind, paymentErr.Message))
			s.writeJSON(w, http.StatusBadRequest, errorBody{Error: paymentErr.Message})
			return
		}
	}
	s.logger.Error(fmt.Sprintf("[%s] initiate payment", reqID), err)
	s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("write response", err)
	}
}
