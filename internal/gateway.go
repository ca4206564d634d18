package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotelpay/config"
	"hotelpay/entity"
)

const (
	productionBaseUrl = "https://pay.easebuzz.in"
	testBaseUrl       = "https://testpay.easebuzz.in"
	initiatePath      = "/payment/initiateLink"
)

// Gateway is the server-to-server client for the payment gateway's initiate
// endpoint. The call is always made from the relay, never from the browser,
// so the signed form with the merchant key stays off the client.
type Gateway struct {
	requestUrl string
	httpClient *http.Client
}

// NewGateway creates a gateway client with a configured HTTP client.
// The endpoint is selected by the merchant environment flag; an explicit
// request URL in the config overrides it.
func NewGateway(conf *config.Config) *Gateway {
	requestUrl := conf.Merchant.RequestUrl
	if requestUrl == "" {
		base := testBaseUrl
		if conf.Merchant.Environment == config.EnvironmentProduction {
			base = productionBaseUrl
		}
		requestUrl = base + initiatePath
	}
	return &Gateway{
		requestUrl: requestUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}
}

// InitiateLink posts the signed form payload and decodes the gateway's JSON
// reply. A returned error means the gateway could not be reached or did not
// answer with a recognizable response; an explicit rejection comes back as a
// response with Status 0.
func (g *Gateway) InitiateLink(ctx context.Context, form url.Values) (*entity.GatewayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", g.requestUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create http request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	response, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post request: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %v", err)
	}

	var gatewayResponse entity.GatewayResponse
	if err = json.Unmarshal(body, &gatewayResponse); err != nil {
		return nil, fmt.Errorf("parse response: %v", err)
	}
	return &gatewayResponse, nil
}
