package entity

import "net/url"

// GatewayRequest holds the form fields of the server-to-server initiate call.
// Amount must carry exactly the two-decimal string that was hashed; the
// gateway validates the signed amount against the transmitted one as strings.
// Phone is transmitted but is not part of the signed string.
type GatewayRequest struct {
	Key         string `json:"key"`
	TxnId       string `json:"txnid"`
	Amount      string `json:"amount"`
	ProductInfo string `json:"productinfo"`
	Firstname   string `json:"firstname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SuccessUrl  string `json:"surl"`
	FailureUrl  string `json:"furl"`
	Hash        string `json:"hash"`
}

// Form renders the request as the url-encoded payload the gateway expects.
func (g *GatewayRequest) Form() url.Values {
	form := url.Values{}
	form.Set("key", g.Key)
	form.Set("txnid", g.TxnId)
	form.Set("amount", g.Amount)
	form.Set("productinfo", g.ProductInfo)
	form.Set("firstname", g.Firstname)
	form.Set("email", g.Email)
	form.Set("phone", g.Phone)
	form.Set("surl", g.SuccessUrl)
	form.Set("furl", g.FailureUrl)
	form.Set("hash", g.Hash)
	return form
}

// GatewayResponse is the gateway's reply to an initiate call: status 1 with
// an access key in Data, or status 0 with a human-readable ErrorDesc.
type GatewayResponse struct {
	Status    int    `json:"status"`
	Data      string `json:"data"`
	ErrorDesc string `json:"error_desc"`
}

// GatewaySession is what the relay surfaces to the booking client on
// success. The access key is consumed immediately to build the redirect to
// the hosted payment page; the relay does not persist it.
type GatewaySession struct {
	AccessKey string `json:"access_key"`
}

// GatewayResult is the gateway's post-payment server callback, sent after
// the payer leaves the hosted payment page. The reverse-order response hash
// lets the relay verify the callback before recording it.
type GatewayResult struct {
	TxnId        string `json:"txnid" bson:"txnid"`
	Status       string `json:"status" bson:"status"`
	Amount       string `json:"amount" bson:"amount"`
	ProductInfo  string `json:"productinfo" bson:"productinfo"`
	Firstname    string `json:"firstname" bson:"firstname"`
	Email        string `json:"email" bson:"email"`
	PaymentId    string `json:"easepayid" bson:"payment_id"`
	ErrorMessage string `json:"error_Message" bson:"error_message"`
	Hash         string `json:"hash" bson:"hash"`
}
