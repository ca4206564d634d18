package internal

import (
	"errors"
	"strings"

	"gitee.com/golang-module/dongle"
)

// placeholderFields is the number of reserved optional fields between the
// payer email and the salt. The storefront does not collect them, but the
// gateway's hash schema requires their positions to be present as empty
// segments.
const placeholderFields = 10

// Hasher computes the gateway's integrity signatures for one merchant
// account. The signature is a pure function of the field values and their
// order: same inputs, same digest.
type Hasher struct {
	key  string // merchant identifier, first segment
	salt string // shared secret, last segment
}

func NewHasher(key string, salt string) *Hasher {
	return &Hasher{
		key:  key,
		salt: salt,
	}
}

// SigningString builds the pipe-delimited sequence signed on an initiate
// call: key|txnid|amount|productinfo|firstname|email|<10 empty>|salt.
// The amount must already be formatted to two decimals; the identical
// string goes into the transmitted form.
func (h *Hasher) SigningString(txnId, amount, productInfo, firstname, email string) string {
	fields := make([]string, 0, placeholderFields+7)
	fields = append(fields, h.key, txnId, amount, productInfo, firstname, email)
	for i := 0; i < placeholderFields; i++ {
		fields = append(fields, "")
	}
	fields = append(fields, h.salt)
	return strings.Join(fields, "|")
}

// RequestSignature returns the lowercase hex SHA-512 digest of the signing
// string for an initiate call.
func (h *Hasher) RequestSignature(txnId, amount, productInfo, firstname, email string) (string, error) {
	if h.key == "" || h.salt == "" {
		return "", errors.New("merchant key or salt not set")
	}
	return h.sha512Hex(h.SigningString(txnId, amount, productInfo, firstname, email)), nil
}

// ResponseSignature returns the digest the gateway puts on its post-payment
// callback: the request sequence reversed, with the textual payment status
// between the salt and the placeholders.
func (h *Hasher) ResponseSignature(status, email, firstname, productInfo, amount, txnId string) string {
	fields := make([]string, 0, placeholderFields+8)
	fields = append(fields, h.salt, status)
	for i := 0; i < placeholderFields; i++ {
		fields = append(fields, "")
	}
	fields = append(fields, email, firstname, productInfo, amount, txnId, h.key)
	return h.sha512Hex(strings.Join(fields, "|"))
}

func (h *Hasher) sha512Hex(message string) string {
	return dongle.Encrypt.FromString(message).BySha512().ToHexString()
}
