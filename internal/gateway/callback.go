package gateway

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/shopspring/decimal"
)

var ErrInvalidCallback = errors.New("invalid gateway callback")

// looseString accepts both JSON strings and numbers.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	*s = looseString(strings.TrimSpace(string(b)))
	return nil
}

type successData struct {
	TransactionCode  looseString `json:"transaction_code"`
	Status           looseString `json:"status"`
	TotalAmount      looseString `json:"total_amount"`
	TransactionUUID  looseString `json:"transaction_uuid"`
	ProductCode      looseString `json:"product_code"`
	SignedFieldNames looseString `json:"signed_field_names"`
	Signature        looseString `json:"signature"`
}

// ParseSuccess decodes the ePay v2 "data" parameter, falling back to the
// legacy oid/amt/refId parameters.
func ParseSuccess(q url.Values) (entities.Callback, error) {
	if data := q.Get("data"); data != "" {
		return parseData(data)
	}

	cb := entities.Callback{
		TransactionUUID: first(q, "transaction_uuid", "oid"),
		ProductCode:     first(q, "product_code", "pid"),
		GatewayRef:      first(q, "transaction_code", "refId"),
		Status:          q.Get("status"),
	}
	if cb.TransactionUUID == "" {
		return entities.Callback{}, fmt.Errorf("%w: missing transaction id", ErrInvalidCallback)
	}

	amount, err := parseAmount(first(q, "total_amount", "amt"))
	if err != nil {
		return entities.Callback{}, err
	}
	cb.TotalAmount = amount

	cb.Params = map[string]string{
		"transaction_uuid": cb.TransactionUUID,
		"product_code":     cb.ProductCode,
		"total_amount":     amount.String(),
		"transaction_code": cb.GatewayRef,
	}
	return cb, nil
}

// ParseFailure never fails: every parameter on the failure page is optional.
func ParseFailure(q url.Values) entities.Callback {
	cb := entities.Callback{
		TransactionUUID: first(q, "transaction_uuid", "oid", "pid"),
		Reason:          first(q, "reason", "message"),
	}
	if data := q.Get("data"); data != "" {
		if decoded, err := parseData(data); err == nil {
			decoded.Reason = cb.Reason
			return decoded
		}
	}
	return cb
}

func parseData(data string) (entities.Callback, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(data)
	}
	if err != nil {
		return entities.Callback{}, fmt.Errorf("%w: data is not base64: %w", ErrInvalidCallback, err)
	}

	var d successData
	if err := json.Unmarshal(raw, &d); err != nil {
		return entities.Callback{}, fmt.Errorf("%w: data is not json: %w", ErrInvalidCallback, err)
	}
	if d.TransactionUUID == "" {
		return entities.Callback{}, fmt.Errorf("%w: missing transaction_uuid", ErrInvalidCallback)
	}

	amount, err := parseAmount(string(d.TotalAmount))
	if err != nil {
		return entities.Callback{}, err
	}

	return entities.Callback{
		TransactionUUID:  string(d.TransactionUUID),
		ProductCode:      string(d.ProductCode),
		TotalAmount:      amount,
		Status:           string(d.Status),
		GatewayRef:       string(d.TransactionCode),
		SignedFieldNames: string(d.SignedFieldNames),
		Signature:        string(d.Signature),
		Params: map[string]string{
			"transaction_code":   string(d.TransactionCode),
			"status":             string(d.Status),
			"total_amount":       string(d.TotalAmount),
			"transaction_uuid":   string(d.TransactionUUID),
			"product_code":       string(d.ProductCode),
			"signed_field_names": string(d.SignedFieldNames),
			"signature":          string(d.Signature),
		},
	}, nil
}

// parseAmount accepts the gateway's "1,100.0" style as well as plain numbers.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: missing total amount", ErrInvalidCallback)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad total amount %q", ErrInvalidCallback, s)
	}
	return d, nil
}

func first(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}
