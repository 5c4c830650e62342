// Package signature computes and checks the HMAC-SHA256 signatures used by
// redirect-based payment gateways.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// SignedFieldNames is the field list every payment request is signed over,
// in the exact order the gateway rebuilds the message.
const SignedFieldNames = "total_amount,transaction_uuid,product_code"

var (
	ErrEmptyField = errors.New("signature: empty field")
	ErrMissingKey = errors.New("signature: missing secret key")
)

type Field struct {
	Name  string
	Value string
}

// Sign returns the base64 HMAC-SHA256 of
// "total_amount=<t>,transaction_uuid=<u>,product_code=<p>" keyed by secretKey.
func Sign(totalAmount, transactionUUID, productCode, secretKey string) (string, error) {
	if secretKey == "" {
		return "", ErrMissingKey
	}

	fields := []Field{
		{Name: "total_amount", Value: totalAmount},
		{Name: "transaction_uuid", Value: transactionUUID},
		{Name: "product_code", Value: productCode},
	}
	msg, err := Message(fields)
	if err != nil {
		return "", err
	}

	return compute(msg, secretKey), nil
}

// HMAC is Sign as a value, for callers that take a signer dependency.
type HMAC struct{}

func (HMAC) Sign(totalAmount, transactionUUID, productCode, secretKey string) (string, error) {
	return Sign(totalAmount, transactionUUID, productCode, secretKey)
}

// Message joins fields as name=value pairs separated by commas. Every value
// must be non-empty.
func Message(fields []Field) (string, error) {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Value == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyField, f.Name)
		}
		parts = append(parts, f.Name+"="+f.Value)
	}
	return strings.Join(parts, ","), nil
}

// FieldsFrom picks the fields listed in signedFieldNames out of values,
// keeping the listed order.
func FieldsFrom(signedFieldNames string, values map[string]string) []Field {
	names := strings.Split(signedFieldNames, ",")
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		fields = append(fields, Field{Name: name, Value: values[name]})
	}
	return fields
}

// Verify reports whether sig is the signature of message under secretKey.
func Verify(message, secretKey, sig string) bool {
	if message == "" || secretKey == "" || sig == "" {
		return false
	}
	got, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}
	want, _ := base64.StdEncoding.DecodeString(compute(message, secretKey))
	return hmac.Equal(got, want)
}

func compute(message, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
