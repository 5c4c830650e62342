// Package gateway builds the signed redirect form for eSewa ePay v2 and
// decodes the gateway's callback parameters.
package gateway

import "github.com/SergeyBogomolovv/fee-payment-service/internal/entities"

const Esewa = "esewa"

// EsewaForm holds the POST fields the gateway expects, in wire order.
type EsewaForm struct {
	Amount                string `json:"amount"`
	TaxAmount             string `json:"tax_amount"`
	TotalAmount           string `json:"total_amount"`
	TransactionUUID       string `json:"transaction_uuid"`
	ProductCode           string `json:"product_code"`
	ProductServiceCharge  string `json:"product_service_charge"`
	ProductDeliveryCharge string `json:"product_delivery_charge"`
	SuccessURL            string `json:"success_url"`
	FailureURL            string `json:"failure_url"`
	SignedFieldNames      string `json:"signed_field_names"`
	Signature             string `json:"signature"`
}

type Field struct {
	Name  string
	Value string
}

func (f EsewaForm) Fields() []Field {
	return []Field{
		{"amount", f.Amount},
		{"tax_amount", f.TaxAmount},
		{"total_amount", f.TotalAmount},
		{"transaction_uuid", f.TransactionUUID},
		{"product_code", f.ProductCode},
		{"product_service_charge", f.ProductServiceCharge},
		{"product_delivery_charge", f.ProductDeliveryCharge},
		{"success_url", f.SuccessURL},
		{"failure_url", f.FailureURL},
		{"signed_field_names", f.SignedFieldNames},
		{"signature", f.Signature},
	}
}

// Service and delivery charges are always zero: the signed total is
// amount + tax and the gateway sums all four.
const zeroCharge = "0"

type FormConfig struct {
	Endpoint  string
	PublicURL string
}

type FormBuilder struct {
	cfg FormConfig
}

func NewFormBuilder(cfg FormConfig) *FormBuilder {
	return &FormBuilder{cfg: cfg}
}

func (b *FormBuilder) Endpoint() string {
	return b.cfg.Endpoint
}

func (b *FormBuilder) SuccessURL() string {
	return b.cfg.PublicURL + "/payment/success"
}

func (b *FormBuilder) FailureURL() string {
	return b.cfg.PublicURL + "/payment/failure"
}

// Build maps a signed payload to the gateway form. The payload must come out
// of the signer; an unsigned payload is rejected.
func (b *FormBuilder) Build(p entities.SignedPayload) (EsewaForm, error) {
	if p.Signature == "" || p.SignedFieldNames == "" {
		return EsewaForm{}, entities.ErrSubmission
	}

	return EsewaForm{
		Amount:                entities.FormatAmount(p.Request.Amount),
		TaxAmount:             entities.FormatAmount(p.Request.TaxAmount),
		TotalAmount:           entities.FormatAmount(p.Request.TotalAmount),
		TransactionUUID:       p.TransactionUUID,
		ProductCode:           p.ProductCode,
		ProductServiceCharge:  zeroCharge,
		ProductDeliveryCharge: zeroCharge,
		SuccessURL:            b.SuccessURL(),
		FailureURL:            b.FailureURL(),
		SignedFieldNames:      p.SignedFieldNames,
		Signature:             p.Signature,
	}, nil
}
