package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FeeCategory string

const (
	FeeTuition     FeeCategory = "tuition"
	FeeAdmission   FeeCategory = "admission"
	FeeExamination FeeCategory = "examination"
	FeeTransport   FeeCategory = "transport"
	FeeLibrary     FeeCategory = "library"
	FeeHostel      FeeCategory = "hostel"
	FeeMisc        FeeCategory = "miscellaneous"
)

var feeCategories = map[FeeCategory]struct{}{
	FeeTuition:     {},
	FeeAdmission:   {},
	FeeExamination: {},
	FeeTransport:   {},
	FeeLibrary:     {},
	FeeHostel:      {},
	FeeMisc:        {},
}

func ParseFeeCategory(s string) (FeeCategory, error) {
	c := FeeCategory(s)
	if _, ok := feeCategories[c]; !ok {
		return "", validationErr("unknown fee category %q", s)
	}
	return c, nil
}

// PaymentRequest is immutable once signed.
type PaymentRequest struct {
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Description string
	PayerID     string
	FeeCategory FeeCategory
}

// NewPaymentRequest validates the input and derives TotalAmount as
// Amount + TaxAmount.
func NewPaymentRequest(payerID string, category FeeCategory, amount, taxAmount decimal.Decimal, description string) (PaymentRequest, error) {
	if payerID == "" {
		return PaymentRequest{}, validationErr("payer id is required")
	}
	if !amount.IsPositive() {
		return PaymentRequest{}, validationErr("amount must be greater than zero")
	}
	if taxAmount.IsNegative() {
		return PaymentRequest{}, validationErr("tax amount must not be negative")
	}
	if !amount.Equal(amount.Round(2)) || !taxAmount.Equal(taxAmount.Round(2)) {
		return PaymentRequest{}, validationErr("amounts must have at most two decimal places")
	}
	if _, ok := feeCategories[category]; !ok {
		return PaymentRequest{}, validationErr("unknown fee category %q", category)
	}

	return PaymentRequest{
		Amount:      amount,
		TaxAmount:   taxAmount,
		TotalAmount: amount.Add(taxAmount),
		Description: description,
		PayerID:     payerID,
		FeeCategory: category,
	}, nil
}

// TransactionSession is minted by the backend for a single payment attempt.
// SecretKey must never leave the process.
type TransactionSession struct {
	TransactionUUID string
	ProductCode     string
	SecretKey       string
}

type SignedPayload struct {
	Request          PaymentRequest
	TransactionUUID  string
	ProductCode      string
	SignedFieldNames string
	Signature        string
}

type Attempt struct {
	TransactionUUID string
	PayerID         string
	FeeCategory     FeeCategory
	Amount          decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	Description     string
	ProductCode     string
	Status          Status
	GatewayRef      string
	FailureReason   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Bind copies the signed payload into the attempt. The secret is not part of
// the payload and is never stored.
func (a *Attempt) Bind(p SignedPayload, now time.Time) {
	a.TransactionUUID = p.TransactionUUID
	a.PayerID = p.Request.PayerID
	a.FeeCategory = p.Request.FeeCategory
	a.Amount = p.Request.Amount
	a.TaxAmount = p.Request.TaxAmount
	a.TotalAmount = p.Request.TotalAmount
	a.Description = p.Request.Description
	a.ProductCode = p.ProductCode
	a.CreatedAt = now
	a.UpdatedAt = now
}

// FormatAmount renders an amount the way it is signed and posted.
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}
