package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/service"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
	"github.com/shopspring/decimal"
)

// CheckoutRequest описывает оплату одного сбора
type CheckoutRequest struct {
	PayerID     string `json:"payerId" validate:"required,max=64"`
	FeeCategory string `json:"feeCategory" validate:"required"`
	Amount      string `json:"amount" validate:"required,numeric"`
	TaxAmount   string `json:"taxAmount,omitempty" validate:"omitempty,numeric"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

// SignResponse содержит адрес шлюза и подписанные поля формы
type SignResponse struct {
	Endpoint string      `json:"endpoint"`
	Fields   []FormField `json:"fields"`
}

// FormField поле формы шлюза
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attempt попытка оплаты
type Attempt struct {
	TransactionUUID string    `json:"transactionUuid"`
	PayerID         string    `json:"payerId"`
	FeeCategory     string    `json:"feeCategory"`
	Amount          string    `json:"amount"`
	TaxAmount       string    `json:"taxAmount"`
	TotalAmount     string    `json:"totalAmount"`
	Description     string    `json:"description,omitempty"`
	ProductCode     string    `json:"productCode"`
	Status          string    `json:"status"`
	GatewayRef      string    `json:"gatewayRef,omitempty"`
	FailureReason   string    `json:"failureReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// checkoutRequestFrom reads a JSON body or a submitted form.
func checkoutRequestFrom(r *http.Request) (CheckoutRequest, error) {
	var req CheckoutRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := utils.DecodeBody(r, &req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.PayerID = r.PostForm.Get("payerId")
	req.FeeCategory = r.PostForm.Get("feeCategory")
	req.Amount = r.PostForm.Get("amount")
	req.TaxAmount = r.PostForm.Get("taxAmount")
	req.Description = r.PostForm.Get("description")
	return req, nil
}

func CheckoutRequestToInput(gw string, req CheckoutRequest) (service.CheckoutInput, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return service.CheckoutInput{}, err
	}
	tax := decimal.Zero
	if req.TaxAmount != "" {
		if tax, err = decimal.NewFromString(req.TaxAmount); err != nil {
			return service.CheckoutInput{}, err
		}
	}

	return service.CheckoutInput{
		Gateway:     gw,
		PayerID:     strings.TrimSpace(req.PayerID),
		FeeCategory: req.FeeCategory,
		Amount:      amount,
		TaxAmount:   tax,
		Description: strings.TrimSpace(req.Description),
	}, nil
}

func FormToSignResponse(endpoint string, form gateway.EsewaForm) SignResponse {
	fields := form.Fields()
	res := SignResponse{
		Endpoint: endpoint,
		Fields:   make([]FormField, 0, len(fields)),
	}
	for _, f := range fields {
		res.Fields = append(res.Fields, FormField{Name: f.Name, Value: f.Value})
	}
	return res
}

func AttemptEntityToJSON(a entities.Attempt) Attempt {
	return Attempt{
		TransactionUUID: a.TransactionUUID,
		PayerID:         a.PayerID,
		FeeCategory:     string(a.FeeCategory),
		Amount:          entities.FormatAmount(a.Amount),
		TaxAmount:       entities.FormatAmount(a.TaxAmount),
		TotalAmount:     entities.FormatAmount(a.TotalAmount),
		Description:     a.Description,
		ProductCode:     a.ProductCode,
		Status:          string(a.Status),
		GatewayRef:      a.GatewayRef,
		FailureReason:   a.FailureReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
