package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Attempt struct {
	TransactionUUID string          `db:"transaction_uuid"`
	PayerID         string          `db:"payer_id"`
	FeeCategory     string          `db:"fee_category"`
	Amount          decimal.Decimal `db:"amount"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Description     sql.NullString  `db:"description"`
	ProductCode     string          `db:"product_code"`
	Status          string          `db:"status"`
	GatewayRef      sql.NullString  `db:"gateway_ref"`
	FailureReason   sql.NullString  `db:"failure_reason"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func AttemptToEntity(a Attempt) entities.Attempt {
	return entities.Attempt{
		TransactionUUID: a.TransactionUUID,
		PayerID:         a.PayerID,
		FeeCategory:     entities.FeeCategory(a.FeeCategory),
		Amount:          a.Amount,
		TaxAmount:       a.TaxAmount,
		TotalAmount:     a.TotalAmount,
		Description:     nullStringToString(a.Description),
		ProductCode:     a.ProductCode,
		Status:          entities.Status(a.Status),
		GatewayRef:      nullStringToString(a.GatewayRef),
		FailureReason:   nullStringToString(a.FailureReason),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
