package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentRequest(t *testing.T) {
	testCases := []struct {
		name      string
		payerID   string
		category  entities.FeeCategory
		amount    string
		tax       string
		wantTotal string
		wantErr   error
	}{
		{name: "whole amounts", payerID: "stu-1", category: entities.FeeTuition, amount: "1000", tax: "100", wantTotal: "1100"},
		{name: "paisa amounts", payerID: "stu-1", category: entities.FeeHostel, amount: "0.10", tax: "0.20", wantTotal: "0.3"},
		{name: "zero tax", payerID: "stu-1", category: entities.FeeLibrary, amount: "250.75", tax: "0", wantTotal: "250.75"},
		{name: "empty payer", payerID: "", category: entities.FeeTuition, amount: "1000", tax: "0", wantErr: entities.ErrValidation},
		{name: "zero amount", payerID: "stu-1", category: entities.FeeTuition, amount: "0", tax: "0", wantErr: entities.ErrValidation},
		{name: "negative amount", payerID: "stu-1", category: entities.FeeTuition, amount: "-5", tax: "0", wantErr: entities.ErrValidation},
		{name: "negative tax", payerID: "stu-1", category: entities.FeeTuition, amount: "5", tax: "-1", wantErr: entities.ErrValidation},
		{name: "three decimals", payerID: "stu-1", category: entities.FeeTuition, amount: "5.001", tax: "0", wantErr: entities.ErrValidation},
		{name: "unknown category", payerID: "stu-1", category: "canteen", amount: "5", tax: "0", wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := entities.NewPaymentRequest(tc.payerID, tc.category,
				decimal.RequireFromString(tc.amount), decimal.RequireFromString(tc.tax), "fees")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, entities.FormatAmount(req.TotalAmount))
			assert.True(t, req.TotalAmount.Equal(req.Amount.Add(req.TaxAmount)))
		})
	}
}

func TestParseFeeCategory(t *testing.T) {
	c, err := entities.ParseFeeCategory("examination")
	require.NoError(t, err)
	assert.Equal(t, entities.FeeExamination, c)

	_, err = entities.ParseFeeCategory("Examination")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestAttempt_Advance(t *testing.T) {
	a := entities.Attempt{Status: entities.StatusIdle}

	require.NoError(t, a.Advance(entities.StatusInitializing))
	assert.ErrorIs(t, a.Advance(entities.StatusRedirected), entities.ErrInvalidTransition)
	require.NoError(t, a.Advance(entities.StatusSigned))
	require.NoError(t, a.Advance(entities.StatusRedirected))
	require.NoError(t, a.Advance(entities.StatusPendingVerification))
	require.NoError(t, a.Advance(entities.StatusPaid))

	assert.True(t, a.Status.Terminal())
	assert.ErrorIs(t, a.Advance(entities.StatusRejected), entities.ErrInvalidTransition)
}

func TestInitializationError(t *testing.T) {
	var err error = &entities.InitializationError{Status: 403, Message: "token expired"}
	assert.ErrorIs(t, err, entities.ErrInitialization)
	assert.Equal(t, "token expired", err.Error())
}

func TestIdentity_CanAccess(t *testing.T) {
	parent := entities.Identity{UserID: "u-1", Role: "parent", PayerIDs: []string{"stu-42", "stu-43"}}
	admin := entities.Identity{UserID: "u-2", Role: entities.RoleAdmin}

	assert.True(t, parent.CanAccess("stu-42"))
	assert.False(t, parent.CanAccess("stu-99"))
	assert.True(t, admin.CanAccess("stu-99"))
	assert.False(t, entities.Identity{}.CanAccess(""))
}
