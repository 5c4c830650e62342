package signature_test

import (
	"testing"

	"github.com/SergeyBogomolovv/fee-payment-service/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "8gBm/:&EnhH.1/q"

func TestSign_GoldenVectors(t *testing.T) {
	testCases := []struct {
		name        string
		totalAmount string
		uuid        string
		productCode string
		want        string
	}{
		{
			name:        "fee payment fixture",
			totalAmount: "1100",
			uuid:        "TXN-1700000000000",
			productCode: "EPAYTEST",
			want:        "Z97Maw5Yi5C0XQFwCLeyxNBhqHv58YjyOe2sJl2ECGE=",
		},
		{
			name:        "gateway documentation example",
			totalAmount: "110",
			uuid:        "241028",
			productCode: "EPAYTEST",
			want:        "i94zsd3oXF6ZsSr/kGqT4sSzYQzjj1W/waxjWyRwaME=",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := signature.Sign(tc.totalAmount, tc.uuid, tc.productCode, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			again, err := signature.Sign(tc.totalAmount, tc.uuid, tc.productCode, testSecret)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestSign_Sensitivity(t *testing.T) {
	base, err := signature.Sign("1100", "TXN-1700000000000", "EPAYTEST", testSecret)
	require.NoError(t, err)

	testCases := []struct {
		name string
		args [4]string
	}{
		{name: "total amount", args: [4]string{"1101", "TXN-1700000000000", "EPAYTEST", testSecret}},
		{name: "transaction uuid", args: [4]string{"1100", "TXN-1700000000001", "EPAYTEST", testSecret}},
		{name: "product code", args: [4]string{"1100", "TXN-1700000000000", "EPAYPROD", testSecret}},
		{name: "secret key", args: [4]string{"1100", "TXN-1700000000000", "EPAYTEST", testSecret + "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := signature.Sign(tc.args[0], tc.args[1], tc.args[2], tc.args[3])
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestSign_EmptyInput(t *testing.T) {
	testCases := []struct {
		name    string
		args    [4]string
		wantErr error
	}{
		{name: "empty total", args: [4]string{"", "u", "p", "k"}, wantErr: signature.ErrEmptyField},
		{name: "empty uuid", args: [4]string{"1", "", "p", "k"}, wantErr: signature.ErrEmptyField},
		{name: "empty product", args: [4]string{"1", "u", "", "k"}, wantErr: signature.ErrEmptyField},
		{name: "missing key", args: [4]string{"1", "u", "p", ""}, wantErr: signature.ErrMissingKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := signature.Sign(tc.args[0], tc.args[1], tc.args[2], tc.args[3])
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestVerify(t *testing.T) {
	values := map[string]string{
		"transaction_code": "000AWEO",
		"status":           "COMPLETE",
		"total_amount":     "1100",
		"transaction_uuid": "TXN-1700000000000",
		"product_code":     "EPAYTEST",
	}
	names := "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names"
	values["signed_field_names"] = names

	msg, err := signature.Message(signature.FieldsFrom(names, values))
	require.NoError(t, err)
	assert.Equal(t,
		"transaction_code=000AWEO,status=COMPLETE,total_amount=1100,transaction_uuid=TXN-1700000000000,product_code=EPAYTEST,signed_field_names="+names,
		msg,
	)

	reqSig, err := signature.Sign("1100", "TXN-1700000000000", "EPAYTEST", testSecret)
	require.NoError(t, err)
	reqMsg := "total_amount=1100,transaction_uuid=TXN-1700000000000,product_code=EPAYTEST"

	assert.True(t, signature.Verify(reqMsg, testSecret, reqSig))
	assert.False(t, signature.Verify(reqMsg, "other", reqSig))
	assert.False(t, signature.Verify(msg, testSecret, reqSig))
	assert.False(t, signature.Verify(reqMsg, testSecret, "not base64!"))
	assert.False(t, signature.Verify("", testSecret, reqSig))
}
