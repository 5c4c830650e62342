package handler_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fee-payment-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sandboxURL   = "https://rc-epay.esewa.com.np/api/epay/main/v2/form"
	dashboardURL = "https://fees.school.edu.np/dashboard"
)

func newRouter(svc handler.PaymentService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	forms := gateway.NewFormBuilder(gateway.FormConfig{Endpoint: sandboxURL, PublicURL: "https://fees.school.edu.np"})
	h := handler.NewHTTPHandler(logger, svc, forms, gateway.NewSubmitter(sandboxURL), dashboardURL)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func signedPayload() entities.SignedPayload {
	req, _ := entities.NewPaymentRequest("stu-42", entities.FeeTuition,
		decimal.NewFromInt(1000), decimal.NewFromInt(100), "Term 2 tuition")
	return entities.SignedPayload{
		Request:          req,
		TransactionUUID:  "TXN-1700000000000",
		ProductCode:      "EPAYTEST",
		SignedFieldNames: "total_amount,transaction_uuid,product_code",
		Signature:        "Z97Maw5Yi5C0XQFwCLeyxNBhqHv58YjyOe2sJl2ECGE=",
	}
}

func wantInput() service.CheckoutInput {
	return service.CheckoutInput{
		Gateway:     "esewa",
		PayerID:     "stu-42",
		FeeCategory: "tuition",
		Amount:      decimal.RequireFromString("1000"),
		TaxAmount:   decimal.RequireFromString("100"),
		Description: "Term 2 tuition",
	}
}

const checkoutBody = `{"payerId":"stu-42","feeCategory":"tuition","amount":"1000","taxAmount":"100","description":"Term 2 tuition"}`

func TestHTTPHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "auto-submit page",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, "id-token", wantInput()).
					Return(signedPayload(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `<input type="hidden" name="signature" value="Z97Maw5Yi5C0XQFwCLeyxNBhqHv58YjyOe2sJl2ECGE=">`,
		},
		{
			name:       "missing token",
			path:       "/payment/esewa/checkout",
			body:       checkoutBody,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"missing bearer token"`,
		},
		{
			name:       "unsupported gateway",
			path:       "/payment/khalti/checkout",
			token:      "id-token",
			body:       checkoutBody,
			wantStatus: http.StatusNotFound,
			wantBody:   `"unsupported gateway"`,
		},
		{
			name:       "missing amount",
			path:       "/payment/esewa/checkout",
			token:      "id-token",
			body:       `{"payerId":"stu-42","feeCategory":"tuition"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Amount":"required"`,
		},
		{
			name:       "malformed json",
			path:       "/payment/esewa/checkout",
			token:      "id-token",
			body:       `{"payerId":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:  "non-positive amount",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  `{"payerId":"stu-42","feeCategory":"tuition","amount":"0"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, "id-token", mock.Anything).
					Return(entities.SignedPayload{}, errors.Join(entities.ErrValidation, errors.New("amount must be greater than zero"))).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `amount must be greater than zero`,
		},
		{
			name:  "backend message shown as is",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.SignedPayload{}, &entities.InitializationError{Status: 422, Message: "Fee already paid for this term"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"Fee already paid for this term"`,
		},
		{
			name:  "backend forbids payment",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.SignedPayload{}, &entities.InitializationError{Status: 403, Message: "Only parents can pay fees for this student"}).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"Only parents can pay fees for this student"`,
		},
		{
			name:  "paisa amounts accepted",
			path:  "/payment/esewa/sign",
			token: "id-token",
			body:  `{"payerId":"stu-42","feeCategory":"tuition","amount":"1000.50","taxAmount":"13.5"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, "id-token", mock.MatchedBy(func(in service.CheckoutInput) bool {
						return in.Amount.Equal(decimal.RequireFromString("1000.50")) &&
							in.TaxAmount.Equal(decimal.RequireFromString("13.5"))
					})).
					Return(signedPayload(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"signature"`,
		},
		{
			name:       "amount is not a number",
			path:       "/payment/esewa/sign",
			token:      "id-token",
			body:       `{"payerId":"stu-42","feeCategory":"tuition","amount":"ten"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Amount":"numeric"`,
		},
		{
			name:  "backend reissued transaction id",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.SignedPayload{}, fmt.Errorf("failed to save attempt: %w", entities.ErrDuplicateTransaction)).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"payment initialization failed"`,
		},
		{
			name:  "payment in flight",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.SignedPayload{}, entities.ErrPaymentInFlight).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"payment already in progress"`,
		},
		{
			name:  "signing failure",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.SignedPayload{}, errors.Join(entities.ErrSigning, errors.New("missing secret key"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"payment signing failed"`,
		},
		{
			name:  "unsigned payload is never submitted",
			path:  "/payment/esewa/checkout",
			token: "id-token",
			body:  checkoutBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				p := signedPayload()
				p.Signature = ""
				svc.EXPECT().
					Checkout(mock.Anything, mock.Anything, mock.Anything).
					Return(p, nil).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"payment submission failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CheckoutForm(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.EXPECT().
		Checkout(mock.Anything, "id-token", wantInput()).
		Return(signedPayload(), nil).Once()

	form := url.Values{
		"payerId":     {"stu-42"},
		"feeCategory": {"tuition"},
		"amount":      {"1000"},
		"taxAmount":   {"100"},
		"description": {"Term 2 tuition"},
	}
	req := httptest.NewRequest(http.MethodPost, "/payment/esewa/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer id-token")
	rr := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Body.String(), `action="`+sandboxURL+`"`)
	assert.Contains(t, rr.Body.String(), `name="total_amount" value="1100"`)
}

func TestHTTPHandler_Sign(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.EXPECT().
		Checkout(mock.Anything, "id-token", wantInput()).
		Return(signedPayload(), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/payment/esewa/sign", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer id-token")
	rr := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var res handler.SignResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, sandboxURL, res.Endpoint)
	require.Len(t, res.Fields, 11)

	fields := make(map[string]string, len(res.Fields))
	for _, f := range res.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "1100", fields["total_amount"])
	assert.Equal(t, "total_amount,transaction_uuid,product_code", fields["signed_field_names"])
	assert.Equal(t, "https://fees.school.edu.np/payment/success", fields["success_url"])
	assert.NotContains(t, rr.Body.String(), "secret")
}

func successQuery(amount string) string {
	data := `{"transaction_code":"000AWEO","status":"COMPLETE","total_amount":"` + amount +
		`","transaction_uuid":"TXN-1700000000000","product_code":"EPAYTEST"}`
	return "?data=" + url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(data)))
}

func TestHTTPHandler_Success(t *testing.T) {
	paid := entities.Attempt{
		TransactionUUID: "TXN-1700000000000",
		TotalAmount:     decimal.NewFromInt(1100),
		Status:          entities.StatusPaid,
		GatewayRef:      "000AWEO",
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "paid",
			query: successQuery("1100.0"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					ConfirmSuccess(mock.Anything, "esewa", mock.MatchedBy(func(cb entities.Callback) bool {
						return cb.TransactionUUID == "TXN-1700000000000" && cb.TotalAmount.Equal(decimal.NewFromInt(1100))
					})).
					Return(paid, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "Payment successful",
		},
		{
			name:  "rejected",
			query: successQuery("1100"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				rejected := paid
				rejected.Status = entities.StatusRejected
				rejected.FailureReason = "not confirmed by gateway"
				svc.EXPECT().ConfirmSuccess(mock.Anything, "esewa", mock.Anything).Return(rejected, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "not confirmed by gateway",
		},
		{
			name:  "callback disagrees with attempt",
			query: successQuery("1"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					ConfirmSuccess(mock.Anything, "esewa", mock.Anything).
					Return(entities.Attempt{}, fmt.Errorf("%w: amount 1, expected 1100", entities.ErrCallbackMismatch)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "does not match this payment",
		},
		{
			name:  "verification unavailable",
			query: successQuery("1100"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				pending := paid
				pending.Status = entities.StatusPendingVerification
				svc.EXPECT().
					ConfirmSuccess(mock.Anything, "esewa", mock.Anything).
					Return(pending, errors.Join(entities.ErrVerification, errors.New("timeout"))).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "Payment pending",
		},
		{
			name:  "unknown attempt",
			query: successQuery("1100"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					ConfirmSuccess(mock.Anything, "esewa", mock.Anything).
					Return(entities.Attempt{}, entities.ErrAttemptNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Payment not found",
		},
		{
			name:  "internal error",
			query: successQuery("1100"),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					ConfirmSuccess(mock.Anything, "esewa", mock.Anything).
					Return(entities.Attempt{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Payment status unknown",
		},
		{
			name:       "unreadable callback",
			query:      "?data=%25%25%25",
			wantStatus: http.StatusBadRequest,
			wantBody:   "could not be read",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			req := httptest.NewRequest(http.MethodGet, "/payment/success"+tc.query, nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Failure(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.EXPECT().
		RecordFailure(mock.Anything, entities.Callback{TransactionUUID: "TXN-9", Reason: "cancelled by user"}).
		Return(entities.Attempt{TransactionUUID: "TXN-9", TotalAmount: decimal.NewFromInt(500)}, true).Once()

	req := httptest.NewRequest(http.MethodGet, "/payment/failure?oid=TXN-9&reason=cancelled+by+user", nil)
	rr := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rr, req)

	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, "cancelled by user")
	assert.Contains(t, body, "TXN-9")
	assert.Contains(t, body, `href="`+dashboardURL+`">Try again`)
}

func TestHTTPHandler_GetAttempt(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().GetAttempt(mock.Anything, "id-token", "TXN-1").Return(entities.Attempt{
					TransactionUUID: "TXN-1",
					TotalAmount:     decimal.NewFromInt(1100),
					Status:          entities.StatusPaid,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().GetAttempt(mock.Anything, "id-token", "TXN-1").Return(entities.Attempt{}, entities.ErrAttemptNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"attempt not found"`,
		},
		{
			name: "attempt of another payer",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().GetAttempt(mock.Anything, "id-token", "TXN-1").Return(entities.Attempt{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"access denied"`,
		},
		{
			name: "token rejected by backend",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().GetAttempt(mock.Anything, "id-token", "TXN-1").
					Return(entities.Attempt{}, fmt.Errorf("failed to identify caller: %w", entities.ErrUnauthenticated)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"invalid bearer token"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().GetAttempt(mock.Anything, "id-token", "TXN-1").Return(entities.Attempt{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/payment/attempts/TXN-1", nil)
			req.Header.Set("Authorization", "Bearer id-token")
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListAttempts(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "default limit",
			query: "?payer_id=stu-42",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().ListAttempts(mock.Anything, "id-token", "stu-42", 20).Return([]entities.Attempt{
					{TransactionUUID: "TXN-2", Status: entities.StatusRedirected},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"transactionUuid":"TXN-2"`,
		},
		{
			name:  "empty list",
			query: "?payer_id=stu-42&limit=5",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().ListAttempts(mock.Anything, "id-token", "stu-42", 5).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "another payer's history",
			query: "?payer_id=stu-99",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().ListAttempts(mock.Anything, "id-token", "stu-99", 20).Return(nil, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"access denied"`,
		},
		{
			name:       "missing payer",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
		{
			name:       "limit out of range",
			query:      "?payer_id=stu-42&limit=1000",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"limit must be between 1 and 100"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			req := httptest.NewRequest(http.MethodGet, "/payment/attempts"+tc.query, nil)
			req.Header.Set("Authorization", "Bearer id-token")
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
