// Package backend talks to the school REST backend, which mints payment
// sessions and verifies gateway callbacks.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/go-resty/resty/v2"
)

var ErrUnauthenticated = entities.ErrUnauthenticated

type InitializeRequest struct {
	PayerID     string `json:"payerId"`
	FeeCategory string `json:"feeCategory"`
	Amount      string `json:"amount"`
	TaxAmount   string `json:"taxAmount"`
	Description string `json:"description"`
}

type initializeResponse struct {
	TransactionUUID string `json:"transactionUuid"`
	ProductCode     string `json:"productCode"`
	SecretKey       string `json:"secretKey"`
}

type VerifyRequest struct {
	TransactionUUID string            `json:"transactionUuid"`
	Params          map[string]string `json:"params"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

type identityResponse struct {
	UserID   string   `json:"uid"`
	Role     string   `json:"role"`
	PayerIDs []string `json:"payerIds"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

// Initialize asks the backend for a fresh transaction session. It is called
// exactly once per attempt: a retry could mint a second transaction id.
func (c *Client) Initialize(ctx context.Context, token, gateway string, req InitializeRequest) (entities.TransactionSession, error) {
	if token == "" {
		return entities.TransactionSession{}, &entities.InitializationError{Status: http.StatusUnauthorized, Message: ErrUnauthenticated.Error()}
	}

	var out initializeResponse
	var errOut errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		SetResult(&out).
		SetError(&errOut).
		SetPathParam("gateway", gateway).
		Post("/payment/{gateway}/initialize")
	if err != nil {
		return entities.TransactionSession{}, &entities.InitializationError{Message: err.Error()}
	}
	if resp.IsError() {
		return entities.TransactionSession{}, &entities.InitializationError{
			Status:  resp.StatusCode(),
			Message: errorMessage(resp, errOut),
		}
	}

	if out.TransactionUUID == "" || out.ProductCode == "" || out.SecretKey == "" {
		return entities.TransactionSession{}, &entities.InitializationError{
			Status:  resp.StatusCode(),
			Message: "incomplete payment session in backend response",
		}
	}

	return entities.TransactionSession{
		TransactionUUID: out.TransactionUUID,
		ProductCode:     out.ProductCode,
		SecretKey:       out.SecretKey,
	}, nil
}

// Verify asks the backend to re-check a gateway callback against the gateway.
func (c *Client) Verify(ctx context.Context, token, gateway string, req VerifyRequest) (bool, error) {
	if token == "" {
		return false, ErrUnauthenticated
	}

	var out verifyResponse
	var errOut errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		SetResult(&out).
		SetError(&errOut).
		SetPathParam("gateway", gateway).
		Post("/payment/{gateway}/verify")
	if err != nil {
		return false, fmt.Errorf("failed to call verify: %w", err)
	}
	if resp.IsError() {
		return false, &StatusError{Status: resp.StatusCode(), Message: errorMessage(resp, errOut)}
	}

	return out.Verified, nil
}

// Identify resolves the bearer token to the caller and the payers they may
// act for.
func (c *Client) Identify(ctx context.Context, token string) (entities.Identity, error) {
	if token == "" {
		return entities.Identity{}, ErrUnauthenticated
	}

	var out identityResponse
	var errOut errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&errOut).
		Get("/auth/me")
	if err != nil {
		return entities.Identity{}, fmt.Errorf("failed to call identify: %w", err)
	}
	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return entities.Identity{}, fmt.Errorf("%w: %s", ErrUnauthenticated, errorMessage(resp, errOut))
	case resp.IsError():
		return entities.Identity{}, &StatusError{Status: resp.StatusCode(), Message: errorMessage(resp, errOut)}
	}

	return entities.Identity{
		UserID:   out.UserID,
		Role:     out.Role,
		PayerIDs: out.PayerIDs,
	}, nil
}

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// Temporary reports whether asking again may give a different answer.
func (e *StatusError) Temporary() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

func errorMessage(resp *resty.Response, e errorResponse) string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	}
	if body := strings.TrimSpace(resp.String()); body != "" {
		return body
	}
	return resp.Status()
}
