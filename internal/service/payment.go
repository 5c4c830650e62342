package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/backend"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/signature"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
	"github.com/shopspring/decimal"
)

type Backend interface {
	Initialize(ctx context.Context, token, gateway string, req backend.InitializeRequest) (entities.TransactionSession, error)
	Verify(ctx context.Context, token, gateway string, req backend.VerifyRequest) (bool, error)
	Identify(ctx context.Context, token string) (entities.Identity, error)
}

type Signer interface {
	Sign(totalAmount, transactionUUID, productCode, secretKey string) (string, error)
}

type AttemptRepo interface {
	SaveAttempt(ctx context.Context, a entities.Attempt) error
	GetAttempt(ctx context.Context, transactionUUID string) (entities.Attempt, error)
	GetAttemptForUpdate(ctx context.Context, transactionUUID string) (entities.Attempt, error)
	UpdateAttempt(ctx context.Context, a entities.Attempt) error
	ListAttemptsByPayer(ctx context.Context, payerID string, limit int) ([]entities.Attempt, error)
	LatestSettledAttempts(ctx context.Context, count int) ([]entities.Attempt, error)
}

type Cache interface {
	Get(key string) (entities.Attempt, bool)
	Set(key string, value entities.Attempt)
}

type Publisher interface {
	PublishPaymentOutcome(ctx context.Context, a entities.Attempt) error
}

// Locker guards a payer's in-flight payment.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type CheckoutInput struct {
	Gateway     string
	PayerID     string
	FeeCategory string
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	Description string
}

type VerifyConfig struct {
	// ServiceToken authenticates callback verification, which happens on a
	// gateway redirect and so carries no user credential.
	ServiceToken string
	Retry        utils.RetryConfig
}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	backend   Backend
	signer    Signer
	repo      AttemptRepo
	cache     Cache
	publisher Publisher
	locker    Locker
	verify    VerifyConfig
	now       func() time.Time
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	backend Backend,
	signer Signer,
	repo AttemptRepo,
	cache Cache,
	publisher Publisher,
	locker Locker,
	verify VerifyConfig,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		backend:   backend,
		signer:    signer,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		locker:    locker,
		verify:    verify,
		now:       time.Now,
	}
}

// Checkout validates the request, obtains a session from the backend, signs
// it and records the attempt. The caller must hand the payload to the
// gateway; nothing here is retried.
func (s *paymentService) Checkout(ctx context.Context, token string, in CheckoutInput) (entities.SignedPayload, error) {
	category, err := entities.ParseFeeCategory(in.FeeCategory)
	if err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		return entities.SignedPayload{}, err
	}
	req, err := entities.NewPaymentRequest(in.PayerID, category, in.Amount, in.TaxAmount, in.Description)
	if err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		return entities.SignedPayload{}, err
	}

	locked, err := s.locker.TryLock(ctx, req.PayerID)
	if err != nil {
		return entities.SignedPayload{}, fmt.Errorf("failed to guard payment: %w", err)
	}
	if !locked {
		checkoutsTotal.WithLabelValues("in_flight").Inc()
		return entities.SignedPayload{}, entities.ErrPaymentInFlight
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), req.PayerID); err != nil {
			s.logger.ErrorContext(ctx, "failed to release payment guard", slog.String("payer_id", req.PayerID), slog.Any("error", err))
		}
	}()

	attempt := entities.Attempt{Status: entities.StatusIdle}
	if err := attempt.Advance(entities.StatusInitializing); err != nil {
		return entities.SignedPayload{}, err
	}

	start := time.Now()
	session, err := s.backend.Initialize(ctx, token, in.Gateway, backend.InitializeRequest{
		PayerID:     req.PayerID,
		FeeCategory: string(req.FeeCategory),
		Amount:      entities.FormatAmount(req.Amount),
		TaxAmount:   entities.FormatAmount(req.TaxAmount),
		Description: req.Description,
	})
	backendDuration.WithLabelValues("initialize").Observe(time.Since(start).Seconds())
	if err != nil {
		checkoutsTotal.WithLabelValues("initialization_failed").Inc()
		s.logger.WarnContext(ctx, "payment initialization failed", slog.String("payer_id", req.PayerID), slog.Any("error", err))
		if !errors.Is(err, entities.ErrInitialization) {
			err = fmt.Errorf("%w: %w", entities.ErrInitialization, err)
		}
		return entities.SignedPayload{}, err
	}

	total := entities.FormatAmount(req.TotalAmount)
	sig, err := s.signer.Sign(total, session.TransactionUUID, session.ProductCode, session.SecretKey)
	if err != nil {
		checkoutsTotal.WithLabelValues("signing_failed").Inc()
		return entities.SignedPayload{}, fmt.Errorf("%w: %w", entities.ErrSigning, err)
	}
	if err := attempt.Advance(entities.StatusSigned); err != nil {
		return entities.SignedPayload{}, err
	}

	payload := entities.SignedPayload{
		Request:          req,
		TransactionUUID:  session.TransactionUUID,
		ProductCode:      session.ProductCode,
		SignedFieldNames: signature.SignedFieldNames,
		Signature:        sig,
	}

	attempt.Bind(payload, s.now())
	if err := attempt.Advance(entities.StatusRedirected); err != nil {
		return entities.SignedPayload{}, err
	}
	if err := s.repo.SaveAttempt(ctx, attempt); err != nil {
		checkoutsTotal.WithLabelValues("store_failed").Inc()
		return entities.SignedPayload{}, fmt.Errorf("failed to save attempt: %w", err)
	}

	checkoutsTotal.WithLabelValues("signed").Inc()
	s.logger.InfoContext(ctx, "payment signed",
		slog.String("transaction_uuid", payload.TransactionUUID),
		slog.String("payer_id", req.PayerID),
		slog.String("total_amount", total),
	)
	return payload, nil
}

// ConfirmSuccess handles the success redirect. Arrival alone proves nothing:
// the attempt stays pending until the backend confirms the payment with the
// gateway. A callback that disagrees with the stored attempt changes nothing.
func (s *paymentService) ConfirmSuccess(ctx context.Context, gateway string, cb entities.Callback) (entities.Attempt, error) {
	if a, ok := s.cache.Get(cb.TransactionUUID); ok {
		return a, nil
	}

	pending, err := s.markPending(ctx, cb)
	if err != nil {
		return pending, err
	}
	if pending.Status.Terminal() {
		s.cache.Set(pending.TransactionUUID, pending)
		return pending, nil
	}

	// no transaction is open while the backend is asked
	verified, err := s.verifyWithBackend(ctx, gateway, cb)
	if err != nil {
		verificationsTotal.WithLabelValues(string(pending.Status)).Inc()
		s.logger.ErrorContext(ctx, "payment verification unavailable",
			slog.String("transaction_uuid", pending.TransactionUUID), slog.Any("error", err))
		return pending, fmt.Errorf("%w: %w", entities.ErrVerification, err)
	}

	result, settledNow, err := s.settle(ctx, cb, verified)
	if err != nil {
		return entities.Attempt{}, err
	}

	verificationsTotal.WithLabelValues(string(result.Status)).Inc()
	s.cache.Set(result.TransactionUUID, result)
	if settledNow {
		// TODO: publish through an outbox table so an event is never lost between commit and write.
		if err := s.publisher.PublishPaymentOutcome(ctx, result); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish payment outcome",
				slog.String("transaction_uuid", result.TransactionUUID), slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "payment callback processed",
		slog.String("transaction_uuid", result.TransactionUUID),
		slog.String("status", string(result.Status)),
	)
	return result, nil
}

// markPending checks the callback against the stored attempt and moves a
// redirected attempt to pending verification. Settled attempts come back
// unchanged.
func (s *paymentService) markPending(ctx context.Context, cb entities.Callback) (entities.Attempt, error) {
	var result entities.Attempt
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAttemptForUpdate(ctx, cb.TransactionUUID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			result = a
			return nil
		}

		switch {
		case !cb.TotalAmount.Equal(a.TotalAmount):
			return fmt.Errorf("%w: amount %s, expected %s", entities.ErrCallbackMismatch,
				entities.FormatAmount(cb.TotalAmount), entities.FormatAmount(a.TotalAmount))
		case cb.ProductCode != "" && cb.ProductCode != a.ProductCode:
			return fmt.Errorf("%w: product code %q", entities.ErrCallbackMismatch, cb.ProductCode)
		}

		if a.Status == entities.StatusPendingVerification {
			result = a
			return nil
		}
		if err := a.Advance(entities.StatusPendingVerification); err != nil {
			return err
		}
		a.UpdatedAt = s.now()
		if err := s.repo.UpdateAttempt(ctx, a); err != nil {
			return err
		}
		result = a
		return nil
	})
	if errors.Is(err, entities.ErrCallbackMismatch) {
		s.logger.WarnContext(ctx, "success callback does not match attempt",
			slog.String("transaction_uuid", cb.TransactionUUID), slog.Any("error", err))
	}
	return result, err
}

// settle records the backend's answer. It reports whether this call settled
// the attempt; a concurrent callback may have done so first.
func (s *paymentService) settle(ctx context.Context, cb entities.Callback, verified bool) (entities.Attempt, bool, error) {
	var (
		result     entities.Attempt
		settledNow bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAttemptForUpdate(ctx, cb.TransactionUUID)
		if err != nil {
			return err
		}
		if a.Status.Terminal() {
			result = a
			return nil
		}

		if verified {
			a.FailureReason = ""
			if cb.GatewayRef != "" {
				a.GatewayRef = cb.GatewayRef
			}
			err = a.Advance(entities.StatusPaid)
		} else {
			a.FailureReason = "not confirmed by gateway"
			err = a.Advance(entities.StatusRejected)
		}
		if err != nil {
			return err
		}

		a.UpdatedAt = s.now()
		if err := s.repo.UpdateAttempt(ctx, a); err != nil {
			return err
		}
		result, settledNow = a, true
		return nil
	})
	if err != nil {
		return entities.Attempt{}, false, err
	}
	return result, settledNow, nil
}

func (s *paymentService) verifyWithBackend(ctx context.Context, gateway string, cb entities.Callback) (bool, error) {
	var verified bool
	fn := func() error {
		start := time.Now()
		defer func() {
			backendDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
		}()

		var err error
		verified, err = s.backend.Verify(ctx, s.verify.ServiceToken, gateway, backend.VerifyRequest{
			TransactionUUID: cb.TransactionUUID,
			Params:          cb.Params,
		})
		return err
	}

	cfg := s.verify.Retry
	cfg.ShouldRetry = func(err error) bool {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.Temporary()
		}
		return true
	}
	if err := utils.Retry(ctx, cfg, fn, backend.ErrUnauthenticated); err != nil {
		return false, err
	}
	return verified, nil
}

// RecordFailure notes a failure redirect. It never changes the attempt: the
// payer may retry with a fresh session.
func (s *paymentService) RecordFailure(ctx context.Context, cb entities.Callback) (entities.Attempt, bool) {
	failuresTotal.Inc()
	s.logger.InfoContext(ctx, "payment failure callback",
		slog.String("transaction_uuid", cb.TransactionUUID),
		slog.String("reason", cb.Reason),
	)

	if cb.TransactionUUID == "" {
		return entities.Attempt{}, false
	}
	a, err := s.repo.GetAttempt(ctx, cb.TransactionUUID)
	if err != nil {
		if !errors.Is(err, entities.ErrAttemptNotFound) {
			s.logger.ErrorContext(ctx, "failed to load attempt", slog.Any("error", err))
		}
		return entities.Attempt{}, false
	}
	return a, true
}

// GetAttempt returns an attempt the caller is allowed to see.
func (s *paymentService) GetAttempt(ctx context.Context, token, transactionUUID string) (entities.Attempt, error) {
	id, err := s.identify(ctx, token)
	if err != nil {
		return entities.Attempt{}, err
	}

	a, ok := s.cache.Get(transactionUUID)
	if !ok {
		a, err = s.repo.GetAttempt(ctx, transactionUUID)
		if err != nil {
			return entities.Attempt{}, err
		}
		if a.Status.Terminal() {
			s.cache.Set(transactionUUID, a)
		}
	}

	if !id.CanAccess(a.PayerID) {
		return entities.Attempt{}, entities.ErrForbidden
	}
	return a, nil
}

func (s *paymentService) ListAttempts(ctx context.Context, token, payerID string, limit int) ([]entities.Attempt, error) {
	id, err := s.identify(ctx, token)
	if err != nil {
		return nil, err
	}
	if !id.CanAccess(payerID) {
		return nil, entities.ErrForbidden
	}
	return s.repo.ListAttemptsByPayer(ctx, payerID, limit)
}

func (s *paymentService) identify(ctx context.Context, token string) (entities.Identity, error) {
	start := time.Now()
	id, err := s.backend.Identify(ctx, token)
	backendDuration.WithLabelValues("identify").Observe(time.Since(start).Seconds())
	if err != nil {
		return entities.Identity{}, fmt.Errorf("failed to identify caller: %w", err)
	}
	return id, nil
}

// WarmUpCache loads the latest settled attempts so status lookups after a
// restart skip the database.
func (s *paymentService) WarmUpCache(ctx context.Context, count int) error {
	attempts, err := s.repo.LatestSettledAttempts(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load settled attempts: %w", err)
	}
	for _, a := range attempts {
		s.cache.Set(a.TransactionUUID, a)
	}
	s.logger.Info("cache warmed up", slog.Int("count", len(attempts)))
	return nil
}
