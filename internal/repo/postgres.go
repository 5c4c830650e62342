package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var attemptColumns = []string{
	"transaction_uuid", "payer_id", "fee_category", "amount", "tax_amount",
	"total_amount", "description", "product_code", "status", "gateway_ref",
	"failure_reason", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveAttempt stores a new attempt. A transaction uuid that is already taken
// is reported as ErrDuplicateTransaction and leaves the stored row alone.
func (r *postgresRepo) SaveAttempt(ctx context.Context, a entities.Attempt) error {
	query, args := r.qb.Insert("payment_attempts").
		Columns(attemptColumns...).
		Values(
			a.TransactionUUID, a.PayerID, string(a.FeeCategory), a.Amount, a.TaxAmount,
			a.TotalAmount, nullString(a.Description), a.ProductCode, string(a.Status), nullString(a.GatewayRef),
			nullString(a.FailureReason), a.CreatedAt, a.UpdatedAt,
		).
		Suffix("ON CONFLICT (transaction_uuid) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return insertedOne(res, a.TransactionUUID)
}

func insertedOne(res sql.Result, transactionUUID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", entities.ErrDuplicateTransaction, transactionUUID)
	}
	return nil
}

func (r *postgresRepo) GetAttempt(ctx context.Context, transactionUUID string) (entities.Attempt, error) {
	return r.getAttempt(ctx, transactionUUID, "")
}

// GetAttemptForUpdate locks the row until the surrounding transaction ends.
func (r *postgresRepo) GetAttemptForUpdate(ctx context.Context, transactionUUID string) (entities.Attempt, error) {
	return r.getAttempt(ctx, transactionUUID, "FOR UPDATE")
}

func (r *postgresRepo) getAttempt(ctx context.Context, transactionUUID, suffix string) (entities.Attempt, error) {
	q := r.qb.Select(attemptColumns...).
		From("payment_attempts").
		Where(sq.Eq{"transaction_uuid": transactionUUID})
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	query, args := q.MustSql()

	var a Attempt
	err := r.getContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Attempt{}, entities.ErrAttemptNotFound
	}
	if err != nil {
		return entities.Attempt{}, fmt.Errorf("failed to get attempt: %w", err)
	}
	return AttemptToEntity(a), nil
}

func (r *postgresRepo) UpdateAttempt(ctx context.Context, a entities.Attempt) error {
	query, args := r.qb.Update("payment_attempts").
		Set("status", string(a.Status)).
		Set("gateway_ref", nullString(a.GatewayRef)).
		Set("failure_reason", nullString(a.FailureReason)).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"transaction_uuid": a.TransactionUUID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update attempt: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrAttemptNotFound
	}
	return nil
}

func (r *postgresRepo) ListAttemptsByPayer(ctx context.Context, payerID string, limit int) ([]entities.Attempt, error) {
	query, args := r.qb.Select(attemptColumns...).
		From("payment_attempts").
		Where(sq.Eq{"payer_id": payerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	return r.selectAttempts(ctx, query, args...)
}

// LatestSettledAttempts returns the most recently settled attempts.
func (r *postgresRepo) LatestSettledAttempts(ctx context.Context, count int) ([]entities.Attempt, error) {
	query, args := r.qb.Select(attemptColumns...).
		From("payment_attempts").
		Where(sq.Eq{"status": []string{string(entities.StatusPaid), string(entities.StatusRejected), string(entities.StatusFailed)}}).
		OrderBy("updated_at DESC").
		Limit(uint64(count)).
		MustSql()

	return r.selectAttempts(ctx, query, args...)
}

func (r *postgresRepo) selectAttempts(ctx context.Context, query string, args ...any) ([]entities.Attempt, error) {
	var rows []Attempt
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select attempts: %w", err)
	}

	result := make([]entities.Attempt, 0, len(rows))
	for _, a := range rows {
		result = append(result, AttemptToEntity(a))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
