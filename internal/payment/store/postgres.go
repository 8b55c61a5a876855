package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"storefront/internal/payment"
	"storefront/pkg/platform/sentinel"
	txcontext "storefront/pkg/platform/tx"
)

const uniqueViolation = "23505"

// Postgres persists attempts in the payment_attempts table. Writes join the
// transaction carried in ctx when there is one; state transitions open their
// own otherwise so the follow-up read sees the same snapshot.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Postgres) Create(ctx context.Context, a *payment.Attempt) error {
	query := `
		INSERT INTO payment_attempts (
			gateway_order_id, order_code, session_id, amount, currency, method,
			status, coupon_codes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	codes := a.CouponCodes
	if codes == nil {
		codes = []string{}
	}
	_, err := s.execer(ctx).ExecContext(ctx, query,
		a.GatewayOrderID, a.OrderCode, a.SessionID, a.Amount, a.Currency, a.Method,
		string(a.Status), pq.Array(codes), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert payment attempt: %w", err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, gatewayOrderID string) (*payment.Attempt, error) {
	query := `
		SELECT gateway_order_id, order_code, session_id, amount, currency, method, status,
			COALESCE(payment_key, ''), COALESCE(failure_code, ''), COALESCE(failure_message, ''),
			coupon_codes, created_at, updated_at
		FROM payment_attempts
		WHERE gateway_order_id = $1
	`
	var (
		a      payment.Attempt
		status string
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, gatewayOrderID).Scan(
		&a.GatewayOrderID, &a.OrderCode, &a.SessionID, &a.Amount, &a.Currency, &a.Method, &status,
		&a.PaymentKey, &a.FailureCode, &a.FailureMessage,
		pq.Array(&a.CouponCodes), &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("select payment attempt: %w", err)
	}
	a.Status = payment.Status(status)
	return &a, nil
}

func (s *Postgres) Claim(ctx context.Context, gatewayOrderID, paymentKey string, at time.Time) error {
	query := `
		UPDATE payment_attempts
		SET status = $2, payment_key = $3, updated_at = $4
		WHERE gateway_order_id = $1 AND status = $5
	`
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		res, err := s.execer(ctx).ExecContext(ctx, query,
			gatewayOrderID, string(payment.StatusProcessing), paymentKey, at, string(payment.StatusPending))
		if err != nil {
			if isUniqueViolation(err) {
				return sentinel.ErrAlreadyUsed
			}
			return fmt.Errorf("claim payment attempt: %w", err)
		}
		return s.checkTransition(ctx, res, gatewayOrderID)
	})
}

func (s *Postgres) MarkConfirmed(ctx context.Context, gatewayOrderID, paymentKey string, at time.Time) error {
	query := `
		UPDATE payment_attempts
		SET status = $2, payment_key = $3, updated_at = $4
		WHERE gateway_order_id = $1 AND status IN ($5, $6)
	`
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		res, err := s.execer(ctx).ExecContext(ctx, query,
			gatewayOrderID, string(payment.StatusConfirmed), paymentKey, at,
			string(payment.StatusPending), string(payment.StatusProcessing))
		if err != nil {
			if isUniqueViolation(err) {
				return sentinel.ErrAlreadyUsed
			}
			return fmt.Errorf("confirm payment attempt: %w", err)
		}
		return s.checkTransition(ctx, res, gatewayOrderID)
	})
}

func (s *Postgres) MarkFailed(ctx context.Context, gatewayOrderID, code, message string, at time.Time) error {
	query := `
		UPDATE payment_attempts
		SET status = $2, failure_code = $3, failure_message = $4, updated_at = $5
		WHERE gateway_order_id = $1 AND status IN ($6, $7)
	`
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		res, err := s.execer(ctx).ExecContext(ctx, query,
			gatewayOrderID, string(payment.StatusFailed), code, message, at,
			string(payment.StatusPending), string(payment.StatusProcessing))
		if err != nil {
			return fmt.Errorf("fail payment attempt: %w", err)
		}
		return s.checkTransition(ctx, res, gatewayOrderID)
	})
}

// checkTransition tells a missing attempt apart from one that already left
// a state the transition accepts.
func (s *Postgres) checkTransition(ctx context.Context, res sql.Result, gatewayOrderID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}
	if _, err := s.Get(ctx, gatewayOrderID); err != nil {
		return err
	}
	return sentinel.ErrInvalidState
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
