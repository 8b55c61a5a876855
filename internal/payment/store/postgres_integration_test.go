//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront/internal/payment"
	"storefront/internal/platform/postgres"
	"storefront/pkg/platform/sentinel"
	txcontext "storefront/pkg/platform/tx"
	"storefront/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, postgres.Migrate(context.Background(), pg.DB))

	runStoreContract(t, func(t *testing.T) payment.Store {
		_, err := pg.DB.Exec(`TRUNCATE payment_attempts`)
		require.NoError(t, err)
		return NewPostgres(pg.DB)
	})
}

func TestPostgresStore_JoinsContextTransaction(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	require.NoError(t, postgres.Migrate(ctx, pg.DB))
	s := NewPostgres(pg.DB)

	tx, err := pg.DB.BeginTx(ctx, nil)
	require.NoError(t, err)
	txCtx := txcontext.WithTx(ctx, tx)
	require.NoError(t, s.Create(txCtx, &payment.Attempt{GatewayOrderID: "a1", Status: payment.StatusPending}))
	require.NoError(t, tx.Rollback())

	_, err = s.Get(ctx, "a1")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgresStore_RunRollsBackOnError(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	require.NoError(t, postgres.Migrate(ctx, pg.DB))
	s := NewPostgres(pg.DB)
	now := time.Now().UTC()
	require.NoError(t, s.Create(ctx, &payment.Attempt{
		GatewayOrderID: "a1", OrderCode: "ORD1", Status: payment.StatusPending, CreatedAt: now, UpdatedAt: now,
	}))

	errAbort := errors.New("engine rejected payment")
	err := txcontext.Run(ctx, pg.DB, func(ctx context.Context) error {
		require.NoError(t, s.MarkConfirmed(ctx, "a1", "pk_1", now))
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	got, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, payment.StatusPending, got.Status)
}
