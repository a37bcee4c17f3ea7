package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx embeds pgx.Tx for its method set; only Commit and Rollback are
// implemented, anything else would panic.
type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestRunInTransactionCommits(t *testing.T) {
	tx := &fakeTx{}
	err := runInTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
}

func TestRunInTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	sentinel := errors.New("ledger write failed")

	err := runInTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return sentinel
	})

	// The caller's error must come back unwrapped so sentinel matching
	// survives the rollback path.
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestRunInTransactionRollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	assert.Panics(t, func() {
		_ = runInTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
			panic("boom")
		})
	})
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestRunInTransactionAddsDeadline(t *testing.T) {
	tx := &fakeTx{}

	err := runInTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	require.NoError(t, err)
}

func TestRunInTransactionBeginFailure(t *testing.T) {
	beginErr := errors.New("pool exhausted")

	err := runInTransaction(context.Background(), &fakeBeginner{beginErr: beginErr}, func(ctx context.Context, _ pgx.Tx) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	assert.ErrorIs(t, err, beginErr)
}

func TestRunInTransactionCommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection lost")}

	err := runInTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return nil
	})
	assert.ErrorContains(t, err, "failed to commit transaction")
}
