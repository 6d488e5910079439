package uow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterRepo struct {
	db DBTX
}

func newTestTransaction() *Transaction {
	return NewTransaction(nil, map[RepositoryName]RepositoryFactory{
		"counter": func(db DBTX) Repository { return &counterRepo{db: db} },
	})
}

func TestTransaction_GetAs(t *testing.T) {
	tx := newTestTransaction()

	repo, err := GetAs[*counterRepo](tx, "counter")
	require.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = GetAs[*counterRepo](tx, "missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
	assert.Contains(t, err.Error(), "missing")

	_, err = GetAs[string](tx, "counter")
	assert.ErrorIs(t, err, ErrInvalidRepositoryType)
}

func TestTransaction_AfterCommitOrder(t *testing.T) {
	tx := newTestTransaction()

	var calls []int
	tx.AfterCommit(func(context.Context) { calls = append(calls, 1) })
	tx.AfterCommit(func(context.Context) { calls = append(calls, 2) })
	assert.Empty(t, calls)

	tx.runAfterCommit(context.Background())
	assert.Equal(t, []int{1, 2}, calls)
}

func TestUnitOfWork_RegisterTwice(t *testing.T) {
	u := NewUnitOfWork(nil)
	factory := func(db DBTX) Repository { return &counterRepo{db: db} }

	require.NoError(t, u.Register("counter", factory))
	assert.ErrorIs(t, u.Register("counter", factory), ErrRepositoryAlreadyRegistered)

	_, err := GetRepositoryAs[*counterRepo](u, "missing")
	assert.ErrorIs(t, err, ErrRepositoryNotRegistered)
}
