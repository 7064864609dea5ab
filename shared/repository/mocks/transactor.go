package mocks

import (
	"context"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
)

// Transactor runs the unit of work without a database. Repository mocks
// receive a nil *sqlx.Tx, which they accept through gomock.Any().
type Transactor struct {
	Err   error
	calls atomic.Int64
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	t.calls.Add(1)

	if t.Err != nil {
		return t.Err
	}

	return fn(nil)
}

// Calls reports how many units of work were started.
func (t *Transactor) Calls() int {
	return int(t.calls.Load())
}
