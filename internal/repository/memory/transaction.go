package memory

import "context"

// TxManager satisfies database.TxManager without transactional semantics; the
// map repositories mutate in place and the keyed day lock already serializes
// writers.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
