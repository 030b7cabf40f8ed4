package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/helixcrm/helix-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

type TransactionFactoryStub struct {
	executorFactory ExecutorFactoryStub
}

func NewTransactionFactoryStub(executorFactory ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{
		executorFactory: executorFactory,
	}
}

type transactionStub struct {
	repositories.Executor
}

func (transactionStub) RawTx() pgx.Tx {
	return nil
}

func (stub TransactionFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(transactionStub{stub.executorFactory.NewExecutor()})
}
