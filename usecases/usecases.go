package usecases

import (
	"github.com/helixcrm/helix-backend/repositories"
	"github.com/helixcrm/helix-backend/usecases/executor_factory"
)

// Usecases wires repositories and the executor factory together. Each
// usecase is constructed on demand with its dependencies injected.
type Usecases struct {
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	abTestRepository       repositories.ABTestRepository
	abTestResultRepository repositories.ABTestResultRepository
}

func NewUsecases(executorGetter repositories.ExecutorGetter) Usecases {
	dbExecutorFactory := executor_factory.NewDbExecutorFactory(executorGetter)

	return Usecases{
		executorFactory:        dbExecutorFactory,
		transactionFactory:     dbExecutorFactory,
		abTestRepository:       repositories.ABTestRepositoryPostgresql{},
		abTestResultRepository: repositories.ABTestResultRepositoryPostgresql{},
	}
}

func (usecases Usecases) NewABTestUsecase() ABTestUsecase {
	return ABTestUsecase{
		executorFactory:        usecases.executorFactory,
		transactionFactory:     usecases.transactionFactory,
		abTestRepository:       usecases.abTestRepository,
		abTestResultRepository: usecases.abTestResultRepository,
	}
}
