package services

import (
	portsrepo "github.com/fintrk/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrk/expense_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. Both services share the single transaction repository so the
// analytics views always reflect every recorded transaction.
func NewServiceContainer(txnRepo portsrepo.TransactionRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(txnRepo),
		Analytics:   NewAnalyticsService(txnRepo),
	}
}
