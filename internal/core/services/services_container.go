package services

import (
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
)

// NewServiceContainer wires every service implementation from the repository
// provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountServiceImpl(repos.AccountRepo, repos.ClientRepo, repos.ReferenceRepo),
		Transaction: NewTransactionServiceImpl(repos.TransactionRepo),
		Report:      NewReportServiceImpl(repos.ClientRepo, repos.AccountRepo, repos.TransactionRepo),
		Client:      NewClientServiceImpl(repos.ClientRepo, repos.ReferenceRepo),
	}
}
