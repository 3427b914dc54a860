package services

import (
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service layer from the repository container.
func NewServiceContainer(repos *portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.Account)
	dispatcher := NewLogNotificationDispatcher()
	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Posting:   NewPostingService(repos.Entry, accountSvc, dispatcher),
		Reporting: NewReportingService(repos.Reporting),
	}
}
