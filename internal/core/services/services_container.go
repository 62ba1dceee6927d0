package services

import (
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company service first: the other services lean on it for authorization.
	container.Company = NewCompanyService(
		repos.CompanyRepo,
		repos.AccountRepo,
		repos.CurrencyRepo,
	)
	authorizer := container.Company.(portssvc.CompanyAuthorizerSvc)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, authorizer)
	container.Move = NewMoveService(repos.MoveRepo, repos.JournalRepo)
	container.Deposit = NewDepositService(
		repos.DepositRepo,
		repos.MoveRepo,
		repos.JournalRepo,
		repos.CompanyRepo,
		repos.SequenceRepo,
		container.Move,
		authorizer,
	)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
