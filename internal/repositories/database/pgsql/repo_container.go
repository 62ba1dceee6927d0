package pgsql

import (
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	moveRepo := newPgxMoveRepository(dbPool)
	depositRepo := newPgxDepositRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:  companyRepo,
		CurrencyRepo: currencyRepo,
		AccountRepo:  accountRepo,
		JournalRepo:  journalRepo,
		MoveRepo:     moveRepo,
		DepositRepo:  depositRepo,
		SequenceRepo: sequenceRepo,
		UserRepo:     userRepo,
	}
}
