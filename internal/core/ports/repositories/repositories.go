package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo  CompanyRepositoryFacade
	CurrencyRepo CurrencyRepositoryFacade
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	MoveRepo     MoveRepositoryWithTx
	DepositRepo  DepositRepositoryFacade
	SequenceRepo SequenceRepositoryFacade
	UserRepo     UserRepositoryFacade
}
