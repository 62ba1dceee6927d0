package repositories

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
)

// JournalReader defines read operations for journal master data
type JournalReader interface {
	// FindJournalByID retrieves a journal with its inbound payment method lines.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournalsByCompany retrieves all active journals of a company.
	ListJournalsByCompany(ctx context.Context, companyID string) ([]domain.Journal, error)

	// FindBankJournals retrieves the active bank-type journals of a company,
	// filtered by whether they carry a bank account number.
	FindBankJournals(ctx context.Context, companyID string, withBankAccount bool) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal master data
type JournalWriter interface {
	// SaveJournal inserts a journal and its payment method lines atomically.
	SaveJournal(ctx context.Context, journal domain.Journal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
