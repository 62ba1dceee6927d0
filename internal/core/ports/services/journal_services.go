package services

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal master data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with its inbound payment method lines.
	GetJournalByID(ctx context.Context, companyID string, journalID string, requestingUserID string) (*domain.Journal, error)

	// ListJournals retrieves the active journals of a company.
	ListJournals(ctx context.Context, companyID string, requestingUserID string) ([]domain.Journal, error)

	// FindBankJournals retrieves the bank-type journals of a company, filtered by
	// whether they carry a bank account number.
	FindBankJournals(ctx context.Context, companyID string, withBankAccount bool) ([]domain.Journal, error)
}

// JournalWriterSvc defines write operations for journal master data
type JournalWriterSvc interface {
	// CreateJournal creates a journal with its payment method configuration.
	CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
