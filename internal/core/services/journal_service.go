package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/dto"
	"github.com/google/uuid"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal creates a journal with its payment method configuration.
func (s *journalService) CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	// Payment accounts referenced by the method lines must exist in the company.
	accountIDs := make([]string, 0, len(req.InboundMethods))
	for _, m := range req.InboundMethods {
		if m.PaymentAccountID != nil {
			accountIDs = append(accountIDs, *m.PaymentAccountID)
		}
	}
	if len(accountIDs) > 0 {
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range accountIDs {
			account, ok := accounts[id]
			if !ok || account.CompanyID != companyID {
				return nil, apperrors.NewValidationFailedError("payment account " + id + " not found in company")
			}
		}
	}

	now := time.Now()
	journalID := uuid.NewString()
	methods := make([]domain.PaymentMethodLine, len(req.InboundMethods))
	for i, m := range req.InboundMethods {
		methods[i] = domain.PaymentMethodLine{
			LineID:           uuid.NewString(),
			JournalID:        journalID,
			MethodCode:       m.MethodCode,
			PaymentAccountID: m.PaymentAccountID,
		}
	}

	journal := domain.Journal{
		JournalID:         journalID,
		CompanyID:         companyID,
		Name:              req.Name,
		Type:              req.Type,
		BankAccountNumber: req.BankAccountNumber,
		CurrencyCode:      req.CurrencyCode,
		LockPostedEntries: req.LockPostedEntries,
		InboundMethods:    methods,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal",
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.String("type", string(journal.Type)))
	return &journal, nil
}

// GetJournalByID retrieves a journal with its inbound payment method lines.
func (s *journalService) GetJournalByID(ctx context.Context, companyID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return journal, nil
}

// ListJournals retrieves the active journals of a company.
func (s *journalService) ListJournals(ctx context.Context, companyID string, requestingUserID string) ([]domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	journals, err := s.journalRepo.ListJournalsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if journals == nil {
		journals = []domain.Journal{}
	}
	return journals, nil
}

// FindBankJournals retrieves the bank-type journals of a company, filtered by
// whether they carry a bank account number.
func (s *journalService) FindBankJournals(ctx context.Context, companyID string, withBankAccount bool) ([]domain.Journal, error) {
	return s.journalRepo.FindBankJournals(ctx, companyID, withBankAccount)
}
