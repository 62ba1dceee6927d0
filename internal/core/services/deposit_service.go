package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// depositService implements the DepositSvcFacade interface. It drives the check
// deposit workflow on top of the move engine.
type depositService struct {
	BaseService
	depositRepo  portsrepo.DepositRepositoryFacade
	moveRepo     portsrepo.MoveRepositoryWithTx
	journalRepo  portsrepo.JournalReader
	companyRepo  portsrepo.CompanyReader
	sequenceRepo portsrepo.SequenceRepositoryFacade
	moveSvc      portssvc.MoveSvcFacade
}

// NewDepositService creates a new deposit service with the provided dependencies
func NewDepositService(
	depositRepo portsrepo.DepositRepositoryFacade,
	moveRepo portsrepo.MoveRepositoryWithTx,
	journalRepo portsrepo.JournalReader,
	companyRepo portsrepo.CompanyReader,
	sequenceRepo portsrepo.SequenceRepositoryFacade,
	moveSvc portssvc.MoveSvcFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.DepositSvcFacade {
	return &depositService{
		BaseService:  BaseService{CompanyAuthorizer: authorizer},
		depositRepo:  depositRepo,
		moveRepo:     moveRepo,
		journalRepo:  journalRepo,
		companyRepo:  companyRepo,
		sequenceRepo: sequenceRepo,
		moveSvc:      moveSvc,
	}
}

// Ensure depositService implements the DepositSvcFacade interface
var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// findDepositInCompany loads a deposit and checks it belongs to the company.
func (s *depositService) findDepositInCompany(ctx context.Context, companyID, depositID string) (*domain.CheckDeposit, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return deposit, nil
}

// checkJournalFor validates that the journal is a bank journal without a bank
// account number, i.e. one that holds received checks.
func (s *depositService) checkJournalFor(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if journal.Type != domain.JournalTypeBank || journal.BankAccountNumber != nil {
		return nil, apperrors.NewValidationFailedError("journal " + journal.Name + " is not a check journal")
	}
	return journal, nil
}

// bankJournalFor validates that the journal is a bank journal with a bank
// account number, i.e. a deposit destination.
func (s *depositService) bankJournalFor(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if journal.Type != domain.JournalTypeBank || journal.BankAccountNumber == nil {
		return nil, apperrors.NewValidationFailedError("journal " + journal.Name + " has no bank account to deposit to")
	}
	return journal, nil
}

/// inHandAccountID resolves the in-hand check account of a check journal: the
// payment account of its manual inbound payment method.
func inHandAccountID(journal *domain.Journal) (string, error) {
	if accountID := journal.ManualInboundAccountID(); accountID != nil {
		return *accountID, nil
	}
	return "", apperrors.NewConflictError(
		"journal " + journal.Name + " has no payment account on its manual inbound payment method")
}

// defaultJournal picks the only candidate journal of the requested kind, or
// fails when the choice is ambiguous.
func (s *depositService) defaultJournal(ctx context.Context, companyID string, withBankAccount bool) (*domain.Journal, error) {
	journals, err := s.journalRepo.FindBankJournals(ctx, companyID, withBankAccount)
	if err != nil {
		return nil, err
	}
	if len(journals) != 1 {
		kind := "check"
		if withBankAccount {
			kind = "bank"
		}
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("cannot pick a default %s journal: company has %d candidates", kind, len(journals)))
	}
	return &journals[0], nil
}

// currencyMismatchError mirrors the constraint message shown for a check whose
// currency differs from the deposit's.
func currencyMismatchError(line domain.MoveLine, depositCurrency string) error {
	amount := line.Debit
	if line.CurrencyCode != "" && !line.AmountCurrency.IsZero() {
		amount = line.AmountCurrency.Abs()
	}
	return apperrors.NewValidationFailedError(fmt.Sprintf(
		"the check with amount %s and reference '%s' is in currency %s but the deposit is in currency %s",
		amount.String(), line.Ref, line.CurrencyCode, depositCurrency))
}

// depositTotal returns the slip total of a deposit: the sum in the deposit
// currency when it differs from the company currency, the debit sum otherwise.
func depositTotal(totals portsrepo.DepositTotals, depositCurrency, companyCurrency string) decimal.Decimal {
	if depositCurrency != companyCurrency {
		return totals.AmountCurrency
	}
	return totals.Debit
}

// CreateDeposit creates a draft deposit, assigning defaults and a sequence name.
func (s *depositService) CreateDeposit(ctx context.Context, companyID string, req dto.CreateDepositRequest, creatorUserID string) (*domain.CheckDeposit, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var checkJournal *domain.Journal
	if req.JournalID != nil {
		checkJournal, err = s.checkJournalFor(ctx, companyID, *req.JournalID)
	} else {
		checkJournal, err = s.defaultJournal(ctx, companyID, false)
	}
	if err != nil {
		return nil, err
	}

	var bankJournal *domain.Journal
	if req.BankJournalID != nil {
		bankJournal, err = s.bankJournalFor(ctx, companyID, *req.BankJournalID)
	} else {
		bankJournal, err = s.defaultJournal(ctx, companyID, true)
	}
	if err != nil {
		return nil, err
	}

	currencyCode := company.CurrencyCode
	if checkJournal.CurrencyCode != nil {
		currencyCode = *checkJournal.CurrencyCode
	}
	if req.CurrencyCode != nil {
		currencyCode = *req.CurrencyCode
	}

	depositDate := time.Now()
	if req.DepositDate != nil {
		depositDate = *req.DepositDate
	}

	name, err := s.sequenceRepo.NextByCode(ctx, domain.SequenceCodeDeposit, companyID, depositDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to draw deposit reference",
			slog.String("company_id", companyID))
		return nil, err
	}

	now := time.Now()
	deposit := domain.CheckDeposit{
		DepositID:     uuid.NewString(),
		Name:          name,
		CompanyID:     companyID,
		DepositDate:   depositDate,
		CurrencyCode:  currencyCode,
		State:         domain.DepositDraft,
		JournalID:     checkJournal.JournalID,
		BankJournalID: bankJournal.JournalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save deposit",
			slog.String("deposit_id", deposit.DepositID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit created",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("name", deposit.Name))
	return &deposit, nil
}

// UpdateDeposit updates a draft deposit's date, journals or currency. Changing
// the check journal re-derives the currency unless one is given explicitly.
func (s *depositService) UpdateDeposit(ctx context.Context, companyID string, depositID string, req dto.UpdateDepositRequest, requestingUserID string) (*domain.CheckDeposit, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.State != domain.DepositDraft {
		return nil, apperrors.NewConflictError("validated deposit " + deposit.Name + " cannot be modified")
	}

	if req.DepositDate != nil {
		deposit.DepositDate = *req.DepositDate
	}
	if req.JournalID != nil {
		checkJournal, err := s.checkJournalFor(ctx, companyID, *req.JournalID)
		if err != nil {
			return nil, err
		}
		deposit.JournalID = checkJournal.JournalID

		// A new check journal re-derives the deposit currency, as on creation.
		company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		deposit.CurrencyCode = company.CurrencyCode
		if checkJournal.CurrencyCode != nil {
			deposit.CurrencyCode = *checkJournal.CurrencyCode
		}
	}
	if req.BankJournalID != nil {
		bankJournal, err := s.bankJournalFor(ctx, companyID, *req.BankJournalID)
		if err != nil {
			return nil, err
		}
		deposit.BankJournalID = bankJournal.JournalID
	}
	if req.CurrencyCode != nil {
		deposit.CurrencyCode = *req.CurrencyCode
	}

	// The attached checks must still match the deposit currency.
	lines, err := s.moveRepo.FindLinesByDepositID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if line.CurrencyCode != deposit.CurrencyCode {
			return nil, currencyMismatchError(line, deposit.CurrencyCode)
		}
	}

	deposit.LastUpdatedAt = time.Now()
	deposit.LastUpdatedBy = requestingUserID
	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		s.LogError(ctx, err, "Failed to update deposit",
			slog.String("deposit_id", depositID))
		return nil, err
	}
	return deposit, nil
}

// DeleteDeposit removes a draft deposit, releasing its attached checks.
func (s *depositService) DeleteDeposit(ctx context.Context, companyID string, depositID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return err
	}
	if deposit.State == domain.DepositDone {
		return apperrors.NewConflictError("validated deposit " + deposit.Name + " cannot be deleted, set it back to draft first")
	}

	lines, err := s.moveRepo.FindLinesByDepositID(ctx, depositID)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		lineIDs := make([]string, len(lines))
		for i, l := range lines {
			lineIDs[i] = l.LineID
		}
		if err := s.moveRepo.SetLinesDeposit(ctx, lineIDs, nil, requestingUserID, time.Now()); err != nil {
			return err
		}
	}

	if err := s.depositRepo.DeleteDeposit(ctx, depositID); err != nil {
		s.LogError(ctx, err, "Failed to delete deposit",
			slog.String("deposit_id", depositID))
		return err
	}

	s.LogInfo(ctx, "Deposit deleted",
		slog.String("deposit_id", depositID),
		slog.String("name", deposit.Name))
	return nil
}

// AttachChecks attaches check move lines to a draft deposit.
func (s *depositService) AttachChecks(ctx context.Context, companyID string, depositID string, lineIDs []string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return err
	}
	if deposit.State != domain.DepositDraft {
		return apperrors.NewConflictError("checks cannot be added to validated deposit " + deposit.Name)
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, deposit.JournalID)
	if err != nil {
		return err
	}
	accountID, err := inHandAccountID(journal)
	if err != nil {
		return err
	}

	lines, err := s.moveRepo.FindLinesByIDs(ctx, lineIDs)
	if err != nil {
		return err
	}
	if len(lines) != len(lineIDs) {
		return apperrors.NewNotFoundError("some check lines were not found")
	}
	for _, line := range lines {
		if line.CompanyID != companyID || line.AccountID != accountID {
			return apperrors.NewValidationFailedError("line " + line.LineID + " is not an in-hand check of this journal")
		}
		if line.ParentState != domain.MovePosted {
			return apperrors.NewValidationFailedError("check " + line.Ref + " is not posted")
		}
		if !line.Debit.IsPositive() {
			return apperrors.NewValidationFailedError("line " + line.LineID + " is not a received check")
		}
		if line.Reconciled {
			return apperrors.NewValidationFailedError("check " + line.Ref + " is already reconciled")
		}
		if line.CheckDepositID != nil && *line.CheckDepositID != depositID {
			return apperrors.NewConflictError("check " + line.Ref + " already belongs to another deposit")
		}
		if line.CurrencyCode != deposit.CurrencyCode {
			return currencyMismatchError(line, deposit.CurrencyCode)
		}
	}

	if err := s.moveRepo.SetLinesDeposit(ctx, lineIDs, &depositID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to attach checks",
			slog.String("deposit_id", depositID))
		return err
	}

	s.LogInfo(ctx, "Checks attached to deposit",
		slog.String("deposit_id", depositID),
		slog.Int("count", len(lineIDs)))
	return nil
}

// DetachChecks detaches check move lines from a draft deposit.
func (s *depositService) DetachChecks(ctx context.Context, companyID string, depositID string, lineIDs []string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return err
	}
	if deposit.State != domain.DepositDraft {
		return apperrors.NewConflictError("checks cannot be removed from validated deposit " + deposit.Name)
	}

	lines, err := s.moveRepo.FindLinesByIDs(ctx, lineIDs)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.CheckDepositID == nil || *line.CheckDepositID != depositID {
			return apperrors.NewValidationFailedError("line " + line.LineID + " is not attached to this deposit")
		}
	}

	if err := s.moveRepo.SetLinesDeposit(ctx, lineIDs, nil, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to detach checks",
			slog.String("deposit_id", depositID))
		return err
	}
	return nil
}

// GetAllChecks attaches every eligible pending check to the deposit.
func (s *depositService) GetAllChecks(ctx context.Context, companyID string, depositID string, requestingUserID string) (int, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return 0, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return 0, err
	}
	if deposit.State != domain.DepositDraft {
		return 0, apperrors.NewConflictError("checks cannot be added to validated deposit " + deposit.Name)
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, deposit.JournalID)
	if err != nil {
		return 0, err
	}
	accountID, err := inHandAccountID(journal)
	if err != nil {
		return 0, err
	}

	lines, err := s.moveRepo.FindPendingCheckLines(ctx, companyID, accountID, deposit.CurrencyCode)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, apperrors.NewConflictError(
			"there are no in-hand checks in currency " + deposit.CurrencyCode + " to deposit")
	}

	lineIDs := make([]string, len(lines))
	for i, l := range lines {
		lineIDs[i] = l.LineID
	}
	if err := s.moveRepo.SetLinesDeposit(ctx, lineIDs, &depositID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to attach pending checks",
			slog.String("deposit_id", depositID))
		return 0, err
	}

	s.LogInfo(ctx, "Pending checks attached to deposit",
		slog.String("deposit_id", depositID),
		slog.Int("count", len(lineIDs)))
	return len(lineIDs), nil
}

// counterpartAccountID resolves the debit account of the deposit move: the bank
// journal's manual inbound payment account, falling back to the company's
// outstanding receipts account.
func counterpartAccountID(bankJournal *domain.Journal, company *domain.Company) (string, error) {
	if accountID := bankJournal.ManualInboundAccountID(); accountID != nil {
		return *accountID, nil
	}
	if company.OutstandingReceiptsAccountID != nil {
		return *company.OutstandingReceiptsAccountID, nil
	}
	return "", apperrors.NewConflictError(
		"define an outstanding receipts account for company " + company.Name +
			" or a payment account on the manual inbound method of journal " + bankJournal.Name)
}

// ValidateDeposit books and posts the deposit move, reconciles every check with
// its offsetting line and flips the deposit to DONE.
func (s *depositService) ValidateDeposit(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.State != domain.DepositDraft {
		return nil, apperrors.NewConflictError("deposit " + deposit.Name + " is already validated")
	}

	checks, err := s.moveRepo.FindLinesByDepositID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if len(checks) == 0 {
		return nil, apperrors.NewValidationFailedError("deposit " + deposit.Name + " has no checks to deposit")
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	bankJournal, err := s.bankJournalFor(ctx, companyID, deposit.BankJournalID)
	if err != nil {
		return nil, err
	}
	debitAccountID, err := counterpartAccountID(bankJournal, company)
	if err != nil {
		return nil, err
	}

	// One offsetting credit line per check, then the counterpart debit. The
	// offsetting lines do not point back to the deposit: only the original
	// checks count toward its totals.
	totalDebit := decimal.Zero
	totalCurrency := decimal.Zero
	pairedLineIDs := make([]string, 0, len(checks))
	lines := make([]domain.MoveLine, 0, len(checks)+1)
	for _, check := range checks {
		if check.CurrencyCode != deposit.CurrencyCode {
			return nil, currencyMismatchError(check, deposit.CurrencyCode)
		}
		totalDebit = totalDebit.Add(check.Debit)
		totalCurrency = totalCurrency.Add(check.AmountCurrency)
		label := check.Name
		if check.Ref != "" {
			label = "Check Ref. " + check.Ref
		}
		pairedLineIDs = append(pairedLineIDs, check.LineID)
		lines = append(lines, domain.MoveLine{
			AccountID:      check.AccountID,
			PartnerID:      check.PartnerID,
			Name:           label,
			Ref:            check.Ref,
			Credit:         check.Debit,
			AmountCurrency: check.AmountCurrency.Neg(),
			CurrencyCode:   check.CurrencyCode,
		})
	}
	lines = append(lines, domain.MoveLine{
		AccountID:      debitAccountID,
		Name:           deposit.Name,
		Debit:          totalDebit,
		AmountCurrency: totalCurrency,
		CurrencyCode:   deposit.CurrencyCode,
	})

	// The move is booked on the deposit's check journal. Posting, the pairwise
	// reconciliations and the state flip commit as one transaction.
	moveID := uuid.NewString()
	move, err := s.moveSvc.PostMoveWithReconciliation(ctx, domain.Move{
		MoveID:    moveID,
		CompanyID: companyID,
		JournalID: deposit.JournalID,
		Date:      deposit.DepositDate,
		Ref:       "Check Deposit " + deposit.Name,
		Lines:     lines,
	}, pairedLineIDs, requestingUserID, func(ctx context.Context, tx pgx.Tx) error {
		return s.depositRepo.UpdateDepositStateTx(ctx, tx, depositID, domain.DepositDone, &moveID, requestingUserID, time.Now())
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to book deposit move",
			slog.String("deposit_id", depositID))
		return nil, err
	}

	deposit.State = domain.DepositDone
	deposit.MoveID = &move.MoveID
	deposit.TotalAmount = depositTotal(portsrepo.DepositTotals{Debit: totalDebit, AmountCurrency: totalCurrency, Count: len(checks)}, deposit.CurrencyCode, company.CurrencyCode)
	deposit.CheckCount = len(checks)

	s.LogInfo(ctx, "Deposit validated",
		slog.String("deposit_id", depositID),
		slog.String("move_id", move.MoveID),
		slog.Int("check_count", len(checks)))
	return deposit, nil
}

// BackToDraft reverses a validated deposit: unposts and deletes the move, undoes
// the reconciliations and returns the deposit to DRAFT. The checks stay attached.
func (s *depositService) BackToDraft(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.State != domain.DepositDone || deposit.MoveID == nil {
		return nil, apperrors.NewConflictError("deposit " + deposit.Name + " is not validated")
	}

	// Unposting, unreconciling, the move deletion and the state flip commit as
	// one transaction.
	err = s.moveSvc.RevertMove(ctx, *deposit.MoveID, requestingUserID, func(ctx context.Context, tx pgx.Tx) error {
		return s.depositRepo.UpdateDepositStateTx(ctx, tx, depositID, domain.DepositDraft, nil, requestingUserID, time.Now())
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to revert deposit move",
			slog.String("deposit_id", depositID),
			slog.String("move_id", *deposit.MoveID))
		return nil, err
	}

	deposit.State = domain.DepositDraft
	deposit.MoveID = nil

	s.LogInfo(ctx, "Deposit set back to draft",
		slog.String("deposit_id", depositID))
	return deposit, nil
}

// GetDepositByID retrieves a deposit with its totals and attached check lines.
func (s *depositService) GetDepositByID(ctx context.Context, companyID string, depositID string, requestingUserID string) (*domain.CheckDeposit, []domain.MoveLine, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return nil, nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.fillTotals(ctx, company.CurrencyCode, deposit); err != nil {
		return nil, nil, err
	}

	lines, err := s.moveRepo.FindLinesByDepositID(ctx, depositID)
	if err != nil {
		return nil, nil, err
	}
	return deposit, lines, nil
}

// fillTotals loads the line aggregates of the given deposits.
func (s *depositService) fillTotals(ctx context.Context, companyCurrency string, deposits ...*domain.CheckDeposit) error {
	ids := make([]string, len(deposits))
	for i, d := range deposits {
		ids[i] = d.DepositID
	}
	totals, err := s.depositRepo.GetDepositTotals(ctx, ids)
	if err != nil {
		return err
	}
	for _, d := range deposits {
		t := totals[d.DepositID]
		d.TotalAmount = depositTotal(t, d.CurrencyCode, companyCurrency)
		d.CheckCount = t.Count
	}
	return nil
}

// ListDeposits retrieves a paginated list of deposits in a company.
func (s *depositService) ListDeposits(ctx context.Context, companyID string, requestingUserID string, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	deposits, nextToken, err := s.depositRepo.ListDepositsByCompany(ctx, companyID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deposits",
			slog.String("company_id", companyID))
		return nil, err
	}

	if len(deposits) > 0 {
		company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		refs := make([]*domain.CheckDeposit, len(deposits))
		for i := range deposits {
			refs[i] = &deposits[i]
		}
		if err := s.fillTotals(ctx, company.CurrencyCode, refs...); err != nil {
			return nil, err
		}
	}

	resp := dto.ToListDepositsResponse(deposits, nextToken)
	return &resp, nil
}

// GetDepositSlip builds the printable deposit slip document.
func (s *depositService) GetDepositSlip(ctx context.Context, companyID string, depositID string, requestingUserID string) (*dto.DepositSlip, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	deposit, err := s.findDepositInCompany(ctx, companyID, depositID)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	bankJournal, err := s.journalRepo.FindJournalByID(ctx, deposit.BankJournalID)
	if err != nil {
		return nil, err
	}
	lines, err := s.moveRepo.FindLinesByDepositID(ctx, depositID)
	if err != nil {
		return nil, err
	}

	foreign := deposit.CurrencyCode != company.CurrencyCode
	rows := make([]dto.DepositSlipRow, len(lines))
	total := decimal.Zero
	for i, line := range lines {
		amount := line.Debit
		if foreign {
			amount = line.AmountCurrency
		}
		total = total.Add(amount)
		rows[i] = dto.DepositSlipRow{
			Date:         line.CreatedAt,
			Label:        line.Name,
			Ref:          line.Ref,
			Amount:       amount,
			CurrencyCode: line.CurrencyCode,
		}
	}

	return &dto.DepositSlip{
		DepositName:   deposit.Name,
		CompanyName:   company.Name,
		DepositDate:   deposit.DepositDate,
		BankJournal:   bankJournal.Name,
		BankAccount:   bankJournal.BankAccountNumber,
		CurrencyCode:  deposit.CurrencyCode,
		State:         string(deposit.State),
		Rows:          rows,
		TotalAmount:   total,
		NumberOfRows:  len(rows),
		GeneratedAt:   time.Now(),
		GeneratedByID: requestingUserID,
	}, nil
}
