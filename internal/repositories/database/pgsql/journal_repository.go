package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	"github.com/finacct/check_deposit_app/internal/models"
	"github.com/finacct/check_deposit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal master data.
func newPgxJournalRepository(pool PgxDB) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalSelectColumns = `
	j.journal_id, j.company_id, j.name, j.type, j.bank_account_number, j.currency_code,
	j.lock_posted_entries, j.is_active,
	j.created_at, j.created_by, j.last_updated_at, j.last_updated_by
`

func scanJournal(row pgx.CollectableRow) (models.Journal, error) {
	var j models.Journal
	err := row.Scan(
		&j.JournalID,
		&j.CompanyID,
		&j.Name,
		&j.Type,
		&j.BankAccountNumber,
		&j.CurrencyCode,
		&j.LockPostedEntries,
		&j.IsActive,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	return j, err
}

// SaveJournal inserts a journal and its payment method lines within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	modelJournal := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (
			journal_id, company_id, name, type, bank_account_number, currency_code,
			lock_posted_entries, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, journalQuery,
		modelJournal.JournalID,
		modelJournal.CompanyID,
		modelJournal.Name,
		modelJournal.Type,
		modelJournal.BankAccountNumber,
		modelJournal.CurrencyCode,
		modelJournal.LockPostedEntries,
		modelJournal.IsActive,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("journal ID " + journal.JournalID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save journal "+journal.JournalID, err)
	}

	lineQuery := `
		INSERT INTO journal_payment_method_lines (line_id, journal_id, method_code, payment_account_id)
		VALUES ($1, $2, $3, $4);
	`
	for _, line := range journal.InboundMethods {
		_, err = tx.Exec(ctx, lineQuery,
			line.LineID,
			journal.JournalID,
			line.MethodCode,
			line.PaymentAccountID,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save payment method line "+line.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal with its inbound payment method lines.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalSelectColumns + ` FROM journals j WHERE j.journal_id = $1;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal "+journalID, err)
	}
	defer rows.Close()

	modelJournal, err := pgx.CollectOneRow(rows, scanJournal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan journal %s: %w", journalID, err)
	}

	methodLines, err := r.findPaymentMethodLines(ctx, []string{journalID})
	if err != nil {
		return nil, err
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	domainJournal.InboundMethods = mapping.ToDomainPaymentMethodLineSlice(methodLines[journalID])
	return &domainJournal, nil
}

// ListJournalsByCompany retrieves the active journals of a company.
func (r *PgxJournalRepository) ListJournalsByCompany(ctx context.Context, companyID string) ([]domain.Journal, error) {
	query := `SELECT ` + journalSelectColumns + ` FROM journals j WHERE j.company_id = $1 AND j.is_active = true ORDER BY j.name;`
	return r.queryJournals(ctx, query, companyID)
}

// FindBankJournals retrieves the active bank journals of a company, filtered by
// the presence of a bank account number.
func (r *PgxJournalRepository) FindBankJournals(ctx context.Context, companyID string, withBankAccount bool) ([]domain.Journal, error) {
	var accountFilter string
	if withBankAccount {
		accountFilter = `j.bank_account_number IS NOT NULL`
	} else {
		accountFilter = `j.bank_account_number IS NULL`
	}
	query := `SELECT ` + journalSelectColumns + `
		FROM journals j
		WHERE j.company_id = $1 AND j.type = $2 AND j.is_active = true AND ` + accountFilter + `
		ORDER BY j.name;`
	return r.queryJournals(ctx, query, companyID, models.JournalTypeBank)
}

func (r *PgxJournalRepository) queryJournals(ctx context.Context, query string, args ...any) ([]domain.Journal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journals", err)
	}
	defer rows.Close()

	modelJournals, err := pgx.CollectRows(rows, scanJournal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Journal{}, nil
		}
		return nil, fmt.Errorf("failed to scan journals: %w", err)
	}

	journalIDs := make([]string, len(modelJournals))
	for i, m := range modelJournals {
		journalIDs[i] = m.JournalID
	}
	methodLines, err := r.findPaymentMethodLines(ctx, journalIDs)
	if err != nil {
		return nil, err
	}

	journals := make([]domain.Journal, len(modelJournals))
	for i, m := range modelJournals {
		journals[i] = mapping.ToDomainJournal(m)
		journals[i].InboundMethods = mapping.ToDomainPaymentMethodLineSlice(methodLines[m.JournalID])
	}
	return journals, nil
}

// findPaymentMethodLines fetches the payment method lines of the given journals,
// grouped by journal ID.
func (r *PgxJournalRepository) findPaymentMethodLines(ctx context.Context, journalIDs []string) (map[string][]models.PaymentMethodLine, error) {
	if len(journalIDs) == 0 {
		return map[string][]models.PaymentMethodLine{}, nil
	}

	query := `
		SELECT line_id, journal_id, method_code, payment_account_id
		FROM journal_payment_method_lines
		WHERE journal_id = ANY($1)
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment method lines", err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentMethodLine, error) {
		var l models.PaymentMethodLine
		err := row.Scan(&l.LineID, &l.JournalID, &l.MethodCode, &l.PaymentAccountID)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment method lines: %w", err)
	}

	grouped := make(map[string][]models.PaymentMethodLine)
	for _, l := range lines {
		grouped[l.JournalID] = append(grouped[l.JournalID], l)
	}
	return grouped, nil
}
