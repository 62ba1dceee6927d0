package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	"github.com/finacct/check_deposit_app/internal/models"
	"github.com/finacct/check_deposit_app/internal/utils/mapping"
	"github.com/finacct/check_deposit_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxDepositRepository struct {
	BaseRepository
}

// newPgxDepositRepository creates a new repository for check deposit data.
func newPgxDepositRepository(pool PgxDB) portsrepo.DepositRepositoryFacade {
	return &PgxDepositRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDepositRepository implements portsrepo.DepositRepositoryFacade
var _ portsrepo.DepositRepositoryFacade = (*PgxDepositRepository)(nil)

const depositSelectColumns = `
	d.deposit_id, d.name, d.company_id, d.deposit_date, d.currency_code, d.state,
	d.journal_id, d.bank_journal_id, d.move_id,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
`

func scanDeposit(row pgx.CollectableRow) (models.CheckDeposit, error) {
	var d models.CheckDeposit
	err := row.Scan(
		&d.DepositID,
		&d.Name,
		&d.CompanyID,
		&d.DepositDate,
		&d.CurrencyCode,
		&d.State,
		&d.JournalID,
		&d.BankJournalID,
		&d.MoveID,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

// SaveDeposit inserts a new deposit.
func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.CheckDeposit) error {
	modelDeposit := mapping.ToModelCheckDeposit(deposit)
	query := `
		INSERT INTO check_deposits (
			deposit_id, name, company_id, deposit_date, currency_code, state,
			journal_id, bank_journal_id, move_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDeposit.DepositID,
		modelDeposit.Name,
		modelDeposit.CompanyID,
		modelDeposit.DepositDate,
		modelDeposit.CurrencyCode,
		modelDeposit.State,
		modelDeposit.JournalID,
		modelDeposit.BankJournalID,
		modelDeposit.MoveID,
		modelDeposit.CreatedAt,
		modelDeposit.CreatedBy,
		modelDeposit.LastUpdatedAt,
		modelDeposit.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (company_id, name)
			return apperrors.NewConflictError("deposit reference " + deposit.Name + " already exists in company " + deposit.CompanyID)
		}
		return apperrors.NewAppError(500, "failed to save deposit "+deposit.DepositID, err)
	}
	return nil
}

// FindDepositByID retrieves a deposit by its ID, without aggregates.
func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.CheckDeposit, error) {
	query := `SELECT ` + depositSelectColumns + ` FROM check_deposits d WHERE d.deposit_id = $1;`

	rows, err := r.Pool.Query(ctx, query, depositID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deposit "+depositID, err)
	}
	defer rows.Close()

	modelDeposit, err := pgx.CollectOneRow(rows, scanDeposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan deposit %s: %w", depositID, err)
	}

	domainDeposit := mapping.ToDomainCheckDeposit(modelDeposit)
	return &domainDeposit, nil
}

// ListDepositsByCompany retrieves a page of deposits, newest deposit date first.
// The page token encodes the deposit date and creation time of the last row.
func (r *PgxDepositRepository) ListDepositsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.CheckDeposit, *string, error) {
	query := `SELECT ` + depositSelectColumns + ` FROM check_deposits d WHERE d.company_id = $1`
	args := []any{companyID}

	if nextToken != nil && *nextToken != "" {
		depositDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token")
		}
		query += ` AND (d.deposit_date, d.created_at) < ($2, $3)`
		args = append(args, depositDate, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY d.deposit_date DESC, d.created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra row to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query deposits for company "+companyID, err)
	}
	defer rows.Close()

	modelDeposits, err := pgx.CollectRows(rows, scanDeposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CheckDeposit{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to scan deposits: %w", err)
	}

	var newNextToken *string
	if len(modelDeposits) > limit {
		modelDeposits = modelDeposits[:limit]
		last := modelDeposits[limit-1]
		token := pagination.EncodeToken(last.DepositDate, last.CreatedAt)
		newNextToken = &token
	}

	deposits := make([]domain.CheckDeposit, len(modelDeposits))
	for i, m := range modelDeposits {
		deposits[i] = mapping.ToDomainCheckDeposit(m)
	}
	return deposits, newNextToken, nil
}

// GetDepositTotals aggregates the check lines attached to the given deposits:
// total debit, total amount in the line currency and line count, grouped by deposit.
func (r *PgxDepositRepository) GetDepositTotals(ctx context.Context, depositIDs []string) (map[string]portsrepo.DepositTotals, error) {
	if len(depositIDs) == 0 {
		return map[string]portsrepo.DepositTotals{}, nil
	}

	query := `
		SELECT l.check_deposit_id, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.amount_currency), 0), COUNT(*)
		FROM move_lines l
		WHERE l.check_deposit_id = ANY($1)
		GROUP BY l.check_deposit_id;
	`
	rows, err := r.Pool.Query(ctx, query, depositIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate deposit totals", err)
	}
	defer rows.Close()

	totals := make(map[string]portsrepo.DepositTotals)
	for rows.Next() {
		var depositID string
		var t portsrepo.DepositTotals
		if err := rows.Scan(&depositID, &t.Debit, &t.AmountCurrency, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan deposit totals: %w", err)
		}
		totals[depositID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposit totals: %w", err)
	}
	return totals, nil
}

// UpdateDeposit updates the mutable fields of a draft deposit.
func (r *PgxDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.CheckDeposit) error {
	modelDeposit := mapping.ToModelCheckDeposit(deposit)
	query := `
		UPDATE check_deposits
		SET deposit_date = $1, currency_code = $2, journal_id = $3, bank_journal_id = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE deposit_id = $7;
	`
	result, err := r.Pool.Exec(ctx, query,
		modelDeposit.DepositDate,
		modelDeposit.CurrencyCode,
		modelDeposit.JournalID,
		modelDeposit.BankJournalID,
		modelDeposit.LastUpdatedAt,
		modelDeposit.LastUpdatedBy,
		modelDeposit.DepositID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update deposit "+deposit.DepositID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("deposit " + deposit.DepositID + " not found")
	}
	return nil
}

// UpdateDepositState transitions the workflow state and the generated move link.
func (r *PgxDepositRepository) UpdateDepositState(ctx context.Context, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error {
	return r.updateDepositState(ctx, r.Pool, depositID, state, moveID, updatedByUserID, updatedAt)
}

// UpdateDepositStateTx is UpdateDepositState inside the caller's transaction.
func (r *PgxDepositRepository) UpdateDepositStateTx(ctx context.Context, tx pgx.Tx, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error {
	return r.updateDepositState(ctx, tx, depositID, state, moveID, updatedByUserID, updatedAt)
}

func (r *PgxDepositRepository) updateDepositState(ctx context.Context, db PgxDB, depositID string, state domain.DepositState, moveID *string, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE check_deposits
		SET state = $1, move_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE deposit_id = $5;
	`
	result, err := db.Exec(ctx, query, models.DepositState(state), moveID, updatedAt, updatedByUserID, depositID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update state of deposit "+depositID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("deposit " + depositID + " not found")
	}
	return nil
}

// DeleteDeposit removes a deposit row.
func (r *PgxDepositRepository) DeleteDeposit(ctx context.Context, depositID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM check_deposits WHERE deposit_id = $1;`, depositID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete deposit "+depositID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("deposit " + depositID + " not found")
	}
	return nil
}
