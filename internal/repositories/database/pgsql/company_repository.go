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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool PgxDB) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectColumns = `
	c.company_id, c.name, c.currency_code, c.outstanding_receipts_account_id, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
`

func scanCompany(row pgx.CollectableRow) (models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.CompanyID,
		&c.Name,
		&c.CurrencyCode,
		&c.OutstandingReceiptsAccountID,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCompany inserts a company and the creator's ADMIN membership in one transaction.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, creatorUserID string) error {
	modelCompany := mapping.ToModelCompany(company)

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	companyQuery := `
		INSERT INTO companies (
			company_id, name, currency_code, outstanding_receipts_account_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, companyQuery,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.CurrencyCode,
		modelCompany.OutstandingReceiptsAccountID,
		modelCompany.IsActive,
		modelCompany.CreatedAt,
		modelCompany.CreatedBy,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("company ID " + company.CompanyID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("currency code does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save company "+company.CompanyID, err)
	}

	membershipQuery := `
		INSERT INTO user_companies (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		creatorUserID,
		modelCompany.CompanyID,
		models.RoleAdmin,
		time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add creator membership for company "+company.CompanyID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companySelectColumns + ` FROM companies c WHERE c.company_id = $1;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query company "+companyID, err)
	}
	defer rows.Close()

	modelCompany, err := pgx.CollectOneRow(rows, scanCompany)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company %s: %w", companyID, err)
	}

	domainCompany := mapping.ToDomainCompany(modelCompany)
	return &domainCompany, nil
}

// ListCompaniesByUserID retrieves the active companies the user is a member of.
func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `
		SELECT ` + companySelectColumns + `
		FROM companies c
		JOIN user_companies uc ON c.company_id = uc.company_id
		WHERE uc.user_id = $1 AND uc.role != $2 AND c.is_active = true
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID, models.RoleRemoved)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies for user "+userID, err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, scanCompany)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	companies := make([]domain.Company, len(modelCompanies))
	for i, m := range modelCompanies {
		companies[i] = mapping.ToDomainCompany(m)
	}
	return companies, nil
}

// FindUserCompanyRole retrieves the membership of a user in a company.
func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	query := `
		SELECT uc.user_id, u.name AS user_name, uc.company_id, uc.role, uc.joined_at
		FROM user_companies uc
		JOIN users u ON uc.user_id = u.user_id
		WHERE uc.user_id = $1 AND uc.company_id = $2;
	`
	var uc domain.UserCompany
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(
		&uc.UserID,
		&uc.UserName,
		&uc.CompanyID,
		&uc.Role,
		&uc.JoinedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + userID + " is not a member of company " + companyID)
		}
		return nil, apperrors.NewAppError(500, "failed to find role of user "+userID+" in company "+companyID, err)
	}
	return &uc, nil
}

// AddUserToCompany inserts a membership or updates the role of an existing one.
func (r *PgxCompanyRepository) AddUserToCompany(ctx context.Context, membership domain.UserCompany) error {
	query := `
		INSERT INTO user_companies (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, company_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.CompanyID,
		membership.Role,
		membership.JoinedAt,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in company "+membership.CompanyID, err)
	}
	return nil
}
