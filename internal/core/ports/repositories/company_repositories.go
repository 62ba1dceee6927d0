package repositories

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves the companies the user is a member of.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)

	// FindUserCompanyRole retrieves the membership of a user in a company.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindUserCompanyRole(ctx context.Context, userID string, companyID string) (*domain.UserCompany, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany inserts a company and the creator's ADMIN membership atomically.
	SaveCompany(ctx context.Context, company domain.Company, creatorUserID string) error

	// AddUserToCompany inserts or updates a membership row.
	AddUserToCompany(ctx context.Context, membership domain.UserCompany) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
