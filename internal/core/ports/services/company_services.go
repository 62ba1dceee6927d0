package services

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company the user is a member of.
	GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error)

	// ListUserCompanies retrieves the companies the user is a member of.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)

	// ListAccounts retrieves the active accounts of a company.
	ListAccounts(ctx context.Context, companyID string, requestingUserID string) ([]domain.Account, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany creates a company with the creator as ADMIN member.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// AddMember adds a user to a company with the given role.
	AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, requestingUserID string) error

	// CreateAccount creates a general-ledger account in the company.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, requestingUserID string) (*domain.Account, error)
}

// CompanyAuthorizerSvc checks membership-based permissions.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a company.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
