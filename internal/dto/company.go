package dto

import (
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
)

// --- Company DTOs ---

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	Name                         string  `json:"name" binding:"required"`
	CurrencyCode                 string  `json:"currencyCode" binding:"required,currencycode"`
	OutstandingReceiptsAccountID *string `json:"outstandingReceiptsAccountID"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID                    string    `json:"companyID"`
	Name                         string    `json:"name"`
	CurrencyCode                 string    `json:"currencyCode"`
	OutstandingReceiptsAccountID *string   `json:"outstandingReceiptsAccountID,omitempty"`
	IsActive                     bool      `json:"isActive"`
	CreatedAt                    time.Time `json:"createdAt"`
	CreatedBy                    string    `json:"createdBy"` // UserID
	LastUpdatedAt                time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy                string    `json:"lastUpdatedBy"` // UserID
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:                    c.CompanyID,
		Name:                         c.Name,
		CurrencyCode:                 c.CurrencyCode,
		OutstandingReceiptsAccountID: c.OutstandingReceiptsAccountID,
		IsActive:                     c.IsActive,
		CreatedAt:                    c.CreatedAt,
		CreatedBy:                    c.CreatedBy,
		LastUpdatedAt:                c.LastUpdatedAt,
		LastUpdatedBy:                c.LastUpdatedBy,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to DTO.
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	list := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: list}
}

// --- Company Membership DTOs ---

// AddMemberRequest defines data for adding a user to a company.
type AddMemberRequest struct {
	UserID string                 `json:"userID" binding:"required"`
	Role   domain.UserCompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}
