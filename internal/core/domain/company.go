package domain

import "time"

// Company represents an owning company, the isolation boundary for journals,
// accounts and check deposits.
type Company struct {
	CompanyID                    string  `json:"companyID"`                    // Primary Key (e.g., UUID)
	Name                         string  `json:"name"`                         // Legal name of the company
	CurrencyCode                 string  `json:"currencyCode"`                 // Company (functional) currency (Not Null)
	OutstandingReceiptsAccountID *string `json:"outstandingReceiptsAccountID"` // Fallback counterpart account for inbound payments
	IsActive                     bool    `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED" // For users who have been removed from the company
)

// UserCompany represents the membership of a User in a Company.
type UserCompany struct {
	UserID    string          `json:"userID"`    // FK -> users.user_id
	UserName  string          `json:"userName"`  // Name of the user
	CompanyID string          `json:"companyID"` // FK -> companies.company_id
	Role      UserCompanyRole `json:"role"`      // Role of the user in this specific company
	JoinedAt  time.Time       `json:"joinedAt"`
}
