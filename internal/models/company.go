package models

import "time"

// UserCompanyRole defines the role a user holds within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// Company represents an owning company row.
type Company struct {
	CompanyID                    string  `db:"company_id"`
	Name                         string  `db:"name"`
	CurrencyCode                 string  `db:"currency_code"`
	OutstandingReceiptsAccountID *string `db:"outstanding_receipts_account_id"` // Nullable
	IsActive                     bool    `db:"is_active"`
	AuditFields
}

// UserCompany represents the membership of a user in a company.
type UserCompany struct {
	UserID    string          `db:"user_id"`
	CompanyID string          `db:"company_id"`
	Role      UserCompanyRole `db:"role"`
	JoinedAt  time.Time       `db:"joined_at"`
}
