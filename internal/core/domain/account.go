package domain

// Account represents a general-ledger account within a company's chart of accounts.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (e.g., UUID)
	CompanyID string `json:"companyID"` // FK -> companies.company_id (Not Null)
	Code      string `json:"code"`      // Short code, e.g. "5112"
	Name      string `json:"name"`      // User-defined name
	IsActive  bool   `json:"isActive"`
	AuditFields
}
