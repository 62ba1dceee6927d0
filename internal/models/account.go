package models

// Account represents a general-ledger account row.
type Account struct {
	AccountID string `db:"account_id"`
	CompanyID string `db:"company_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}
