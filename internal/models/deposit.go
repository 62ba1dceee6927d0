package models

import "time"

// DepositState indicates the workflow state of a check deposit.
type DepositState string

const (
	DepositDraft DepositState = "DRAFT"
	DepositDone  DepositState = "DONE"
)

// CheckDeposit represents a check deposit row.
// (company_id, name) is unique.
type CheckDeposit struct {
	DepositID     string       `db:"deposit_id"`
	Name          string       `db:"name"`
	CompanyID     string       `db:"company_id"`
	DepositDate   time.Time    `db:"deposit_date"`
	CurrencyCode  string       `db:"currency_code"`
	State         DepositState `db:"state"`
	JournalID     string       `db:"journal_id"`
	BankJournalID string       `db:"bank_journal_id"`
	MoveID        *string      `db:"move_id"` // Nullable until validated
	AuditFields
}
