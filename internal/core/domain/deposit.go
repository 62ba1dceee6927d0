package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositState indicates the workflow state of a check deposit.
type DepositState string

const (
	DepositDraft DepositState = "DRAFT"
	DepositDone  DepositState = "DONE"
)

// SequenceCodeDeposit is the sequence code used to number check deposits.
const SequenceCodeDeposit = "check.deposit"

// CheckDeposit is a batch of received checks being banked together. While the
// deposit is in draft, check move lines are attached to it; validation turns
// the batch into one posted accounting move and reconciles every check.
type CheckDeposit struct {
	DepositID     string       `json:"depositID"`     // Primary Key (e.g., UUID)
	Name          string       `json:"name"`          // Sequence-assigned reference, unique per company
	CompanyID     string       `json:"companyID"`     // FK -> companies.company_id (Not Null)
	DepositDate   time.Time    `json:"depositDate"`   // Date the checks are banked
	CurrencyCode  string       `json:"currencyCode"`  // Deposit currency (Not Null)
	State         DepositState `json:"state"`         // DRAFT or DONE
	JournalID     string       `json:"journalID"`     // Check journal holding the checks (Not Null)
	BankJournalID string       `json:"bankJournalID"` // Destination bank journal (Not Null)
	MoveID        *string      `json:"moveID"`        // Set once the deposit is validated
	AuditFields

	// Aggregates over the attached check lines, filled by the repository.
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CheckCount  int             `json:"checkCount"`
}
