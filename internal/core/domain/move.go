package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveState indicates the state of an accounting move (journal entry).
type MoveState string

const (
	MoveDraft  MoveState = "DRAFT"
	MovePosted MoveState = "POSTED"
)

// Move represents one accounting move: a balanced set of debit/credit lines
// recorded in a journal on a given date.
type Move struct {
	MoveID    string     `json:"moveID"`    // Primary Key (e.g., UUID)
	CompanyID string     `json:"companyID"` // FK -> companies.company_id (Not Null)
	JournalID string     `json:"journalID"` // FK -> journals.journal_id (Not Null)
	Date      time.Time  `json:"date"`      // Accounting date
	Ref       string     `json:"ref"`       // Free-form reference, e.g. "Check Deposit CD/2026/00012"
	State     MoveState  `json:"state"`     // DRAFT or POSTED
	Lines     []MoveLine `json:"lines,omitempty"`
	AuditFields
}

// MoveLine is a single debit or credit line of a Move. Received checks are move
// lines on the in-hand check account; a deposit links them via CheckDepositID.
type MoveLine struct {
	LineID         string          `json:"lineID"`         // Primary Key (e.g., UUID)
	MoveID         string          `json:"moveID"`         // FK -> moves.move_id (Not Null)
	CompanyID      string          `json:"companyID"`      // Denormalized from the move
	AccountID      string          `json:"accountID"`      // FK -> accounts.account_id (Not Null)
	PartnerID      *string         `json:"partnerID"`      // Nullable; drawer of the check
	Name           string          `json:"name"`           // Line label
	Ref            string          `json:"ref"`            // Check reference
	Debit          decimal.Decimal `json:"debit"`          // >= 0
	Credit         decimal.Decimal `json:"credit"`         // >= 0
	AmountCurrency decimal.Decimal `json:"amountCurrency"` // Signed amount in the line currency
	CurrencyCode   string          `json:"currencyCode"`   // Line currency (Not Null)
	Reconciled     bool            `json:"reconciled"`
	ReconcileID    *string         `json:"reconcileID"`    // Shared group id of mutually reconciled lines
	CheckDepositID *string         `json:"checkDepositID"` // Nullable back-link to the deposit holding this check
	ParentState    MoveState       `json:"parentState"`    // State of the owning move, denormalized
	AuditFields
}

// Balance returns debit minus credit.
func (l *MoveLine) Balance() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// IsBalanced reports whether the move's lines sum to zero (total debit equals
// total credit).
func (m *Move) IsBalanced() bool {
	total := decimal.Zero
	for _, line := range m.Lines {
		total = total.Add(line.Balance())
	}
	return total.IsZero()
}
