package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveState indicates the state of an accounting move.
type MoveState string

const (
	MoveDraft  MoveState = "DRAFT"
	MovePosted MoveState = "POSTED"
)

// Move represents an accounting move (journal entry) row.
type Move struct {
	MoveID    string    `db:"move_id"`
	CompanyID string    `db:"company_id"`
	JournalID string    `db:"journal_id"`
	Date      time.Time `db:"date"`
	Ref       string    `db:"ref"`
	State     MoveState `db:"state"`
	AuditFields
}

// MoveLine represents a single debit/credit line row of a move.
type MoveLine struct {
	LineID         string          `db:"line_id"`
	MoveID         string          `db:"move_id"`
	CompanyID      string          `db:"company_id"`
	AccountID      string          `db:"account_id"`
	PartnerID      *string         `db:"partner_id"` // Nullable
	Name           string          `db:"name"`
	Ref            string          `db:"ref"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	AmountCurrency decimal.Decimal `db:"amount_currency"`
	CurrencyCode   string          `db:"currency_code"`
	Reconciled     bool            `db:"reconciled"`
	ReconcileID    *string         `db:"reconcile_id"`      // Nullable
	CheckDepositID *string         `db:"check_deposit_id"`  // Nullable back-link to check_deposits
	ParentState    MoveState       `db:"parent_state"`      // Denormalized state of the owning move
	AuditFields
}
