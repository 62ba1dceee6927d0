package models

// JournalType classifies a journal by the kind of entries it receives.
type JournalType string

const (
	JournalTypeBank    JournalType = "BANK"
	JournalTypeCash    JournalType = "CASH"
	JournalTypeSale    JournalType = "SALE"
	JournalTypeGeneral JournalType = "GENERAL"
)

// Journal represents an accounting journal row.
type Journal struct {
	JournalID         string      `db:"journal_id"`
	CompanyID         string      `db:"company_id"`
	Name              string      `db:"name"`
	Type              JournalType `db:"type"`
	BankAccountNumber *string     `db:"bank_account_number"` // Nullable
	CurrencyCode      *string     `db:"currency_code"`       // Nullable
	LockPostedEntries bool        `db:"lock_posted_entries"`
	IsActive          bool        `db:"is_active"`
	AuditFields
}

// PaymentMethodLine represents one inbound payment method configuration row of a journal.
type PaymentMethodLine struct {
	LineID           string  `db:"line_id"`
	JournalID        string  `db:"journal_id"`
	MethodCode       string  `db:"method_code"`
	PaymentAccountID *string `db:"payment_account_id"` // Nullable
}
