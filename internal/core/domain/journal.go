package domain

// JournalType classifies a journal by the kind of entries it receives.
type JournalType string

const (
	JournalTypeBank    JournalType = "BANK"
	JournalTypeCash    JournalType = "CASH"
	JournalTypeSale    JournalType = "SALE"
	JournalTypeGeneral JournalType = "GENERAL"
)

// PaymentMethodManual is the method code of the manual (in-hand) inbound payment
// method; its payment account holds received checks until they are deposited.
const PaymentMethodManual = "manual"

// Journal represents an accounting journal owned by a company.
// A BANK journal without a bank account number holds received checks; a BANK
// journal with one is a deposit destination.
type Journal struct {
	JournalID         string              `json:"journalID"`         // Primary Key (e.g., UUID)
	CompanyID         string              `json:"companyID"`         // FK -> companies.company_id (Not Null)
	Name              string              `json:"name"`              // User-defined name
	Type              JournalType         `json:"type"`              // BANK, CASH, SALE, GENERAL
	BankAccountNumber *string             `json:"bankAccountNumber"` // Nullable; set only for destination bank journals
	CurrencyCode      *string             `json:"currencyCode"`      // Nullable; falls back to the company currency
	LockPostedEntries bool                `json:"lockPostedEntries"` // When set, posted moves in this journal cannot be unposted
	InboundMethods    []PaymentMethodLine `json:"inboundMethods"`    // Inbound payment method configuration
	IsActive          bool                `json:"isActive"`
	AuditFields
}

// PaymentMethodLine links a payment method code to the account its payments land on.
type PaymentMethodLine struct {
	LineID           string  `json:"lineID"`           // Primary Key (e.g., UUID)
	JournalID        string  `json:"journalID"`        // FK -> journals.journal_id (Not Null)
	MethodCode       string  `json:"methodCode"`       // e.g. "manual", "electronic"
	PaymentAccountID *string `json:"paymentAccountID"` // Nullable FK -> accounts.account_id
}

// ManualInboundAccountID returns the payment account of the journal's manual
// inbound payment method, or nil if none is configured.
func (j *Journal) ManualInboundAccountID() *string {
	for _, line := range j.InboundMethods {
		if line.MethodCode == PaymentMethodManual && line.PaymentAccountID != nil {
			return line.PaymentAccountID
		}
	}
	return nil
}
