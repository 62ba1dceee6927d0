package domain

// Currency is a currency that deposits, journals and move lines can be
// denominated in. Codes follow ISO 4217.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // primary key, e.g. "EUR"
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
