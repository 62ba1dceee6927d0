package models

// Sequence represents one numbering sequence row.
// (code, company_id, year) is unique; deposits draw their reference from it.
type Sequence struct {
	SequenceID string `db:"sequence_id"`
	Code       string `db:"code"`
	CompanyID  string `db:"company_id"`
	Year       int    `db:"year"`
	Prefix     string `db:"prefix"`  // e.g. "CD"
	Padding    int    `db:"padding"` // Zero-pad width of the number part
	NextNumber int64  `db:"next_number"`
}
