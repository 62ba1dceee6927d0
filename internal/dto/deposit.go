package dto

import (
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest defines the data needed to open a new check deposit.
// Journal fields are optional; each defaults when the company has exactly one
// candidate journal of the expected kind.
type CreateDepositRequest struct {
	DepositDate   *time.Time `json:"depositDate"`
	JournalID     *string    `json:"journalID"`     // Check journal (bank journal without a bank account)
	BankJournalID *string    `json:"bankJournalID"` // Destination journal (bank journal with a bank account)
	CurrencyCode  *string    `json:"currencyCode"`  // Defaults to the check journal currency, then the company currency
}

// UpdateDepositRequest defines the data allowed for updating a draft deposit.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateDepositRequest struct {
	DepositDate   *time.Time `json:"depositDate"`
	JournalID     *string    `json:"journalID"`
	BankJournalID *string    `json:"bankJournalID"`
	CurrencyCode  *string    `json:"currencyCode"`
}

// AttachChecksRequest carries the move line IDs to attach to or detach from a deposit.
type AttachChecksRequest struct {
	LineIDs []string `json:"lineIDs" binding:"required,min=1"`
}

// ListDepositsParams defines query parameters for listing deposits.
type ListDepositsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// DepositResponse defines the data returned for a check deposit.
type DepositResponse struct {
	DepositID     string              `json:"depositID"`
	Name          string              `json:"name"`
	CompanyID     string              `json:"companyID"`
	DepositDate   time.Time           `json:"depositDate"`
	CurrencyCode  string              `json:"currencyCode"`
	State         domain.DepositState `json:"state"`
	JournalID     string              `json:"journalID"`
	BankJournalID string              `json:"bankJournalID"`
	MoveID        *string             `json:"moveID,omitempty"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	CheckCount    int                 `json:"checkCount"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ToDepositResponse converts a domain.CheckDeposit to DepositResponse DTO.
func ToDepositResponse(d *domain.CheckDeposit) DepositResponse {
	return DepositResponse{
		DepositID:     d.DepositID,
		Name:          d.Name,
		CompanyID:     d.CompanyID,
		DepositDate:   d.DepositDate,
		CurrencyCode:  d.CurrencyCode,
		State:         d.State,
		JournalID:     d.JournalID,
		BankJournalID: d.BankJournalID,
		MoveID:        d.MoveID,
		TotalAmount:   d.TotalAmount,
		CheckCount:    d.CheckCount,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// GetDepositResponse combines a deposit with its attached check lines.
type GetDepositResponse struct {
	Deposit DepositResponse    `json:"deposit"`
	Checks  []MoveLineResponse `json:"checks"`
}

// ListDepositsResponse wraps a page of deposits.
type ListDepositsResponse struct {
	Deposits  []DepositResponse `json:"deposits"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListDepositsResponse converts a page of domain.CheckDeposit to DTO.
func ToListDepositsResponse(deposits []domain.CheckDeposit, nextToken *string) ListDepositsResponse {
	list := make([]DepositResponse, len(deposits))
	for i, d := range deposits {
		list[i] = ToDepositResponse(&d)
	}
	return ListDepositsResponse{Deposits: list, NextToken: nextToken}
}

// GetAllChecksResponse reports how many pending checks were attached.
type GetAllChecksResponse struct {
	Attached int `json:"attached"`
}

// DepositSlipRow is one check on the printed deposit slip.
type DepositSlipRow struct {
	Date         time.Time       `json:"date"`
	Label        string          `json:"label"`
	Ref          string          `json:"ref"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// DepositSlip is the printable summary handed to the bank with the checks.
type DepositSlip struct {
	DepositName   string           `json:"depositName"`
	CompanyName   string           `json:"companyName"`
	DepositDate   time.Time        `json:"depositDate"`
	BankJournal   string           `json:"bankJournal"`
	BankAccount   *string          `json:"bankAccount,omitempty"`
	CurrencyCode  string           `json:"currencyCode"`
	State         string           `json:"state"`
	Rows          []DepositSlipRow `json:"rows"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	NumberOfRows  int              `json:"numberOfRows"`
	GeneratedAt   time.Time        `json:"generatedAt"`
	GeneratedByID string           `json:"generatedByID"`
}
