package dto

import (
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoveLineResponse defines the data returned for a single move line.
type MoveLineResponse struct {
	LineID         string          `json:"lineID"`
	MoveID         string          `json:"moveID"`
	AccountID      string          `json:"accountID"`
	PartnerID      *string         `json:"partnerID,omitempty"`
	Name           string          `json:"name"`
	Ref            string          `json:"ref"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	AmountCurrency decimal.Decimal `json:"amountCurrency"`
	CurrencyCode   string          `json:"currencyCode"`
	Reconciled     bool            `json:"reconciled"`
	CheckDepositID *string         `json:"checkDepositID,omitempty"`
}

// MoveResponse defines the data returned for a move and its lines.
type MoveResponse struct {
	MoveID    string             `json:"moveID"`
	CompanyID string             `json:"companyID"`
	JournalID string             `json:"journalID"`
	Date      time.Time          `json:"date"`
	Ref       string             `json:"ref"`
	State     domain.MoveState   `json:"state"`
	Lines     []MoveLineResponse `json:"lines"`
}

// ToMoveLineResponse converts a domain.MoveLine to MoveLineResponse DTO.
func ToMoveLineResponse(l *domain.MoveLine) MoveLineResponse {
	return MoveLineResponse{
		LineID:         l.LineID,
		MoveID:         l.MoveID,
		AccountID:      l.AccountID,
		PartnerID:      l.PartnerID,
		Name:           l.Name,
		Ref:            l.Ref,
		Debit:          l.Debit,
		Credit:         l.Credit,
		AmountCurrency: l.AmountCurrency,
		CurrencyCode:   l.CurrencyCode,
		Reconciled:     l.Reconciled,
		CheckDepositID: l.CheckDepositID,
	}
}

// ToMoveLineResponses converts a slice of domain.MoveLine to []MoveLineResponse.
func ToMoveLineResponses(lines []domain.MoveLine) []MoveLineResponse {
	res := make([]MoveLineResponse, len(lines))
	for i, l := range lines {
		res[i] = ToMoveLineResponse(&l)
	}
	return res
}

// ToMoveResponse converts a domain.Move to MoveResponse DTO.
func ToMoveResponse(m *domain.Move) MoveResponse {
	return MoveResponse{
		MoveID:    m.MoveID,
		CompanyID: m.CompanyID,
		JournalID: m.JournalID,
		Date:      m.Date,
		Ref:       m.Ref,
		State:     m.State,
		Lines:     ToMoveLineResponses(m.Lines),
	}
}
