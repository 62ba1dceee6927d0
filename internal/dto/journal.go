package dto

import (
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
)

// PaymentMethodLineRequest configures one inbound payment method on a journal.
type PaymentMethodLineRequest struct {
	MethodCode       string  `json:"methodCode" binding:"required"`
	PaymentAccountID *string `json:"paymentAccountID"`
}

// CreateJournalRequest defines the data needed to create a new journal.
type CreateJournalRequest struct {
	Name              string                     `json:"name" binding:"required"`
	Type              domain.JournalType         `json:"type" binding:"required,oneof=BANK CASH SALE GENERAL"`
	BankAccountNumber *string                    `json:"bankAccountNumber"`
	CurrencyCode      *string                    `json:"currencyCode"` // Optional, falls back to the company currency
	LockPostedEntries bool                       `json:"lockPostedEntries"`
	InboundMethods    []PaymentMethodLineRequest `json:"inboundMethods" binding:"dive"`
}

// PaymentMethodLineResponse defines the data returned for a payment method line.
type PaymentMethodLineResponse struct {
	LineID           string  `json:"lineID"`
	MethodCode       string  `json:"methodCode"`
	PaymentAccountID *string `json:"paymentAccountID,omitempty"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID         string                      `json:"journalID"`
	CompanyID         string                      `json:"companyID"`
	Name              string                      `json:"name"`
	Type              domain.JournalType          `json:"type"`
	BankAccountNumber *string                     `json:"bankAccountNumber,omitempty"`
	CurrencyCode      *string                     `json:"currencyCode,omitempty"`
	LockPostedEntries bool                        `json:"lockPostedEntries"`
	InboundMethods    []PaymentMethodLineResponse `json:"inboundMethods"`
	IsActive          bool                        `json:"isActive"`
	CreatedAt         time.Time                   `json:"createdAt"`
	CreatedBy         string                      `json:"createdBy"`
	LastUpdatedAt     time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy     string                      `json:"lastUpdatedBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	methods := make([]PaymentMethodLineResponse, len(j.InboundMethods))
	for i, m := range j.InboundMethods {
		methods[i] = PaymentMethodLineResponse{
			LineID:           m.LineID,
			MethodCode:       m.MethodCode,
			PaymentAccountID: m.PaymentAccountID,
		}
	}
	return JournalResponse{
		JournalID:         j.JournalID,
		CompanyID:         j.CompanyID,
		Name:              j.Name,
		Type:              j.Type,
		BankAccountNumber: j.BankAccountNumber,
		CurrencyCode:      j.CurrencyCode,
		LockPostedEntries: j.LockPostedEntries,
		InboundMethods:    methods,
		IsActive:          j.IsActive,
		CreatedAt:         j.CreatedAt,
		CreatedBy:         j.CreatedBy,
		LastUpdatedAt:     j.LastUpdatedAt,
		LastUpdatedBy:     j.LastUpdatedBy,
	}
}

// ToListJournalResponse converts a slice of domain.Journal to a slice of JournalResponse DTOs.
func ToListJournalResponse(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i, j := range journals {
		res[i] = ToJournalResponse(&j)
	}
	return res
}
