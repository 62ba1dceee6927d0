package mapping

import (
	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:         d.JournalID,
		CompanyID:         d.CompanyID,
		Name:              d.Name,
		Type:              models.JournalType(d.Type),
		BankAccountNumber: d.BankAccountNumber,
		CurrencyCode:      d.CurrencyCode,
		LockPostedEntries: d.LockPostedEntries,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal.
// Payment method lines are loaded separately by the repository.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:         m.JournalID,
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		Type:              domain.JournalType(m.Type),
		BankAccountNumber: m.BankAccountNumber,
		CurrencyCode:      m.CurrencyCode,
		LockPostedEntries: m.LockPostedEntries,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodLine converts a model PaymentMethodLine to its domain form
func ToDomainPaymentMethodLine(m models.PaymentMethodLine) domain.PaymentMethodLine {
	return domain.PaymentMethodLine{
		LineID:           m.LineID,
		JournalID:        m.JournalID,
		MethodCode:       m.MethodCode,
		PaymentAccountID: m.PaymentAccountID,
	}
}

// ToDomainPaymentMethodLineSlice converts a slice of model PaymentMethodLines
func ToDomainPaymentMethodLineSlice(ms []models.PaymentMethodLine) []domain.PaymentMethodLine {
	ds := make([]domain.PaymentMethodLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethodLine(m)
	}
	return ds
}
