package mapping

import (
	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/models"
)

// ToModelCheckDeposit converts a domain CheckDeposit to a model CheckDeposit
func ToModelCheckDeposit(d domain.CheckDeposit) models.CheckDeposit {
	return models.CheckDeposit{
		DepositID:     d.DepositID,
		Name:          d.Name,
		CompanyID:     d.CompanyID,
		DepositDate:   d.DepositDate,
		CurrencyCode:  d.CurrencyCode,
		State:         models.DepositState(d.State),
		JournalID:     d.JournalID,
		BankJournalID: d.BankJournalID,
		MoveID:        d.MoveID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheckDeposit converts a model CheckDeposit to a domain CheckDeposit.
// TotalAmount and CheckCount are aggregates filled by the repository.
func ToDomainCheckDeposit(m models.CheckDeposit) domain.CheckDeposit {
	return domain.CheckDeposit{
		DepositID:     m.DepositID,
		Name:          m.Name,
		CompanyID:     m.CompanyID,
		DepositDate:   m.DepositDate,
		CurrencyCode:  m.CurrencyCode,
		State:         domain.DepositState(m.State),
		JournalID:     m.JournalID,
		BankJournalID: m.BankJournalID,
		MoveID:        m.MoveID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
