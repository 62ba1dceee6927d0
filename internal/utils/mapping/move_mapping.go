package mapping

import (
	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/models"
)

// ToModelMove converts a domain Move to a model Move
func ToModelMove(d domain.Move) models.Move {
	return models.Move{
		MoveID:      d.MoveID,
		CompanyID:   d.CompanyID,
		JournalID:   d.JournalID,
		Date:        d.Date,
		Ref:         d.Ref,
		State:       models.MoveState(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMove converts a model Move to a domain Move.
// Lines are loaded separately by the repository.
func ToDomainMove(m models.Move) domain.Move {
	return domain.Move{
		MoveID:      m.MoveID,
		CompanyID:   m.CompanyID,
		JournalID:   m.JournalID,
		Date:        m.Date,
		Ref:         m.Ref,
		State:       domain.MoveState(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMoveLine converts a domain MoveLine to a model MoveLine
func ToModelMoveLine(d domain.MoveLine) models.MoveLine {
	return models.MoveLine{
		LineID:         d.LineID,
		MoveID:         d.MoveID,
		CompanyID:      d.CompanyID,
		AccountID:      d.AccountID,
		PartnerID:      d.PartnerID,
		Name:           d.Name,
		Ref:            d.Ref,
		Debit:          d.Debit,
		Credit:         d.Credit,
		AmountCurrency: d.AmountCurrency,
		CurrencyCode:   d.CurrencyCode,
		Reconciled:     d.Reconciled,
		ReconcileID:    d.ReconcileID,
		CheckDepositID: d.CheckDepositID,
		ParentState:    models.MoveState(d.ParentState),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMoveLine converts a model MoveLine to a domain MoveLine
func ToDomainMoveLine(m models.MoveLine) domain.MoveLine {
	return domain.MoveLine{
		LineID:         m.LineID,
		MoveID:         m.MoveID,
		CompanyID:      m.CompanyID,
		AccountID:      m.AccountID,
		PartnerID:      m.PartnerID,
		Name:           m.Name,
		Ref:            m.Ref,
		Debit:          m.Debit,
		Credit:         m.Credit,
		AmountCurrency: m.AmountCurrency,
		CurrencyCode:   m.CurrencyCode,
		Reconciled:     m.Reconciled,
		ReconcileID:    m.ReconcileID,
		CheckDepositID: m.CheckDepositID,
		ParentState:    domain.MoveState(m.ParentState),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMoveLineSlice converts a slice of model MoveLines to domain MoveLines
func ToDomainMoveLineSlice(ms []models.MoveLine) []domain.MoveLine {
	ds := make([]domain.MoveLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoveLine(m)
	}
	return ds
}
