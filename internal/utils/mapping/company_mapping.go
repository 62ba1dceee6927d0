package mapping

import (
	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/finacct/check_deposit_app/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:                    d.CompanyID,
		Name:                         d.Name,
		CurrencyCode:                 d.CurrencyCode,
		OutstandingReceiptsAccountID: d.OutstandingReceiptsAccountID,
		IsActive:                     d.IsActive,
		AuditFields:                  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:                    m.CompanyID,
		Name:                         m.Name,
		CurrencyCode:                 m.CurrencyCode,
		OutstandingReceiptsAccountID: m.OutstandingReceiptsAccountID,
		IsActive:                     m.IsActive,
		AuditFields:                  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserCompany converts a model UserCompany to a domain UserCompany
func ToDomainUserCompany(m models.UserCompany) domain.UserCompany {
	return domain.UserCompany{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      domain.UserCompanyRole(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
