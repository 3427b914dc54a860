package mapping

import (
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/ledgerline/ledger_backend/internal/models"
)

// ToModelAccount converts a domain Account to its persistence model.
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:      d.AccountID,
		TenantID:       d.TenantID,
		CompanyID:      d.CompanyID,
		Code:           d.Code,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		Description:    d.Description,
		CashEquivalent: d.CashEquivalent,
		IsActive:       d.IsActive,
		AuditFields:    auditToModel(d.AuditFields),
	}
	if d.ParentAccountID != "" {
		m.ParentAccountID = &d.ParentAccountID
	}
	return m
}

// ToDomainAccount converts a model Account to its domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:      m.AccountID,
		TenantID:       m.TenantID,
		CompanyID:      m.CompanyID,
		Code:           m.Code,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		Description:    m.Description,
		CashEquivalent: m.CashEquivalent,
		IsActive:       m.IsActive,
		AuditFields:    auditToDomain(m.AuditFields),
	}
	if m.ParentAccountID != nil {
		d.ParentAccountID = *m.ParentAccountID
	}
	return d
}
