package mapping

import (
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/ledgerline/ledger_backend/internal/models"
)

// ToModelEntry converts a domain JournalEntry to its persistence model.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:      d.EntryID,
		TenantID:     d.TenantID,
		CompanyID:    d.CompanyID,
		EntryDate:    d.EntryDate,
		Memo:         d.Memo,
		CurrencyCode: d.CurrencyCode,
		Status:       models.EntryStatus(d.Status),
		PostedAt:     d.PostedAt,
		VoidedAt:     d.VoidedAt,
		AuditFields:  auditToModel(d.AuditFields),
	}
	if d.Reference != "" {
		m.Reference = &d.Reference
	}
	if d.PostedBy != "" {
		m.PostedBy = &d.PostedBy
	}
	if d.VoidedBy != "" {
		m.VoidedBy = &d.VoidedBy
	}
	if d.VoidReason != "" {
		m.VoidReason = &d.VoidReason
	}
	return m
}

// ToDomainEntry converts a model JournalEntry to its domain shape.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:      m.EntryID,
		TenantID:     m.TenantID,
		CompanyID:    m.CompanyID,
		EntryDate:    m.EntryDate,
		Memo:         m.Memo,
		CurrencyCode: m.CurrencyCode,
		Status:       domain.EntryStatus(m.Status),
		PostedAt:     m.PostedAt,
		VoidedAt:     m.VoidedAt,
		AuditFields:  auditToDomain(m.AuditFields),
	}
	if m.Reference != nil {
		d.Reference = *m.Reference
	}
	if m.PostedBy != nil {
		d.PostedBy = *m.PostedBy
	}
	if m.VoidedBy != nil {
		d.VoidedBy = *m.VoidedBy
	}
	if m.VoidReason != nil {
		d.VoidReason = *m.VoidReason
	}
	return d
}

// ToModelLine converts a domain JournalLine to its persistence model.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Memo:        d.Memo,
		Position:    d.Position,
		AuditFields: auditToModel(d.AuditFields),
	}
}

// ToDomainLine converts a model JournalLine to its domain shape.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Memo:        m.Memo,
		Position:    m.Position,
		AuditFields: auditToDomain(m.AuditFields),
	}
}

// ToDomainLineSlice converts a slice of model lines to domain lines.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLine(m)
	}
	return ds
}

// Audit fields round-trip between the domain and model shapes unchanged.

func auditToModel(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

func auditToDomain(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
