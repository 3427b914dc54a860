package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

func TestEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.EntryStatus
		to   domain.EntryStatus
		want bool
	}{
		{name: "draft to posted", from: domain.Draft, to: domain.Posted, want: true},
		{name: "posted to void", from: domain.Posted, to: domain.Void, want: true},
		{name: "draft to void skips posting", from: domain.Draft, to: domain.Void, want: false},
		{name: "posted back to draft", from: domain.Posted, to: domain.Draft, want: false},
		{name: "void is terminal", from: domain.Void, to: domain.Draft, want: false},
		{name: "void cannot repost", from: domain.Void, to: domain.Posted, want: false},
		{name: "no self transition", from: domain.Posted, to: domain.Posted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestValidAccountType(t *testing.T) {
	for _, at := range []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense} {
		assert.True(t, domain.ValidAccountType(at))
	}
	assert.False(t, domain.ValidAccountType("CASH"))
	assert.False(t, domain.ValidAccountType(""))
}

func TestScope_Matches(t *testing.T) {
	scope := domain.Scope{TenantID: "t1", CompanyID: "c1"}

	assert.True(t, scope.Matches("t1", "c1"))
	assert.False(t, scope.Matches("t2", "c1"), "different tenant never matches")
	assert.False(t, scope.Matches("t1", "c2"), "different company never matches")
}
