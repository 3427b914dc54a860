package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerLine is a single posted line in the general ledger projection,
// enriched with its entry's date and memo and a running per-account balance.
type GeneralLedgerLine struct {
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	EntryMemo   string          `json:"entryMemo"`
	EntryStatus EntryStatus     `json:"entryStatus"`
	LineID      string          `json:"lineID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Running debit-minus-credit total
}

// GeneralLedgerAccount groups ledger lines by account, ordered by entry date.
type GeneralLedgerAccount struct {
	AccountID   string              `json:"accountID"`
	AccountCode string              `json:"accountCode"`
	AccountName string              `json:"accountName"`
	AccountType AccountType         `json:"accountType"`
	Lines       []GeneralLedgerLine `json:"lines"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CashFlowRow is the per-account aggregation over cash-equivalent accounts.
type CashFlowRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Inflow      decimal.Decimal `json:"inflow"`  // Total debits to the cash account
	Outflow     decimal.Decimal `json:"outflow"` // Total credits to the cash account
}

// CashFlowReport is the cash-flow projection over a date range.
type CashFlowReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Rows         []CashFlowRow   `json:"rows"`
	NetChange    decimal.Decimal `json:"netChange"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	IncludeDraft bool            `json:"includeDraft"`
}
