package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five chart-of-accounts types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a financial account in the chart of accounts.
// (tenantID, companyID, code) is unique; the parent reference forms a tree.
type Account struct {
	AccountID       string      `json:"accountID"` // Primary Key (UUID)
	TenantID        string      `json:"tenantID"`
	CompanyID       string      `json:"companyID"`
	Code            string      `json:"code"` // Unique per tenant+company
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID"` // Nullable, self-referencing
	Description     string      `json:"description"`
	CashEquivalent  bool        `json:"cashEquivalent"` // Feeds the cash-flow projection
	IsActive        bool        `json:"isActive"`
	AuditFields
}
