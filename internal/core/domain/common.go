package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Scope identifies the tenant and company a call operates on.
// Every repository and service call takes one explicitly; scope is never
// inferred from ambient state.
type Scope struct {
	TenantID  string `json:"tenantID"`
	CompanyID string `json:"companyID"`
}

// Matches reports whether loaded row ownership agrees with the caller's scope.
func (s Scope) Matches(tenantID, companyID string) bool {
	return s.TenantID == tenantID && s.CompanyID == companyID
}
