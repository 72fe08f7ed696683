package models

// Lead types. Anything that is not exactly "booking" normalizes to "contact".
const (
	LeadTypeBooking = "booking"
	LeadTypeContact = "contact"
)

// Urgency levels. Anything outside same-day/emergency normalizes to "normal".
const (
	UrgencyNormal    = "normal"
	UrgencySameDay   = "same-day"
	UrgencyEmergency = "emergency"
)

// Pipeline statuses used by the CRM dashboard. A lead is always created as
// StatusNew; the rest are reachable only through status updates.
const (
	StatusNew         = "new"
	StatusContacted   = "contacted"
	StatusQualified   = "qualified"
	StatusProposal    = "proposal"
	StatusNegotiation = "negotiation"
	StatusClosedWon   = "closed-won"
	StatusClosedLost  = "closed-lost"
)

// ValidStatuses lists every pipeline status accepted on update.
var ValidStatuses = []string{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusProposal,
	StatusNegotiation,
	StatusClosedWon,
	StatusClosedLost,
}

// IsValidStatus reports whether s is a known pipeline status.
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Lead is a normalized service request from a prospective customer. Fields
// are fixed at normalization time; only Status changes afterwards, and only
// through the dashboard API.
type Lead struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"not null;index" json:"email"`
	Phone          string `json:"phone,omitempty"`
	Service        string `gorm:"index" json:"service,omitempty"`
	Message        string `gorm:"type:text" json:"message"`
	Type           string `json:"type"`
	Address        string `json:"address,omitempty"`
	PreferredDate  string `json:"preferredDate,omitempty"`
	PreferredTime  string `json:"preferredTime,omitempty"`
	Urgency        string `json:"urgency"`
	Source         string `gorm:"index" json:"source"`
	Status         string `gorm:"index" json:"status"`
	CreatedAt      string `json:"createdAt"`
	LeadScore      int    `json:"leadScore"`
	EstimatedValue int    `json:"estimatedValue,omitempty"`
}
