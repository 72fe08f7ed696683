package crm

import "quickfix/models"

// highValueServices earn the larger service bonus. Dashboard totals and the
// CRM records already created depend on this exact set and the point values
// below, so changes here reprice every historical comparison.
var highValueServices = map[string]bool{
	"emergency":  true,
	"brakes":     true,
	"electrical": true,
	"plumbing":   true,
}

// CalculateLeadScore computes the 0-100 priority score for a lead from
// service type, urgency and contact-info completeness. Purely additive,
// clamped at 100.
func CalculateLeadScore(lead *models.Lead) int {
	score := 0

	if lead.Service != "" {
		if highValueServices[lead.Service] {
			score += 30
		} else {
			score += 15
		}
	}

	switch lead.Urgency {
	case models.UrgencyEmergency:
		score += 40
	case models.UrgencySameDay:
		score += 25
	default:
		score += 10
	}

	if lead.Phone != "" {
		score += 15
	}
	if lead.Email != "" {
		score += 10
	}
	if lead.Address != "" {
		score += 20
	}

	if score > 100 {
		return 100
	}
	return score
}
