package crm

import (
	"fmt"
	"strconv"
	"time"

	"quickfix/models"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// ProcessLead turns a raw form submission into a canonical, scored Lead.
// Every field is coerced to a string; missing or nil values become empty
// strings rather than errors. Validation of name/email is the intake
// handler's job, not ours. The type and urgency enums collapse to their
// defaults for any unrecognized value.
func ProcessLead(raw map[string]interface{}, source string) models.Lead {
	lead := models.Lead{
		Name:          stringField(raw, "name"),
		Email:         stringField(raw, "email"),
		Phone:         stringField(raw, "phone"),
		Service:       stringField(raw, "service"),
		Message:       stringField(raw, "message"),
		Type:          models.LeadTypeContact,
		Address:       stringField(raw, "address"),
		PreferredDate: stringField(raw, "preferredDate"),
		PreferredTime: stringField(raw, "preferredTime"),
		Urgency:       models.UrgencyNormal,
		Source:        source,
		Status:        models.StatusNew,
		CreatedAt:     timeNow().UTC().Format(time.RFC3339),
	}

	if stringField(raw, "type") == models.LeadTypeBooking {
		lead.Type = models.LeadTypeBooking
	}

	switch urgency := stringField(raw, "urgency"); urgency {
	case models.UrgencyEmergency, models.UrgencySameDay:
		lead.Urgency = urgency
	}

	lead.LeadScore = CalculateLeadScore(&lead)
	return lead
}

// stringField reads a raw submission value the way a form field would:
// absent and nil stay empty, non-string values render with %v.
func stringField(raw map[string]interface{}, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; render them the way the form
		// would have sent them, not in scientific notation.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
