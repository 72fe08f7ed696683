package crm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickfix/models"
)

func TestProcessLeadDefaults(t *testing.T) {
	raw := map[string]interface{}{
		"name":  "John Smith",
		"email": "john@example.com",
	}

	lead := ProcessLead(raw, "website")

	assert.Equal(t, "John Smith", lead.Name)
	assert.Equal(t, "john@example.com", lead.Email)
	assert.Equal(t, models.LeadTypeContact, lead.Type)
	assert.Equal(t, models.UrgencyNormal, lead.Urgency)
	assert.Equal(t, models.StatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)
	assert.Empty(t, lead.Message)
	assert.Equal(t, 20, lead.LeadScore) // email + normal urgency

	_, err := time.Parse(time.RFC3339, lead.CreatedAt)
	require.NoError(t, err, "createdAt must be ISO-8601")
}

func TestProcessLeadTypeEnum(t *testing.T) {
	for raw, want := range map[string]string{
		"booking": models.LeadTypeBooking,
		"contact": models.LeadTypeContact,
		"BOOKING": models.LeadTypeContact,
		"order":   models.LeadTypeContact,
		"":        models.LeadTypeContact,
	} {
		lead := ProcessLead(map[string]interface{}{"type": raw}, "test-script")
		assert.Equal(t, want, lead.Type, "raw type %q", raw)
	}
}

func TestProcessLeadUrgencyEnum(t *testing.T) {
	for raw, want := range map[string]string{
		"emergency": models.UrgencyEmergency,
		"same-day":  models.UrgencySameDay,
		"normal":    models.UrgencyNormal,
		"urgent":    models.UrgencyNormal,
		"ASAP":      models.UrgencyNormal,
		"":          models.UrgencyNormal,
	} {
		lead := ProcessLead(map[string]interface{}{"urgency": raw}, "test-script")
		assert.Equal(t, want, lead.Urgency, "raw urgency %q", raw)
	}
}

func TestProcessLeadCoercesNonStrings(t *testing.T) {
	raw := map[string]interface{}{
		"name":    "Test",
		"email":   "t@example.com",
		"phone":   float64(7045550123), // JSON numbers decode as float64
		"message": true,
		"urgency": float64(5),
		"address": nil,
	}

	lead := ProcessLead(raw, "api")

	assert.Equal(t, "7045550123", lead.Phone)
	assert.Equal(t, "true", lead.Message)
	assert.Equal(t, models.UrgencyNormal, lead.Urgency)
	assert.Empty(t, lead.Address)
}

func TestProcessLeadToleratesMissingContactFields(t *testing.T) {
	lead := ProcessLead(map[string]interface{}{}, "website")

	assert.Empty(t, lead.Name)
	assert.Empty(t, lead.Email)
	assert.Equal(t, models.StatusNew, lead.Status)
	assert.GreaterOrEqual(t, lead.LeadScore, 0)
	assert.LessOrEqual(t, lead.LeadScore, 100)
}

func TestProcessLeadIdempotent(t *testing.T) {
	fixed := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	raw := map[string]interface{}{
		"name":          "Sarah Wilson",
		"email":         "sarah@example.com",
		"phone":         "704-555-0456",
		"service":       "electrical",
		"type":          "booking",
		"urgency":       "same-day",
		"address":       "456 Oak Ave",
		"preferredDate": "2025-01-22",
		"preferredTime": "2:00 PM",
	}

	first := ProcessLead(raw, "website")
	second := ProcessLead(raw, "website")

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-01-15T10:30:00Z", first.CreatedAt)
}
