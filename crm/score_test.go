package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quickfix/models"
)

func TestCalculateLeadScore(t *testing.T) {
	tests := []struct {
		name string
		lead models.Lead
		want int
	}{
		{
			name: "high-value service with full contact info",
			lead: models.Lead{
				Name:    "John Smith",
				Email:   "john.smith@example.com",
				Phone:   "704-555-0123",
				Service: "plumbing",
				Urgency: models.UrgencyNormal,
				Address: "123 Main St",
			},
			want: 85, // 30 + 10 + 15 + 10 + 20
		},
		{
			name: "emergency electrical lands exactly on 100",
			lead: models.Lead{
				Name:    "Sarah Johnson",
				Email:   "s@x.com",
				Phone:   "x",
				Service: "electrical",
				Urgency: models.UrgencyEmergency,
				Address: "y",
			},
			want: 100, // 30 + 40 + 15 + 10 + 20
		},
		{
			name: "email only",
			lead: models.Lead{
				Name:    "Mike Wilson",
				Email:   "mike@x.com",
				Message: "question",
				Urgency: models.UrgencyNormal,
			},
			want: 20, // 10 + 10
		},
		{
			name: "same-day landscaping with phone",
			lead: models.Lead{
				Service: "landscaping",
				Urgency: models.UrgencySameDay,
				Phone:   "704-555-0456",
			},
			want: 55, // 15 + 25 + 15
		},
		{
			name: "sum above 100 is clamped",
			lead: models.Lead{
				Email:   "a@b.com",
				Phone:   "1",
				Service: "emergency",
				Urgency: models.UrgencyEmergency,
				Address: "z",
			},
			want: 100, // 30 + 40 + 15 + 10 + 20 = 115 -> 100
		},
		{
			name: "empty lead still earns the urgency default",
			lead: models.Lead{},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLeadScore(&tt.lead))
		})
	}
}

func TestCalculateLeadScoreStaysInRange(t *testing.T) {
	services := []string{"", "plumbing", "brakes", "electrical", "emergency", "landscaping", "hvac"}
	urgencies := []string{"", models.UrgencyNormal, models.UrgencySameDay, models.UrgencyEmergency}
	contacts := []models.Lead{
		{},
		{Phone: "1"},
		{Email: "a@b.com"},
		{Address: "x"},
		{Phone: "1", Email: "a@b.com", Address: "x"},
	}

	for _, service := range services {
		for _, urgency := range urgencies {
			for _, contact := range contacts {
				lead := contact
				lead.Service = service
				lead.Urgency = urgency

				score := CalculateLeadScore(&lead)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestCalculateLeadScoreDeterministic(t *testing.T) {
	lead := models.Lead{
		Email:   "repeat@example.com",
		Phone:   "704-555-0789",
		Service: "brakes",
		Urgency: models.UrgencySameDay,
	}

	first := CalculateLeadScore(&lead)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateLeadScore(&lead))
	}
}
