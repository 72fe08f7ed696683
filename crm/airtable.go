package crm

import (
	"fmt"

	"quickfix/config"
	"quickfix/models"
	"quickfix/utils"
)

type airtableProvider struct{}

func (p *airtableProvider) Name() string { return config.CRMProviderAirtable }

// Send creates a single-record batch in the Leads table of the configured
// base. The column names are fixed by the Airtable base schema.
func (p *airtableProvider) Send(lead *models.Lead, cfg *config.CRMConfig) bool {
	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{
				"fields": map[string]interface{}{
					"Name":           lead.Name,
					"Email":          lead.Email,
					"Phone":          lead.Phone,
					"Service":        lead.Service,
					"Message":        lead.Message,
					"Type":           lead.Type,
					"Address":        lead.Address,
					"Preferred Date": lead.PreferredDate,
					"Preferred Time": lead.PreferredTime,
					"Urgency":        lead.Urgency,
					"Source":         lead.Source,
					"Status":         "New",
					"Lead Score":     lead.LeadScore,
					"Created":        lead.CreatedAt,
				},
			},
		},
	}

	url := fmt.Sprintf("%s/v0/%s/Leads", cfg.APIURL, cfg.Database)
	status, err := postJSON(url, "Bearer "+cfg.APIKey, payload)
	if err != nil {
		utils.LogError("airtable_integration", err, map[string]interface{}{
			"url": url,
		})
		return false
	}
	if !isSuccess(status) {
		utils.LogEvent("airtable_rejected", map[string]interface{}{
			"status": status,
		})
		return false
	}
	return true
}
