package crm

import (
	"strings"

	"quickfix/config"
	"quickfix/models"
	"quickfix/utils"
)

type hubspotProvider struct{}

func (p *hubspotProvider) Name() string { return config.CRMProviderHubSpot }

// Send creates a contact through the HubSpot v3 objects API. The lead name
// is split on the first space into firstname/lastname; with nothing after
// the space, lastname falls back to the full name so neither property is
// ever empty.
func (p *hubspotProvider) Send(lead *models.Lead, cfg *config.CRMConfig) bool {
	firstname, lastname := splitName(lead.Name)

	payload := map[string]interface{}{
		"properties": map[string]interface{}{
			"firstname":      firstname,
			"lastname":       lastname,
			"email":          lead.Email,
			"phone":          lead.Phone,
			"hs_lead_status": "NEW",
			"lifecyclestage": "lead",
			"service_type":   lead.Service,
			"urgency_level":  lead.Urgency,
			"lead_source":    lead.Source,
		},
	}

	url := cfg.APIURL + "/crm/v3/objects/contacts"
	status, err := postJSON(url, "Bearer "+cfg.APIKey, payload)
	if err != nil {
		utils.LogError("hubspot_integration", err, map[string]interface{}{
			"url": url,
		})
		return false
	}
	if !isSuccess(status) {
		utils.LogEvent("hubspot_rejected", map[string]interface{}{
			"status": status,
		})
		return false
	}
	return true
}

func splitName(name string) (string, string) {
	parts := strings.SplitN(name, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return parts[0], name
	}
	return parts[0], parts[1]
}
