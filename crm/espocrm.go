package crm

import (
	"encoding/base64"

	"quickfix/config"
	"quickfix/models"
	"quickfix/utils"
)

type espoProvider struct{}

func (p *espoProvider) Name() string { return config.CRMProviderEspoCRM }

// Send creates a Lead entity through the EspoCRM REST API using Basic auth.
// serviceType, urgencyLevel, preferredDate, preferredTime, serviceAddress,
// leadScore and leadType are custom fields defined on the Espo Lead entity.
func (p *espoProvider) Send(lead *models.Lead, cfg *config.CRMConfig) bool {
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))

	payload := map[string]interface{}{
		"name":           lead.Name,
		"emailAddress":   lead.Email,
		"phoneNumber":    lead.Phone,
		"description":    lead.Message,
		"source":         lead.Source,
		"status":         "New",
		"assignedUserId": "1",
		"serviceType":    lead.Service,
		"urgencyLevel":   lead.Urgency,
		"preferredDate":  lead.PreferredDate,
		"preferredTime":  lead.PreferredTime,
		"serviceAddress": lead.Address,
		"leadScore":      lead.LeadScore,
		"leadType":       lead.Type,
		"createdAt":      lead.CreatedAt,
	}

	url := cfg.APIURL + "/api/v1/Lead"
	status, err := postJSON(url, "Basic "+auth, payload)
	if err != nil {
		utils.LogError("espocrm_integration", err, map[string]interface{}{
			"url": url,
		})
		return false
	}
	if !isSuccess(status) {
		utils.LogEvent("espocrm_rejected", map[string]interface{}{
			"status": status,
		})
		return false
	}
	return true
}
