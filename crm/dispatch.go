package crm

import (
	"quickfix/config"
	"quickfix/models"
	"quickfix/utils"
)

// Provider delivers a lead to one external CRM system. Send reports the
// outcome as a boolean and never panics; transport problems are logged and
// come back as false.
type Provider interface {
	Name() string
	Send(lead *models.Lead, cfg *config.CRMConfig) bool
}

var providers = map[string]Provider{
	config.CRMProviderAirtable: &airtableProvider{},
	config.CRMProviderHubSpot:  &hubspotProvider{},
	config.CRMProviderEspoCRM:  &espoProvider{},
}

// SendToCRM delivers a scored lead to the configured provider. Exactly one
// adapter call per invocation, no retries. Unknown providers fail closed:
// the mismatch is logged and no network call happens.
func SendToCRM(lead *models.Lead, cfg *config.CRMConfig) bool {
	utils.LogEvent("crm_dispatch", map[string]interface{}{
		"provider": cfg.Provider,
		"name":     lead.Name,
		"email":    lead.Email,
		"service":  lead.Service,
		"score":    lead.LeadScore,
	})

	provider, ok := providers[cfg.Provider]
	if !ok {
		utils.LogEvent("crm_unknown_provider", map[string]interface{}{
			"provider": cfg.Provider,
		})
		return false
	}

	return provider.Send(lead, cfg)
}
