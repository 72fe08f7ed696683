package config

import "log"

// CRM provider names understood by the dispatcher. Other values (pipedrive,
// suitecrm, odoo, ...) may still pass the generic check below; the dispatcher
// fails closed on them.
const (
	CRMProviderAirtable = "airtable"
	CRMProviderHubSpot  = "hubspot"
	CRMProviderEspoCRM  = "espocrm"
)

// CRMConfig holds the outbound CRM integration settings. Read-only once
// loaded; every delivery receives the same record.
type CRMConfig struct {
	Provider string `json:"provider"`
	APIURL   string `json:"api_url"`
	APIKey   string `json:"-"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// LoadCRMConfig reads the CRM integration settings from the environment.
// It returns nil unless the provider-specific credential rule is satisfied:
// espocrm needs username+password, airtable and hubspot need an API key, and
// every provider needs a name and an API URL. A nil return means CRM delivery
// is skipped entirely, it never produces a partially-usable config.
func LoadCRMConfig() *CRMConfig {
	cfg := &CRMConfig{
		Provider: getEnv("CRM_PROVIDER", ""),
		APIURL:   getEnv("CRM_API_URL", ""),
		APIKey:   getEnv("CRM_API_KEY", ""),
		Database: getEnv("CRM_DATABASE", ""),
		Username: getEnv("CRM_USERNAME", ""),
		Password: getEnv("CRM_PASSWORD", ""),
	}

	if cfg.Provider == "" || cfg.APIURL == "" {
		return nil
	}

	switch cfg.Provider {
	case CRMProviderEspoCRM:
		if cfg.Username == "" || cfg.Password == "" {
			log.Printf("⚠️ CRM config for %s is missing username/password, skipping CRM integration", cfg.Provider)
			return nil
		}
	case CRMProviderAirtable, CRMProviderHubSpot:
		if cfg.APIKey == "" {
			log.Printf("⚠️ CRM config for %s is missing CRM_API_KEY, skipping CRM integration", cfg.Provider)
			return nil
		}
	}

	log.Printf("🔌 CRM integration enabled: provider=%s url=%s", cfg.Provider, cfg.APIURL)
	return cfg
}
