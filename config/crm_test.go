package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCRMEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{"CRM_PROVIDER", "CRM_API_URL", "CRM_API_KEY", "CRM_DATABASE", "CRM_USERNAME", "CRM_PASSWORD"} {
		t.Setenv(key, env[key])
	}
}

func TestLoadCRMConfigMissingProvider(t *testing.T) {
	setCRMEnv(t, map[string]string{"CRM_API_URL": "https://crm.example.com"})
	assert.Nil(t, LoadCRMConfig())
}

func TestLoadCRMConfigMissingURL(t *testing.T) {
	setCRMEnv(t, map[string]string{"CRM_PROVIDER": "espocrm", "CRM_USERNAME": "u", "CRM_PASSWORD": "p"})
	assert.Nil(t, LoadCRMConfig())
}

func TestLoadCRMConfigEspoRequiresBothCredentials(t *testing.T) {
	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "espocrm",
		"CRM_API_URL":  "https://espo.example.com",
		"CRM_PASSWORD": "p",
	})
	assert.Nil(t, LoadCRMConfig(), "missing username must reject the config")

	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "espocrm",
		"CRM_API_URL":  "https://espo.example.com",
		"CRM_USERNAME": "admin",
	})
	assert.Nil(t, LoadCRMConfig(), "missing password must reject the config")

	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "espocrm",
		"CRM_API_URL":  "https://espo.example.com",
		"CRM_USERNAME": "admin",
		"CRM_PASSWORD": "secret",
	})
	cfg := LoadCRMConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, CRMProviderEspoCRM, cfg.Provider)
	assert.Empty(t, cfg.APIKey, "espocrm does not need an API key")
}

func TestLoadCRMConfigAirtableRequiresAPIKey(t *testing.T) {
	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "airtable",
		"CRM_API_URL":  "https://api.airtable.com",
		"CRM_DATABASE": "base-123",
	})
	assert.Nil(t, LoadCRMConfig())

	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "airtable",
		"CRM_API_URL":  "https://api.airtable.com",
		"CRM_API_KEY":  "key-123",
		"CRM_DATABASE": "base-123",
	})
	cfg := LoadCRMConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "base-123", cfg.Database)
}

func TestLoadCRMConfigHubSpotRequiresAPIKey(t *testing.T) {
	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "hubspot",
		"CRM_API_URL":  "https://api.hubapi.com",
	})
	assert.Nil(t, LoadCRMConfig())
}

func TestLoadCRMConfigUnknownProviderPassesGenericCheck(t *testing.T) {
	// The loader only enforces provider+url for providers it has no specific
	// rule for; the dispatcher fails closed on them later.
	setCRMEnv(t, map[string]string{
		"CRM_PROVIDER": "pipedrive",
		"CRM_API_URL":  "https://api.pipedrive.com",
		"CRM_API_KEY":  "k",
	})
	cfg := LoadCRMConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "pipedrive", cfg.Provider)
}
