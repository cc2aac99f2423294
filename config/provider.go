package config

import "log"

// ProviderConfig points at the generative backend that produces the
// product catalog and admin notifications.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

var Provider ProviderConfig

func InitProvider() {
	Provider = ProviderConfig{
		BaseURL: getEnv("PROVIDER_BASE_URL", "http://localhost:9090"),
		APIKey:  getEnv("PROVIDER_API_KEY", ""),
	}
	if Provider.APIKey == "" {
		log.Println("⚠️  PROVIDER_API_KEY not set, provider requests will be unauthenticated")
	}
	log.Println("✅ Provider configured:", Provider.BaseURL)
}
