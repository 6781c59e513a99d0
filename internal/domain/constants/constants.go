// Package constants defines values shared between configuration and wiring.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used in production.
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
	PubSubProviderInProcess = "inprocess"
)

// Payment gateway providers
const (
	PaymentProviderHTTP    = "http"
	PaymentProviderSandbox = "sandbox"
)
