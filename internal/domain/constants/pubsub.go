// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in configuration
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Names reported as the failing service in THIRD_PARTY_ERROR and EXTERNAL_API_ERROR details
const (
	ServiceLocalPubSub  = "local-pubsub"
	ServiceGooglePubSub = "google-pubsub"
)
