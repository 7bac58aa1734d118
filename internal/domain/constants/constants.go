// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PlaceholderYouTubeAPIKey is the sample key shipped in example configs. It counts as not configured.
const PlaceholderYouTubeAPIKey = "your-youtube-api-key-here"

// Notification metadata values.
const (
	NotificationTypeTest   = "test"
	NotificationTypeQueued = "queued"
)
