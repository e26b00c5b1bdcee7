package entity

// Secret ids and environment fallbacks for the Garmin account.
const (
	SecretGarminEmail    = "garmin-email"
	SecretGarminPassword = "garmin-password"
	EnvGarminEmail       = "GARMIN_EMAIL"
	EnvGarminPassword    = "GARMIN_PASSWORD"
)

// Environment variables naming the cloud project, in lookup order.
const (
	EnvGoogleCloudProject = "GOOGLE_CLOUD_PROJECT"
	EnvGCPProject         = "GCP_PROJECT"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DateLayout is the ISO-8601 calendar date format used by Garmin Connect.
const DateLayout = "2006-01-02"
