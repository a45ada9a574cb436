// Package constants names the pluggable providers selectable in configuration.
package constants

// Event publisher providers.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Toast notifier providers.
const (
	NotifierProviderLog      = "log"
	NotifierProviderFirebase = "firebase"
)

// EnvProduction disables demo conveniences such as seeding.
const EnvProduction = "production"
