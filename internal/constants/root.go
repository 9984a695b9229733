package constants

import "time"

const (
	AppName           = "culturepulse"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/culturepulse"
	DefaultConfigPath = "~/.config/culturepulse/config.yaml"
	DefaultDBPath     = "~/.config/culturepulse/sheet.db"
	LogFileName       = "culturepulse.log"

	// Keyring users under the AppName service
	KeyringAPIKeyUser     = "gemini-api-key"
	KeyringConnectionUser = "database-connection"

	// Environment variables
	EnvEndpoint       = "CULTUREPULSE_ENDPOINT"
	EnvModel          = "CULTUREPULSE_MODEL"
	EnvDebug          = "CULTUREPULSE_DEBUG"
	EnvAPIKey         = "GEMINI_API_KEY"
	EnvAPIKeyFallback = "API_KEY"
	EnvDBConnection   = "CULTUREPULSE_DB_CONNECTION"

	DefaultModel = "gemini-3-flash-preview"

	// Self-hosted sheet server
	DefaultServerAddr    = ":8080"
	DefaultRatePerMinute = 60
	DefaultRateBurst     = 10
	MaxSubmissionBytes   = 64 << 10
	ServerShutdownGrace  = 5 * time.Second

	// DateFormat is the format used for feedback dates in the feed and CLI output
	DateFormat = "2006-01-02"
)
