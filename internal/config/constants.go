package config

const (
	// DefaultPort is where the desktop shell expects the backend.
	DefaultPort = 8190

	// DefaultDatabaseURL is suggested in error messages when DATABASE_URL is unset.
	DefaultDatabaseURL = "sqlite://./bookmarks.db"
)
