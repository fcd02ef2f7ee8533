package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port        string
	StoreDriver string // sqlite, postgres or memory
	StorePath   string // sqlite database file
	DatabaseURL string // postgres connection string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
