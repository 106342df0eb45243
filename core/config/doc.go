// Package config provides configuration management for mnp-alarm.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Lookup: HLR endpoint template, credentials, concurrency and timeout
//   - Alert: SMS gateway endpoint template, credentials and destination
//   - Reference: where the reference set lives (file, storage or database)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL/SQLite connection details
//   - Log: Logging level and format
//
// Nested keys map to upper-case environment variables joined by underscores,
// so lookup.url is read from LOOKUP_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
