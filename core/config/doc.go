// Package config provides configuration management for the dashboard server.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: bind host/port (127.0.0.1:5001), debug flag, assets directory
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket settings
//   - Regulatory: upstream document source and latency simulation
//
// Every key maps to an environment variable named SECTION_KEY, e.g.
// SERVER_PORT=5002 or REGULATORY_DOCUMENT_SOURCE=storage.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address())
package config
