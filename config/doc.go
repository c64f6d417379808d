// Package config loads the configuration of gogskit applications.
//
// It uses Viper to read a YAML file, a .env file loaded with godotenv and
// GOGS_* environment variables, in increasing order of precedence:
//
//	cfg, err := config.Load(config.WithConfigFile("gogsctl.yml"))
//
// Environment variable names map onto nested keys with underscores, so
// GOGS_API_TIMEOUT=10s sets api.timeout and GOGS_AUTH_TOKEN sets auth.token.
package config
