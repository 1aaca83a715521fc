// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally overlaid by a
// .env file during development. Defaults are declared as `default` struct
// tags on the partial config structs owned by each component (server,
// database, log, sources, artifact) and bound into Viper by reflection, so
// every key is reachable as an environment variable: the nested key
// "database.port" maps to DATABASE_PORT, "sources.rates_url" to
// SOURCES_RATES_URL, and so on.
package config
