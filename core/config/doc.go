// Package config aggregates the application configuration.
//
// Configuration is assembled from three sources, in order of precedence:
//
//  1. Environment variables (STORAGE_ENDPOINT, SERVER_PORT, LOG_LEVEL, ...)
//  2. A .env file in the working directory, loaded via godotenv
//  3. Defaults declared on each partial config struct via `default:` tags
//
// Each subsystem (server, storage, log) owns its partial Config struct; this
// package binds them into a single tree through Viper, using reflection over
// the mapstructure tags to register defaults so AutomaticEnv picks up every
// key. There is no process-wide default instance: callers load their own
// Config and pass it down explicitly.
package config
