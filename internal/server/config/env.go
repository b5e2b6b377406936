package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "VAULT"
	envFile   = ".env"
)

// loadDotEnv reads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// parseEnv overlays VAULT_* environment variables (and a local .env file)
// onto config, e.g. VAULT_DATABASE_DSN or VAULT_ATOMIC_IMPORT=false.
func parseEnv(config *Config) {
	if err := loadDotEnv(envFile); err != nil {
		panic(err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	strs := map[string]*string{
		"http_addr":        &config.EndpointAddrHTTP,
		"grpc_addr":        &config.EndpointAddrGRPC,
		"database_driver":  &config.DatabaseDriver,
		"database_dsn":     &config.DatabaseDSN,
		"secret_key":       &config.SecretKey,
		"log_level":        &config.LogLevel,
		"s3_root_user":     &config.S3RootUser,
		"s3_root_password": &config.S3RootPassword,
		"s3_bucket":        &config.S3Bucket,
		"s3_region":        &config.S3Region,
		"s3_base_endpoint": &config.S3BaseEndpoint,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("atomic_import") {
		config.AtomicImport = v.GetBool("atomic_import")
	}
	if v.IsSet("strict_relationships") {
		config.StrictRelationships = v.GetBool("strict_relationships")
	}
	if v.IsSet("import_chunk_size") {
		config.ImportChunkSize = v.GetInt("import_chunk_size")
	}
	if v.IsSet("shutdown_timeout") {
		config.ShutdownTimeout = v.GetDuration("shutdown_timeout")
	}
}
