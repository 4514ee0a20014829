package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"logLevel"`
	Server      struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		PostgresDSN         string `mapstructure:"postgresDSN"`
		PostgresAutoMigrate bool   `mapstructure:"postgresAutoMigrate"`
	} `mapstructure:"database"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Storage struct {
		Endpoint      string `mapstructure:"endpoint"`      // object store base URL
		Bucket        string `mapstructure:"bucket"`        // bucket for document blobs
		PublicBaseURL string `mapstructure:"publicBaseURL"` // base for public download URLs
		AuthToken     string `mapstructure:"authToken"`     // bearer token for uploads
	} `mapstructure:"storage"`
	Access struct {
		// AdminOverrideEmails are always resolved to the admin role,
		// regardless of any stored role row. Lockout prevention for the
		// account owner(s).
		AdminOverrideEmails []string `mapstructure:"adminOverrideEmails"`
	} `mapstructure:"access"`
}

// IsAdminOverride reports whether the email is on the always-admin allow-list.
func (c *Config) IsAdminOverride(email string) bool {
	for _, e := range c.Access.AdminOverrideEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("environment", "development")
	v.SetDefault("logLevel", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 2112)
	v.SetDefault("database.postgresAutoMigrate", true)
	v.SetDefault("storage.bucket", "documents")

	// Config file settings
	v.SetConfigName("default")
	v.SetConfigType("yaml")

	// Add lookup paths
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath("/etc/pipeline-admin")

	// Try to read from config file
	if err := v.ReadInConfig(); err != nil {
		// It's ok if config file is not found, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map environment variables to config fields
	bindEnvs(v, Config{})

	// Read directly from ENV for critical values
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		v.Set("database.postgresDSN", dsn)
	}
	if lgLevel := os.Getenv("LOG_LEVEL"); lgLevel != "" {
		v.Set("logLevel", lgLevel)
	}
	if endpoint := os.Getenv("STORAGE_ENDPOINT"); endpoint != "" {
		v.Set("storage.endpoint", endpoint)
	}
	if token := os.Getenv("STORAGE_AUTH_TOKEN"); token != "" {
		v.Set("storage.authToken", token)
	}
	if emails := os.Getenv("ADMIN_OVERRIDE_EMAILS"); emails != "" {
		v.Set("access.adminOverrideEmails", strings.Split(emails, ","))
	}

	// Unmarshal config
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &config, nil
}

// bindEnvs recursively binds environment variables to config struct fields
func bindEnvs(v *viper.Viper, cfg interface{}, parts ...string) {
	ifv := reflect.ValueOf(cfg)
	ift := reflect.TypeOf(cfg)
	for i := 0; i < ift.NumField(); i++ {
		fieldVal := ifv.Field(i)
		fieldType := ift.Field(i)
		tag, ok := fieldType.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fieldVal.Kind() {
		case reflect.Struct:
			bindEnvs(v, fieldVal.Interface(), append(parts, tag)...)
		default:
			key := strings.Join(append(parts, tag), ".")
			_ = v.BindEnv(key)
		}
	}
}
