package config

import (
	"errors"
	"reflect"
	"strings"

	"mnp-alarm/core/database"
	"mnp-alarm/core/logger"
	"mnp-alarm/core/server"
	"mnp-alarm/core/storage"
	"mnp-alarm/feature/alert"
	"mnp-alarm/feature/lookup"
	"mnp-alarm/feature/reference"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Lookup holds configuration for the HLR lookup service.
	Lookup lookup.Config `mapstructure:"lookup"`
	// Alert holds configuration for the SMS gateway.
	Alert alert.Config `mapstructure:"alert"`
	// Reference selects where the reference set is read from.
	Reference reference.Config `mapstructure:"reference"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LOOKUP_URL -> lookup.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports every required setting that is missing.
// A run must not start when it returns an error.
func (c *Config) Validate() error {
	var errs []error
	if c.Lookup.URL == "" {
		errs = append(errs, errors.New("lookup.url (LOOKUP_URL) is required"))
	}
	if c.Alert.URL == "" {
		errs = append(errs, errors.New("alert.url (ALERT_URL) is required"))
	}
	if c.Alert.Destination == "" {
		errs = append(errs, errors.New("alert.destination (ALERT_DESTINATION) is required"))
	}
	if err := c.Reference.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
