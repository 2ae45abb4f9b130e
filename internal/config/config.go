package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	DBSource           string `mapstructure:"DB_SOURCE"`
	PopulationFile     string `mapstructure:"POPULATION_FILE"`
	VoucherFile        string `mapstructure:"VOUCHER_FILE"`
	PublicFacilityFile string `mapstructure:"PUBLIC_FACILITY_FILE"`
	FitnessFile        string `mapstructure:"FITNESS_FILE"`
	SourceEncoding     string `mapstructure:"SOURCE_ENCODING"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFormat          string `mapstructure:"LOG_FORMAT"`
	GinMode            string `mapstructure:"GIN_MODE"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]string{
	"SERVER_ADDRESS":       "0.0.0.0:8000",
	"DB_SOURCE":            "",
	"POPULATION_FILE":      "data/KCB_SIGNGU_DATA3_09_202509.csv",
	"VOUCHER_FILE":         "data/KS_SPORTS_VOUCH_FCLTY_INFO_202507.csv",
	"PUBLIC_FACILITY_FILE": "data/KS_WNTY_PUBLIC_PHSTRN_FCLTY_STTUS_202507.csv",
	"FITNESS_FILE":         "data/KS_NFA_FTNESS_MESURE_STTUS_202507.csv",
	"SOURCE_ENCODING":      "utf-8",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"GIN_MODE":             "release",
	"CORS_ALLOWED_ORIGINS": "*",
}

// LoadConfig reads configuration from app.env in path (if present) and
// overrides it with environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}
	return config, nil
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
