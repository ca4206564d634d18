// Package config provides configuration management for the hotel payment relay.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"sync"
)

const (
	// EnvironmentProduction selects the live gateway endpoint.
	EnvironmentProduction = "production"
	// EnvironmentTest selects the gateway sandbox.
	EnvironmentTest = "test"
)

// Config holds all configuration for the payment relay service.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
//
// Merchant.Key and Merchant.Salt are server-side secrets: they are part of
// the signed payload sent to the gateway and must never be included in
// client responses or log output.
type Config struct {
	IsDebug        bool  `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	DisablePayment bool  `yaml:"disable_payment" env:"DISABLE_PAYMENT" env-default:"false"`
	LogRecords     int64 `yaml:"log_records" env:"LOG_RECORDS" env-default:"0"`
	Listen         struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	} `yaml:"mongo"`
	Merchant struct {
		// Key is the public merchant identifier assigned by the gateway.
		Key string `yaml:"key" env:"MERCHANT_KEY" env-default:""`
		// Salt is the shared secret used as the final segment of the signing string.
		Salt string `yaml:"salt" env:"MERCHANT_SALT" env-default:""`
		// Environment selects the production or test gateway base URL.
		Environment string `yaml:"environment" env:"MERCHANT_ENVIRONMENT" env-default:"test"`
		// RequestUrl, when set, overrides the environment-selected initiate endpoint.
		RequestUrl string `yaml:"request_url" env:"MERCHANT_REQUEST_URL" env-default:""`
		// SuccessUrl and FailureUrl are where the gateway sends the payer
		// after the hosted payment page completes.
		SuccessUrl string `yaml:"success_url" env:"MERCHANT_SUCCESS_URL" env-default:""`
		FailureUrl string `yaml:"failure_url" env:"MERCHANT_FAILURE_URL" env-default:""`
	} `yaml:"merchant"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// Configuration values can be overridden by environment variables.
// This function uses a singleton pattern and only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("load config: %w; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}
