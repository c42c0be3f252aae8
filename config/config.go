/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/suparena/ddbgateway/errors"
)

// Defaults used when nothing else sets a value.
const (
	DefaultPort      = 8080
	DefaultRegion    = "ap-south-1"
	DefaultTableName = "my-table"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Environment variable names.
const (
	EnvPort           = "PORT"
	EnvRegion         = "AWS_REGION"
	EnvTableName      = "DDB_TABLE_NAME"
	EnvAccessKey      = "AWS_ACCESS_KEY_ID"
	EnvSecretKey      = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken   = "AWS_SESSION_TOKEN"
	EnvEndpoint       = "DDB_ENDPOINT"
	EnvScanLimit      = "DDB_SCAN_LIMIT"
	EnvConsistentRead = "DDB_CONSISTENT_READ"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
)

// Config is the process-wide configuration. It is built once at startup and
// never changed afterwards.
type Config struct {
	Port           int    `yaml:"port"`
	Region         string `yaml:"region"`
	TableName      string `yaml:"table_name"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	SessionToken   string `yaml:"session_token"`
	Endpoint       string `yaml:"endpoint"`
	ScanLimit      int32  `yaml:"scan_limit"`
	ConsistentRead bool   `yaml:"consistent_read"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

// LoadOptions selects the files Load reads. Empty paths are skipped.
type LoadOptions struct {
	// ConfigFile is a YAML file; it must exist when set.
	ConfigFile string
	// EnvFile is a dotenv file; a missing file is ignored.
	EnvFile string
	// LookupEnv reads process environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Port:      DefaultPort,
		Region:    DefaultRegion,
		TableName: DefaultTableName,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load builds a Config from defaults, then the YAML file, then the dotenv
// file, then the process environment. Later sources win. The result is not
// validated; call Validate once command-line overrides have been applied.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.ConfigFile != "" {
		if err := cfg.loadYAML(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		values, err := godotenv.Read(opts.EnvFile)
		switch {
		case err == nil:
			dotenv = values
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read env file %s: %w", opts.EnvFile, err)
		}
	}

	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	lookup := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvPort, fmt.Sprintf("not a number: %q", v))
		}
		c.Port = port
	}
	setString(EnvRegion, &c.Region)
	setString(EnvTableName, &c.TableName)
	setString(EnvAccessKey, &c.AccessKey)
	setString(EnvSecretKey, &c.SecretKey)
	setString(EnvSessionToken, &c.SessionToken)
	setString(EnvEndpoint, &c.Endpoint)
	if v, ok := lookup(EnvScanLimit); ok && v != "" {
		limit, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.NewValidationError(EnvScanLimit, fmt.Sprintf("not a number: %q", v))
		}
		c.ScanLimit = int32(limit)
	}
	if v, ok := lookup(EnvConsistentRead); ok && v != "" {
		consistent, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewValidationError(EnvConsistentRead, fmt.Sprintf("not a boolean: %q", v))
		}
		c.ConsistentRead = consistent
	}
	setString(EnvLogLevel, &c.LogLevel)
	setString(EnvLogFormat, &c.LogFormat)
	return nil
}

// Validate reports the first invalid setting as a ValidationError.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.NewValidationError("port", "must be between 1 and 65535")
	}
	if strings.TrimSpace(c.Region) == "" {
		return errors.NewValidationError("region", "must not be empty")
	}
	if strings.TrimSpace(c.TableName) == "" {
		return errors.NewValidationError("table_name", "must not be empty")
	}
	if c.Endpoint != "" {
		if err := validateEndpoint(c.Endpoint); err != nil {
			return err
		}
	}
	if c.ScanLimit < 0 {
		return errors.NewValidationError("scan_limit", "must not be negative")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.NewValidationError("", "access key and secret key must be set together")
	}
	if c.SessionToken != "" && c.AccessKey == "" {
		return errors.NewValidationError("session_token", "requires access key and secret key")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("log_level", err.Error())
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.NewValidationError("log_format", `must be "text" or "json"`)
	}
	return nil
}

// validateEndpoint accepts absolute http or https URLs with a host.
func validateEndpoint(endpoint string) error {
	if !strfmt.Default.Validates("uri", endpoint) {
		return errors.NewValidationError("endpoint", fmt.Sprintf("not a valid URI: %q", endpoint))
	}
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewValidationError("endpoint", fmt.Sprintf("must be an absolute http(s) URL: %q", endpoint))
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
