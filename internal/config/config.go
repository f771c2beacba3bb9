// Package config loads the client configuration from defaults, an optional
// JSON config file, a .env file, environment variables, and command-line
// flags. Priority: flags > environment > JSON file > defaults.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings of the myFlix client.
type Config struct {
	APIBaseURL     string        `env:"MYFLIX_API_BASE_URL" json:"api_base_url" validate:"url"`
	SessionFile    string        `env:"MYFLIX_SESSION_FILE" json:"session_file" validate:"filepath"`
	LogLevel       string        `env:"LOG_LEVEL" json:"log_level" validate:"loglevel"`
	RequestTimeout time.Duration `env:"MYFLIX_REQUEST_TIMEOUT" json:"request_timeout"`
	NoPersist      bool          `env:"MYFLIX_NO_PERSIST" json:"no_persist"`
}

var defaultConfig = Config{
	APIBaseURL:     "https://myflix-api-app-ff32afce7dc8.herokuapp.com",
	SessionFile:    "session.json",
	LogLevel:       "info",
	RequestTimeout: 0, // transport default, no client-side timeout
	NoPersist:      false,
}

func validateFilePath(fieldLevel validator.FieldLevel) bool {
	path := fieldLevel.Field().String()
	_, err := os.Stat(path)

	return err == nil || os.IsNotExist(err)
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warning": true,
		"error":   true,
		"fatal":   true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	err = validate.RegisterValidation("filepath", validateFilePath)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

func applyDefaults(dst *Config, defaults Config) {
	*dst = defaults
}

func applyJSONFile(dst *Config, fileName string) error {
	if fileName == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}

// InitOption customizes the behavior of New.
type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing disables command-line flag parsing,
// which is required when New is called from tests.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New assembles the configuration from all sources and validates it.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	values := &Config{}
	applyDefaults(values, defaultConfig)

	configFileName := os.Getenv("CONFIG")

	flags := flag.NewFlagSet("myflix", flag.ContinueOnError)
	flagValues := Config{}
	flags.StringVar(&flagValues.APIBaseURL, "a", "", "base URL of the myFlix API")
	flags.StringVar(&flagValues.SessionFile, "s", "", "JSON file holding the persisted session")
	flags.StringVar(&flagValues.LogLevel, "l", "", "logger level")
	flags.DurationVar(&flagValues.RequestTimeout, "t", 0, "per-request timeout (0 means transport default)")
	flags.BoolVar(&flagValues.NoPersist, "m", false, "keep the session in memory only")
	configFileFlag := flags.String("c", "", "path to a JSON config file")

	parsedFlags := map[string]bool{}
	if !options.disableFlagsParsing {
		if err := flags.Parse(os.Args[1:]); err != nil {
			return nil, err
		}
		flags.Visit(func(f *flag.Flag) {
			parsedFlags[f.Name] = true
		})
		if parsedFlags["c"] {
			configFileName = *configFileFlag
		}
	}

	if err := applyJSONFile(values, configFileName); err != nil {
		return nil, err
	}

	valuesFromEnv := Config{}
	if err := env.Parse(&valuesFromEnv); err != nil {
		return nil, err
	}

	if valuesFromEnv.APIBaseURL != "" {
		values.APIBaseURL = valuesFromEnv.APIBaseURL
	}

	if valuesFromEnv.SessionFile != "" {
		values.SessionFile = valuesFromEnv.SessionFile
	}

	if valuesFromEnv.LogLevel != "" {
		values.LogLevel = valuesFromEnv.LogLevel
	}

	if valuesFromEnv.RequestTimeout != 0 {
		values.RequestTimeout = valuesFromEnv.RequestTimeout
	}

	if valuesFromEnv.NoPersist {
		values.NoPersist = true
	}

	if parsedFlags["a"] {
		values.APIBaseURL = flagValues.APIBaseURL
	}

	if parsedFlags["s"] {
		values.SessionFile = flagValues.SessionFile
	}

	if parsedFlags["l"] {
		values.LogLevel = flagValues.LogLevel
	}

	if parsedFlags["t"] {
		values.RequestTimeout = flagValues.RequestTimeout
	}

	if parsedFlags["m"] {
		values.NoPersist = flagValues.NoPersist
	}

	if err := values.validate(); err != nil {
		return nil, err
	}

	return values, nil
}
