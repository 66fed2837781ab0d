package config

import (
	"fmt"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/chatline/internal/logging"
)

// Config holds runtime settings for the chatline client.
//
// Fields:
//   - AuthorityBaseURL: base URL of the remote identity authority.
//   - UploadURL: endpoint of the external image-hosting service.
//   - UploadPreset, UploadNamespace: the two fixed identifying parameters
//     sent with every upload. Configuration constants, never user input.
//   - SessionFile: path of the single persisted session slot.
//   - LogLevel: debug | info | warning | error.
//   - RequestTimeout: client-side HTTP timeout; zero keeps the transport's
//     own limits.
type Config struct {
	AuthorityBaseURL string        `env:"CHATLINE_AUTHORITY_URL" validate:"required,url"`
	UploadURL        string        `env:"CHATLINE_UPLOAD_URL" validate:"required,url"`
	UploadPreset     string        `env:"CHATLINE_UPLOAD_PRESET" validate:"required"`
	UploadNamespace  string        `env:"CHATLINE_UPLOAD_NAMESPACE" validate:"required"`
	SessionFile      string        `env:"CHATLINE_SESSION_FILE" validate:"required"`
	LogLevel         string        `env:"CHATLINE_LOG_LEVEL" validate:"loglevel"`
	RequestTimeout   time.Duration `env:"CHATLINE_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthorityBaseURL = "http://127.0.0.1:5000"
	c.UploadURL = "https://api.cloudinary.com/v1_1/chatline/image/upload"
	c.UploadPreset = "chatline"
	c.UploadNamespace = "chatline"
	c.SessionFile = "session.json"
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// values from JSON (if a file is given), environment variables, and
// command-line flags, in that order of precedence. The assembled config is
// validated before it is returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
