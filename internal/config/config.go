package config

import (
	"os"
	"strings"
	"time"

	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

var ErrConfigurationMissing = models.ErrConfigurationMissing

type Config struct {
	Session   string `env:"LEETCODE_SESSION" yaml:"leetcode_session" env-description:"LeetCode session cookie"`
	CSRFToken string `env:"CSRF_TOKEN" yaml:"csrf_token" env-description:"LeetCode csrftoken cookie"`

	BaseURL    string `env:"JUDGE_BASE_URL" yaml:"base_url" env-default:"https://leetcode.com"`
	UserAgent  string `env:"USER_AGENT" yaml:"user_agent" env-default:"Mozilla/5.0"`
	Slug       string `env:"PROBLEM_SLUG" yaml:"problem_slug" env-default:"longest-palindromic-substring"`
	QuestionID string `env:"QUESTION_ID" yaml:"question_id" env-default:"5"`
	Language   string `env:"SUBMIT_LANG" yaml:"lang" env-default:"cpp"`
	// Local path or s3://bucket/object, empty for the built-in solution.
	Source string `env:"SOURCE" yaml:"source"`

	PollInterval    time.Duration `env:"POLL_INTERVAL" yaml:"poll_interval" env-default:"2s"`
	PollMaxAttempts int           `env:"POLL_MAX_ATTEMPTS" yaml:"poll_max_attempts" env-default:"150"`
	PollTimeout     time.Duration `env:"POLL_TIMEOUT" yaml:"poll_timeout" env-default:"0s"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" yaml:"http_timeout" env-default:"30s"`
	LogLevel        string        `env:"LOG_LEVEL" yaml:"log_level" env-default:"warn"`

	MinIOHost     string `env:"MINIO_HOST" yaml:"minio_host"`
	MinIOLogin    string `env:"MINIO_LOGIN" yaml:"minio_login"`
	MinIOPassword string `env:"MINIO_PASSWORD" yaml:"minio_password"`
	MinIOSSL      bool   `env:"MINIO_SSL" yaml:"minio_ssl" env-default:"false"`

	RabbitMQHost     string `env:"RABBIT_HOST" yaml:"rabbit_host"`
	RabbitMQPort     int    `env:"RABBIT_PORT" yaml:"rabbit_port" env-default:"5672"`
	RabbitMQUser     string `env:"RABBIT_USER" yaml:"rabbit_user" env-default:"guest"`
	RabbitMQPassword string `env:"RABBIT_PASSWORD" yaml:"rabbit_password" env-default:"guest"`
	VerdictQueue     string `env:"VERDICT_QUEUE" yaml:"verdict_queue"`
}

// NewConfig reads the environment, layered over the file at path when path
// is not empty. The secrets are checked by Validate, not here, so flags can
// still override the other fields.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, errors.Wrap(statErr, "config file")
		}
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return cfg, nil
}

func (c *Config) Credentials() models.Credentials {
	return models.Credentials{Session: c.Session, CSRFToken: c.CSRFToken}
}

func (c *Config) Request(code string) *models.SubmissionRequest {
	return &models.SubmissionRequest{
		Slug:       c.Slug,
		QuestionID: c.QuestionID,
		Language:   c.Language,
		Code:       code,
	}
}

func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQHost != "" && c.VerdictQueue != ""
}

func (c *Config) Validate() error {
	var missing []string
	if c.Session == "" {
		missing = append(missing, "LEETCODE_SESSION")
	}
	if c.CSRFToken == "" {
		missing = append(missing, "CSRF_TOKEN")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrConfigurationMissing, "%s not set", strings.Join(missing, ", "))
	}
	if c.PollInterval <= 0 {
		return errors.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.PollMaxAttempts < 0 {
		return errors.Errorf("poll max attempts must not be negative, got %d", c.PollMaxAttempts)
	}
	return nil
}

// Usage describes every supported environment variable.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
