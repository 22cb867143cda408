package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-advisor/internal/logger"
)

// ErrInvalidInterval is returned for duration expressions that are not a
// positive integer followed by one of the units s, m or h.
var ErrInvalidInterval = errors.New("invalid interval")

const (
	DefaultInterval     = 600 * time.Second
	DefaultRequestDelay = 10 * time.Second
	DefaultBumpPattern  = "Bump"
)

var validate = validator.New()

// GitHubConfig holds the repository reference and its credentials.
type GitHubConfig struct {
	Owner          string `validate:"required"`
	Repo           string `validate:"required"`
	Token          string
	APIURL         string `validate:"omitempty,url"`
	AppID          int64  `validate:"gte=0"`
	InstallationID int64  `validate:"gte=0"`
	PrivateKeyPath string
}

// AppConfigured reports whether GitHub App installation credentials are set.
func (g GitHubConfig) AppConfigured() bool {
	return g.AppID > 0 && g.InstallationID > 0 && g.PrivateKeyPath != ""
}

// AIConfig selects and configures the review generator.
type AIConfig struct {
	Provider   string `validate:"oneof=solar ollama gemini"`
	APIKey     string
	Model      string `validate:"required"`
	BaseURL    string `validate:"omitempty,url"`
	OllamaHost string `validate:"omitempty,url"`
	Language   string `validate:"required"`
}

// PollingConfig controls the polling loop and the per-request pipeline.
type PollingConfig struct {
	HistoryFilePath string `validate:"required"`
	Interval        time.Duration
	RequestDelay    time.Duration
	JustPrint       bool
	BumpPattern     string `validate:"required"`
}

// Config holds the application's configuration values.
type Config struct {
	GitHub     GitHubConfig
	AI         AIConfig
	Polling    PollingConfig
	Logging    logger.Config
	StatusAddr string
}

func setDefaults() {
	viper.SetDefault("LLM_PROVIDER", "solar")
	viper.SetDefault("LLM_BASE_URL", "https://api.upstage.ai/v1")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("REVIEW_LANGUAGE", "Korean")
	viper.SetDefault("HISTORY_FILE_PATH", "history.json")
	viper.SetDefault("REQUEST_DELAY", "10s")
	viper.SetDefault("JUST_PRINT", false)
	viper.SetDefault("BUMP_PATTERN", DefaultBumpPattern)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "both")
	viper.SetDefault("LOG_FILE", "pr_advisor.log")
}

// LoadConfig reads configuration from environment variables and an optional
// dotenv file, sets defaults, and validates the result. An empty configFile
// means ".env". A missing file is not an error; a malformed one is.
func LoadConfig(configFile string) (*Config, error) {
	if err := readSources(configFile); err != nil {
		return nil, err
	}

	interval := DefaultInterval
	if raw := viper.GetString("TIME_SLEEP"); raw != "" {
		d, err := ParseInterval(raw)
		if err != nil {
			return nil, fmt.Errorf("TIME_SLEEP: %w", err)
		}
		interval = d
		slog.Info("loaded polling interval", "TIME_SLEEP", raw)
	} else {
		slog.Info("no TIME_SLEEP set, using default", "interval", interval)
	}

	delay, err := ParseDelay(viper.GetString("REQUEST_DELAY"))
	if err != nil {
		return nil, fmt.Errorf("REQUEST_DELAY: %w", err)
	}

	provider := strings.ToLower(viper.GetString("LLM_PROVIDER"))
	model := viper.GetString("LLM_MODEL")
	if model == "" {
		model = defaultModel(provider)
	}

	cfg := &Config{
		GitHub: GitHubConfig{
			Owner:          viper.GetString("REPO_OWNER"),
			Repo:           viper.GetString("REPO_NAME"),
			Token:          viper.GetString("GITHUB_TOKEN"),
			APIURL:         viper.GetString("GITHUB_API_URL"),
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			InstallationID: viper.GetInt64("GITHUB_INSTALLATION_ID"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
		},
		AI: AIConfig{
			Provider:   provider,
			APIKey:     viper.GetString("LLM_API_KEY"),
			Model:      model,
			BaseURL:    viper.GetString("LLM_BASE_URL"),
			OllamaHost: viper.GetString("OLLAMA_HOST"),
			Language:   viper.GetString("REVIEW_LANGUAGE"),
		},
		Polling: PollingConfig{
			HistoryFilePath: viper.GetString("HISTORY_FILE_PATH"),
			Interval:        interval,
			RequestDelay:    delay,
			JustPrint:       viper.GetBool("JUST_PRINT"),
			BumpPattern:     viper.GetString("BUMP_PATTERN"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Output: strings.ToLower(viper.GetString("LOG_OUTPUT")),
			File:   viper.GetString("LOG_FILE"),
		},
		StatusAddr: viper.GetString("STATUS_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HistoryFilePath resolves HISTORY_FILE_PATH from the same sources as
// LoadConfig without validating the rest of the configuration.
func HistoryFilePath(configFile string) (string, error) {
	if err := readSources(configFile); err != nil {
		return "", err
	}
	return viper.GetString("HISTORY_FILE_PATH"), nil
}

func readSources(configFile string) error {
	if configFile == "" {
		configFile = ".env"
	}
	viper.SetConfigFile(configFile)
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// SetConfigFile with a missing path yields a raw *fs.PathError.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	return nil
}

// Validate checks required fields and the cross-field rules the struct tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.GitHub.Token == "" && !c.GitHub.AppConfigured() {
		return fmt.Errorf("GITHUB_TOKEN must be set (or GITHUB_APP_ID, GITHUB_INSTALLATION_ID and GITHUB_PRIVATE_KEY_PATH)")
	}
	if c.AI.Provider != "ollama" && c.AI.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY must be set for provider %s", c.AI.Provider)
	}
	if c.Polling.Interval <= 0 {
		return fmt.Errorf("%w: polling interval must be positive", ErrInvalidInterval)
	}
	if c.Polling.RequestDelay < 0 {
		return fmt.Errorf("%w: request delay must not be negative", ErrInvalidInterval)
	}
	return nil
}

// ParseInterval parses "<n>s", "<n>m" or "<n>h" where n is a positive integer.
// Go duration syntax like "1h30m" or "500ms" is rejected, as is any value
// that does not fit in a time.Duration.
func ParseInterval(s string) (time.Duration, error) {
	return parseUnitDuration(s, false)
}

// ParseDelay is ParseInterval that also accepts zero ("0s").
func ParseDelay(s string) (time.Duration, error) {
	return parseUnitDuration(s, true)
}

func parseUnitDuration(s string, allowZero bool) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 's':
		unit = time.Second
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	default:
		return 0, fmt.Errorf("%w: %q has no s, m or h suffix", ErrInvalidInterval, s)
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInterval, s)
	}
	return time.Duration(n) * unit, nil
}

func defaultModel(provider string) string {
	switch provider {
	case "ollama":
		return "gemma3:latest"
	case "gemini":
		return "gemini-2.5-flash"
	default:
		return "solar-pro"
	}
}
