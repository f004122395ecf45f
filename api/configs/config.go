package configs

import (
	"strconv"
	"strings"
	"time"

	"github.com/hbalmes/webtoapp-api/api/utils/apierrors"
	"github.com/spf13/viper"
)

const (
	githubProductionURL = "https://api.github.com"
	defaultDispatchRef  = "main"
	defaultRunsPageSize = 100
	defaultTimeout      = 10 * time.Second
	defaultPort         = "8080"

	configurationErrorMessage = "server configuration error"
)

// Config is built once at startup and passed to every client and service
type Config struct {
	Scope            string
	Port             string
	LogLevel         string
	GithubBaseURL    string
	GithubToken      string
	GithubRepository string
	DispatchRef      string
	RunsPageSize     int
	Timeout          time.Duration
}

// Load reads the configuration from the environment
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GITHUB_DISPATCH_REF", defaultDispatchRef)
	v.SetDefault("GITHUB_TIMEOUT", defaultTimeout)
	v.SetDefault("RUNS_PAGE_SIZE", defaultRunsPageSize)

	scope := v.GetString("SCOPE")

	baseURL := v.GetString("GITHUB_API_URL")
	if baseURL == "" {
		baseURL = GetGithubBaseURL(scope)
	}

	pageSize := v.GetInt("RUNS_PAGE_SIZE")
	if pageSize <= 0 || pageSize > defaultRunsPageSize {
		pageSize = defaultRunsPageSize
	}

	return &Config{
		Scope:            scope,
		Port:             v.GetString("PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		GithubBaseURL:    strings.TrimRight(baseURL, "/"),
		GithubToken:      strings.TrimSpace(v.GetString("GITHUB_PAT")),
		GithubRepository: strings.Trim(strings.TrimSpace(v.GetString("GITHUB_REPOSITORY")), "/"),
		DispatchRef:      v.GetString("GITHUB_DISPATCH_REF"),
		RunsPageSize:     pageSize,
		Timeout:          getTimeout(v),
	}
}

// getTimeout reads GITHUB_TIMEOUT as a duration ("15s", "1m").
// A bare integer is a number of seconds.
func getTimeout(v *viper.Viper) time.Duration {
	timeout := v.GetDuration("GITHUB_TIMEOUT")
	if secs, err := strconv.Atoi(strings.TrimSpace(v.GetString("GITHUB_TIMEOUT"))); err == nil {
		timeout = time.Duration(secs) * time.Second
	}
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}

// GetGithubBaseURL returns the github api url for the given scope
func GetGithubBaseURL(scope string) string {
	switch scope {
	case "test":
		return "http://localhost:8081"
	default:
		return githubProductionURL
	}
}

// RequireRepository must pass before any call to the build platform, reads included
func (c *Config) RequireRepository() apierrors.ApiError {
	if c == nil || c.GithubRepository == "" || !strings.Contains(c.GithubRepository, "/") {
		return apierrors.NewConfigurationApiError(configurationErrorMessage)
	}
	return nil
}

// RequireCredentials must pass before any write operation
func (c *Config) RequireCredentials() apierrors.ApiError {
	if err := c.RequireRepository(); err != nil {
		return err
	}
	if c.GithubToken == "" {
		return apierrors.NewConfigurationApiError(configurationErrorMessage)
	}
	return nil
}

// HasCredentials returns if an api token is configured
func (c *Config) HasCredentials() bool {
	return c != nil && c.GithubToken != ""
}
