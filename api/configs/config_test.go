package configs

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
	"time"
)

func TestGetGithubBaseURL(t *testing.T) {
	type args struct {
		scope string
	}

	type expects struct {
		url string
	}

	tests := []struct {
		name    string
		args    args
		expects expects
	}{
		{
			name:    "test scope productive",
			args:    args{scope: "production"},
			expects: expects{url: "https://api.github.com"},
		},
		{
			name:    "test scope test",
			args:    args{scope: "test"},
			expects: expects{url: "http://localhost:8081"},
		},
		{
			name:    "test scope stage",
			args:    args{scope: "stage"},
			expects: expects{url: "https://api.github.com"},
		},
		{
			name:    "test scope empty",
			args:    args{scope: ""},
			expects: expects{url: "https://api.github.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetGithubBaseURL(tt.args.scope)
			assert.Equal(t, tt.expects.url, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"SCOPE", "PORT", "GITHUB_API_URL", "GITHUB_PAT", "GITHUB_REPOSITORY", "GITHUB_DISPATCH_REF", "GITHUB_TIMEOUT", "RUNS_PAGE_SIZE"} {
			os.Unsetenv(k)
		}

		cfg := Load()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "https://api.github.com", cfg.GithubBaseURL)
		assert.Equal(t, "main", cfg.DispatchRef)
		assert.Equal(t, 100, cfg.RunsPageSize)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Empty(t, cfg.GithubToken)
		assert.Empty(t, cfg.GithubRepository)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("SCOPE", "production")
		t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3/")
		t.Setenv("GITHUB_PAT", " token ")
		t.Setenv("GITHUB_REPOSITORY", "hbalmes/web-to-app")
		t.Setenv("GITHUB_DISPATCH_REF", "release")
		t.Setenv("GITHUB_TIMEOUT", "3s")
		t.Setenv("RUNS_PAGE_SIZE", "500")

		cfg := Load()

		assert.Equal(t, "https://github.example.com/api/v3", cfg.GithubBaseURL)
		assert.Equal(t, "token", cfg.GithubToken)
		assert.Equal(t, "hbalmes/web-to-app", cfg.GithubRepository)
		assert.Equal(t, "release", cfg.DispatchRef)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, 100, cfg.RunsPageSize)
	})
}

func TestLoad_Timeout(t *testing.T) {
	type args struct {
		value string
	}
	type expects struct {
		timeout time.Duration
	}

	tests := []struct {
		name    string
		args    args
		expects expects
	}{
		{name: "duration with unit", args: args{value: "1m"}, expects: expects{timeout: time.Minute}},
		{name: "bare integer is seconds", args: args{value: "10"}, expects: expects{timeout: 10 * time.Second}},
		{name: "bare integer with spaces", args: args{value: " 25 "}, expects: expects{timeout: 25 * time.Second}},
		{name: "zero falls back to default", args: args{value: "0"}, expects: expects{timeout: 10 * time.Second}},
		{name: "negative falls back to default", args: args{value: "-5"}, expects: expects{timeout: 10 * time.Second}},
		{name: "garbage falls back to default", args: args{value: "soon"}, expects: expects{timeout: 10 * time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_TIMEOUT", tt.args.value)

			cfg := Load()

			assert.Equal(t, tt.expects.timeout, cfg.Timeout)
		})
	}
}

func TestConfig_Require(t *testing.T) {
	tests := []struct {
		name           string
		config         *Config
		repositoryErr  bool
		credentialsErr bool
	}{
		{
			name:           "fully configured",
			config:         &Config{GithubRepository: "hbalmes/web-to-app", GithubToken: "token"},
			repositoryErr:  false,
			credentialsErr: false,
		},
		{
			name:           "anonymous read access",
			config:         &Config{GithubRepository: "hbalmes/web-to-app"},
			repositoryErr:  false,
			credentialsErr: true,
		},
		{
			name:           "missing repository",
			config:         &Config{GithubToken: "token"},
			repositoryErr:  true,
			credentialsErr: true,
		},
		{
			name:           "repository without owner",
			config:         &Config{GithubRepository: "web-to-app", GithubToken: "token"},
			repositoryErr:  true,
			credentialsErr: true,
		},
		{
			name:           "nil config",
			config:         nil,
			repositoryErr:  true,
			credentialsErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoErr := tt.config.RequireRepository()
			credErr := tt.config.RequireCredentials()

			assert.Equal(t, tt.repositoryErr, repoErr != nil)
			assert.Equal(t, tt.credentialsErr, credErr != nil)
			if credErr != nil {
				assert.Equal(t, 500, credErr.Status())
				assert.Equal(t, "server configuration error", credErr.Message())
			}
		})
	}
}

func TestGetPlatformWorkflow(t *testing.T) {
	wf, ok := GetPlatformWorkflow(PlatformWindows)
	assert.True(t, ok)
	assert.Equal(t, "build-windows.yml", wf)

	wf, ok = GetPlatformWorkflow(PlatformAndroid)
	assert.True(t, ok)
	assert.Equal(t, "build-android.yml", wf)

	_, ok = GetPlatformWorkflow("ios")
	assert.False(t, ok)

	platforms := GetKnownPlatforms()
	assert.Equal(t, []string{"windows", "android"}, []string{string(platforms[0]), string(platforms[1])})
	platforms[0] = "ios"
	assert.Equal(t, PlatformWindows, GetKnownPlatforms()[0])
}
