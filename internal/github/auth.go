package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-advisor/internal/config"
)

// NewClientFromConfig builds a client from the configured credential. GitHub
// App installation credentials take precedence over a personal access token.
func NewClientFromConfig(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	if cfg.AppConfigured() {
		return NewInstallationClient(cfg, logger)
	}
	return NewPATClient(ctx, cfg.Token, cfg.APIURL, logger)
}

// NewPATClient creates a new GitHub client authenticated with a Personal Access Token (PAT).
func NewPATClient(ctx context.Context, token, apiURL string, logger *slog.Logger) (Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client, err := newGitHubAPIClient(tc, apiURL)
	if err != nil {
		return nil, err
	}
	return &gitHubClient{client: client, logger: logger}, nil
}

// NewInstallationClient creates a GitHub client that is authenticated as a
// specific application installation. The transport refreshes the
// installation token on its own.
func NewInstallationClient(cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	logger.Info("Creating GitHub installation client", "app_id", cfg.AppID, "installation_id", cfg.InstallationID)

	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport from %s: %w", cfg.PrivateKeyPath, err)
	}
	if cfg.APIURL != "" {
		itr.BaseURL = strings.TrimRight(cfg.APIURL, "/")
	}

	client, err := newGitHubAPIClient(&http.Client{Transport: itr}, cfg.APIURL)
	if err != nil {
		return nil, err
	}
	return &gitHubClient{client: client, logger: logger}, nil
}

func newGitHubAPIClient(httpClient *http.Client, apiURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if apiURL == "" {
		return client, nil
	}

	base, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	client.BaseURL = base
	return client, nil
}
