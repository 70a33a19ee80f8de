package app

import (
	"log/slog"
	"net/http"
	"os"

	"bankctl/internal/api"
	"bankctl/internal/domain"
	"bankctl/internal/logging"
	sessionsvc "bankctl/internal/services/session"
	"bankctl/internal/store"
)

// Wire bundles the stores, services, and clients for the CLI.
type Wire struct {
	Credentials domain.CredentialStore
	API         domain.BankAPI
	Session     domain.SessionService
	Logger      *slog.Logger
	HTTP        *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls.
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := logging.New(cfg.LogLevel)

	credentialStore := store.NewCredentialFileStore(cfg.Home, cfg.Passphrase)
	apiClient := api.New(cfg.APIBaseURL, httpClient)

	sessionService, err := sessionsvc.New(apiClient, credentialStore, logger)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Credentials: credentialStore,
		API:         apiClient,
		Session:     sessionService,
		Logger:      logger,
		HTTP:        httpClient,
	}, nil
}
