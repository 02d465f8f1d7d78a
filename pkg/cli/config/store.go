package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/service/store"
	"github.com/urfave/cli/v3"
)

// Store holds the editor's store client configuration
type Store struct {
	URL     string
	Timeout time.Duration
}

// Flags returns CLI flags for Store configuration
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store-url",
			Usage:       "Base URL of the employee store",
			Category:    "Store",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("ORGCHART_STORE_URL"),
			Destination: &s.URL,
		},
		&cli.DurationFlag{
			Name:        "store-timeout",
			Usage:       "Timeout of a single store request",
			Category:    "Store",
			Value:       store.DefaultTimeout,
			Sources:     cli.EnvVars("ORGCHART_STORE_TIMEOUT"),
			Destination: &s.Timeout,
		},
	}
}

// Configure creates the store client
func (s *Store) Configure() (*store.Client, error) {
	client, err := store.New(s.URL, store.WithTimeout(s.Timeout))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure store client", goerr.V("url", s.URL))
	}
	return client, nil
}

// LogValue returns structured log value
func (s Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", s.URL),
		slog.Duration("timeout", s.Timeout),
	)
}
