package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/secmon-lab/orgchart/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration for move announcements
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("ORGCHART_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID where reporting line changes are announced",
			Category:    "Slack",
			Sources:     cli.EnvVars("ORGCHART_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates the move announcer. It returns nil when Slack is not
// configured.
func (s *Slack) Configure(ctx context.Context) (*slackSvc.Announcer, error) {
	logger := ctxlog.From(ctx)

	if !s.IsConfigured() {
		if s.OAuthToken != "" || s.ChannelID != "" {
			return nil, goerr.New("both slack-oauth-token and slack-channel are required for announcements")
		}
		logger.Info("Slack not configured, moves will not be announced")
		return nil, nil
	}

	announcer := slackSvc.NewAnnouncer(slackSvc.New(s.OAuthToken), s.ChannelID)
	if err := announcer.Verify(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to verify Slack token")
	}

	logger.Info("Slack announcements enabled", "channel", s.ChannelID)
	return announcer, nil
}

// IsConfigured checks if Slack is configured for announcements
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
