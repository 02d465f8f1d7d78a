package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

// Service is the slack-go backed interfaces.SlackClient
type Service struct {
	client *slack.Client
}

var _ interfaces.SlackClient = (*Service)(nil)

// ServiceOption configures a Service
type ServiceOption func(*[]slack.Option)

// WithAPIURL points the client at another Slack API endpoint, e.g. a test
// server. The URL must end with a slash.
func WithAPIURL(url string) ServiceOption {
	return func(opts *[]slack.Option) {
		*opts = append(*opts, slack.OptionAPIURL(url))
	}
}

// New creates a Slack service authenticated with a bot token
func New(token string, opts ...ServiceOption) *Service {
	var clientOpts []slack.Option
	for _, opt := range opts {
		opt(&clientOpts)
	}
	return &Service{
		client: slack.New(token, clientOpts...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post announcement", goerr.V("channelID", channelID))
	}
	return channel, timestamp, nil
}

// AuthTestContext returns the bot identity of the token
func (s *Service) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	resp, err := s.client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "Slack rejected the bot token")
	}
	return resp, nil
}
