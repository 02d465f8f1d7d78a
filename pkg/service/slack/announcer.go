package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Announcer posts committed reassignments to a channel
type Announcer struct {
	client    interfaces.SlackClient
	builder   *BlockBuilder
	channelID string
}

// NewAnnouncer creates a new Announcer posting to channelID
func NewAnnouncer(client interfaces.SlackClient, channelID string) *Announcer {
	return &Announcer{
		client:    client,
		builder:   NewBlockBuilder(),
		channelID: channelID,
	}
}

// ChannelID returns the announcement channel
func (a *Announcer) ChannelID() string {
	return a.channelID
}

// AnnounceMove posts a message describing subject's move from one manager to
// another. Either manager may be nil for a top-level position.
func (a *Announcer) AnnounceMove(ctx context.Context, subject, from, to *model.Employee) error {
	if subject == nil {
		return goerr.New("subject is required")
	}
	if a.channelID == "" {
		return goerr.New("announcement channel is not configured")
	}

	blocks := a.builder.BuildMoveBlocks(subject, from, to)
	_, ts, err := a.client.PostMessage(ctx, a.channelID,
		slack.MsgOptionText(MoveSummary(subject, from, to), false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to announce move",
			goerr.V("channelID", a.channelID),
			goerr.V("employeeID", subject.ID))
	}

	ctxlog.From(ctx).Debug("Move announced",
		"channelID", a.channelID,
		"employeeID", subject.ID,
		"ts", ts,
	)
	return nil
}

// Verify checks that the configured token is usable
func (a *Announcer) Verify(ctx context.Context) error {
	resp, err := a.client.AuthTestContext(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to verify Slack token")
	}
	ctxlog.From(ctx).Info("Slack announcer ready",
		"team", resp.Team,
		"user", resp.User,
		"channelID", a.channelID,
	)
	return nil
}
