package slack

import (
	"fmt"

	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/slack-go/slack"
)

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// MoveSummary returns the plain text line for a reassignment. A nil manager
// means the employee has no manager on that side of the move.
func MoveSummary(subject, from, to *model.Employee) string {
	name := subject.DisplayName(subject.ID.String())
	switch {
	case to == nil:
		return fmt.Sprintf("%s is now a top-level employee", name)
	case from == nil:
		return fmt.Sprintf("%s now reports to %s", name, to.DisplayName(to.ID.String()))
	default:
		return fmt.Sprintf("%s moved from %s's team to %s's team",
			name, from.DisplayName(from.ID.String()), to.DisplayName(to.ID.String()))
	}
}

// BuildMoveBlocks creates the announcement blocks for a committed reassignment
func (b *BlockBuilder) BuildMoveBlocks(subject, from, to *model.Employee) []slack.Block {
	headline := slack.NewTextBlockObject(
		slack.MarkdownType,
		fmt.Sprintf(":busts_in_silhouette: *%s*", MoveSummary(subject, from, to)),
		false,
		false,
	)

	var fields []*slack.TextBlockObject
	if subject.Designation != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, "*Designation:*\n"+subject.Designation, false, false))
	}
	if subject.Team != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, "*Team:*\n"+subject.Team, false, false))
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(headline, fields, nil),
	}
	if subject.EmployeeID != "" {
		blocks = append(blocks, b.BuildContextBlocks(fmt.Sprintf("Employee ID: `%s`", subject.EmployeeID))...)
	}
	return blocks
}

// BuildContextBlocks creates a single context block with markdown text
func (b *BlockBuilder) BuildContextBlocks(message string) []slack.Block {
	return []slack.Block{
		slack.NewContextBlock(
			"",
			slack.NewTextBlockObject(
				slack.MarkdownType,
				message,
				false,
				false,
			),
		),
	}
}
