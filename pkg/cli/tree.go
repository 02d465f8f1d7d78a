package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/cli/config"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/editor"
	"github.com/urfave/cli/v3"
)

func cmdTree(w io.Writer) *cli.Command {
	var (
		storeCfg config.Store
		team     string
		query    string
		selects  []string
		moving   string
	)

	flags := joinFlags(
		storeCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "team",
				Usage:       "Show only this team and the managers above it",
				Value:       model.AllTeams,
				Destination: &team,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"q"},
				Usage:       "List employees matching the query instead of drawing the tree",
				Destination: &query,
			},
			&cli.StringSliceFlag{
				Name:        "select",
				Usage:       "Toggle selection of an employee ID; may be repeated",
				Destination: &selects,
			},
			&cli.StringFlag{
				Name:        "moving",
				Usage:       "Mark an employee as picked up for a two-step move",
				Destination: &moving,
			},
		},
	)

	return &cli.Command{
		Name:  "tree",
		Usage: "Print the organization chart",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			chart, client, err := loadChart(ctx, storeCfg)
			if err != nil {
				return err
			}

			mover := editor.NewMover(chart, client, editor.NewNotifications())
			if moving != "" {
				if _, ok := chart.Hierarchy().Get(types.EmployeeID(moving)); !ok {
					return goerr.New("unknown employee", goerr.V("id", moving))
				}
				mover.StartMobileMove(types.EmployeeID(moving))
			}

			selection := editor.NewSelection()
			selection.OnFocus(func(id types.EmployeeID) {
				ctxlog.From(ctx).Debug("Employee selected", "id", id)
			})
			for _, id := range selects {
				selection.Select(types.EmployeeID(id))
			}

			var opts editor.RenderOptions
			if id, ok := selection.Selected(); ok {
				opts.Selected = id
			}
			if id, ok := mover.MobileMoving(); ok {
				opts.Moving = id
			}

			if query != "" {
				return editor.RenderList(w, chart.View(team, query), opts)
			}

			view := chart.View(team, "")
			if len(view) == 0 {
				_, err := fmt.Fprintln(w, "No employees")
				return err
			}
			return editor.RenderTree(w, view, opts)
		},
	}
}

func cmdTeams(w io.Writer) *cli.Command {
	var storeCfg config.Store

	return &cli.Command{
		Name:  "teams",
		Usage: "List the team filter options",
		Flags: storeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			chart, _, err := loadChart(ctx, storeCfg)
			if err != nil {
				return err
			}

			for _, team := range chart.Teams() {
				if _, err := fmt.Fprintln(w, team); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
