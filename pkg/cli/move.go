package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/cli/config"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/editor"
	"github.com/urfave/cli/v3"
)

func cmdMove(w io.Writer) *cli.Command {
	var (
		storeCfg config.Store
		root     bool
		undo     bool
		strict   bool
		twoStep  bool
	)

	flags := joinFlags(
		storeCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "root",
				Usage:       "Make the employee a top-level employee",
				Destination: &root,
			},
			&cli.BoolFlag{
				Name:        "undo",
				Usage:       "Undo the move right after it succeeds",
				Destination: &undo,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Refuse moves under any report, not only direct ones",
				Sources:     cli.EnvVars("ORGCHART_STRICT_MOVES"),
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "two-step",
				Usage:       "Pick the employee up first, then place them under MANAGER_ID; an unacceptable manager leaves nothing moved",
				Destination: &twoStep,
			},
		},
	)

	return &cli.Command{
		Name:      "move",
		Usage:     "Move an employee under a new manager",
		ArgsUsage: "EMPLOYEE_ID [MANAGER_ID]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			args := c.Args().Slice()
			if len(args) < 1 || len(args) > 2 {
				return goerr.New("usage: move EMPLOYEE_ID [MANAGER_ID | --root]")
			}
			subjectID := types.EmployeeID(args[0])

			var targetID *types.EmployeeID
			switch {
			case root && len(args) == 2:
				return goerr.New("MANAGER_ID and --root are exclusive")
			case !root && len(args) == 1:
				return goerr.New("MANAGER_ID or --root is required")
			case !root:
				targetID = types.EmployeeID(args[1]).Ptr()
			}

			chart, client, err := loadChart(ctx, storeCfg)
			if err != nil {
				return err
			}

			notes := editor.NewNotifications()
			notes.Subscribe(func(note *model.Notification) {
				if note != nil {
					printNotification(w, note)
				}
			})

			var last model.MoveState
			opts := []editor.MoverOption{
				editor.WithSingleFlight(),
				editor.WithMoveObserver(func(ctx context.Context, state model.MoveState) {
					ctxlog.From(ctx).Debug("Move state", "state", state.Name())
					if model.IsTerminal(state) {
						last = state
					}
				}),
			}
			if strict {
				opts = append(opts, editor.WithStrictDescendantCheck())
			}
			mover := editor.NewMover(chart, client, notes, opts...)

			var state model.MoveState
			if twoStep {
				if targetID == nil {
					return goerr.New("--two-step needs a MANAGER_ID")
				}
				mover.StartMobileMove(subjectID)
				state, err = mover.MoveHere(ctx, *targetID)
				if err != nil {
					return goerr.Wrap(err, "move refused")
				}
				if _, idle := state.(model.MoveIdle); idle {
					mover.CancelMobileMove()
					return goerr.New("employee cannot be placed there",
						goerr.V("id", subjectID),
						goerr.V("managerID", *targetID))
				}
			} else {
				state, err = mover.Move(ctx, subjectID, targetID)
				if err != nil {
					return goerr.Wrap(err, "move refused")
				}
			}

			switch s := state.(type) {
			case model.MoveRolledBack:
				return goerr.Wrap(s.Err, "move failed")
			case model.MoveCommitted:
				if undo {
					note := notes.Current()
					if note == nil || !notes.Trigger(ctx, note.ID) {
						return goerr.New("undo is no longer available")
					}
					if rb, ok := last.(model.MoveRolledBack); ok {
						return goerr.Wrap(rb.Err, "undo failed")
					}
				}
			}

			return nil
		},
	}
}

func printNotification(w io.Writer, note *model.Notification) {
	line := fmt.Sprintf("[%s] %s", note.Type, strings.Join(note.Messages, " "))
	if label := note.ActionLabel(); label != "" {
		line += fmt.Sprintf(" (%s available)", label)
	}
	_, _ = fmt.Fprintln(w, line)
}
