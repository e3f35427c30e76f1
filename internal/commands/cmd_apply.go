package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/redlinehq/redline/internal/core/document"
	"github.com/redlinehq/redline/internal/core/logging"
	"github.com/redlinehq/redline/internal/core/review"
)

type ApplyCmd struct {
	flags *Flags
	store document.Store

	acceptAll bool
	rejectAll bool
	write     bool
	output    string
}

// NewApplyCmd creates a new apply command.
func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags, store: document.LocalStore{}}
}

// Register adds the apply command to the application.
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "apply",
		Usage:     "Apply a proposed edit without interactive review",
		UsageText: "redline apply [options] DOCUMENT [PROPOSAL]",
		Description: `Apply reconstructs the document from the proposal in one step. With
--accept-all every changed unit takes the proposed text; with
--reject-all every unit keeps the current text. Without either flag
the configured default_policy decides.

The result is printed to stdout unless --write or --output is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "accept-all",
				Usage:       "take the proposed text for every changed unit",
				Destination: &cmd.acceptAll,
			},
			&cli.BoolFlag{
				Name:        "reject-all",
				Usage:       "keep the current text for every changed unit",
				Destination: &cmd.rejectAll,
			},
			&cli.BoolFlag{
				Name:        "write",
				Aliases:     []string{"w"},
				Usage:       "write the result over the document in place",
				Destination: &cmd.write,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the result to the given path",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ApplyCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.acceptAll && cmd.rejectAll {
		return errors.New("--accept-all and --reject-all are mutually exclusive")
	}
	if cmd.write && cmd.output != "" {
		return errors.New("--write and --output are mutually exclusive")
	}
	if c.Args().Len() == 0 {
		return errors.New("missing document argument")
	}

	docPath := c.Args().First()
	ctx = logging.WithDocument(ctx, docPath)
	logger := logging.Component("apply")

	proposalPath := c.Args().Get(1)
	if proposalPath == "" {
		found, err := document.FindProposal(docPath, cmd.flags.Config.ProposalGlobs)
		if err != nil {
			return fmt.Errorf("discover proposal for %s: %w", docPath, err)
		}
		proposalPath = found
	}

	original, err := cmd.store.Read(docPath)
	if err != nil {
		return err
	}
	proposed, err := cmd.store.Read(proposalPath)
	if err != nil {
		return err
	}

	units := review.MergeUnits(review.SplitBlocks(review.ComputeDiff(original, proposed)))
	store := review.NewStore(units)

	policy := cmd.flags.Config.Policy()
	switch {
	case cmd.acceptAll:
		store.AcceptAllIncoming()
	case cmd.rejectAll:
		store.AcceptAllCurrent()
	}

	text := review.Reconstruct(units, store.Decisions(), policy)

	decided, total := store.Progress()
	logger.Info().Ctx(ctx).
		Str("proposal", proposalPath).
		Int("decided", decided).
		Int("changed", total).
		Str("policy", policy.String()).
		Msg("applying proposal")

	switch {
	case cmd.write:
		if err := cmd.store.Commit(docPath, text); err != nil {
			return fmt.Errorf("write %s: %w", docPath, err)
		}
		fmt.Fprintf(c.Root().Writer, "Wrote %s\n", docPath)
	case cmd.output != "":
		if err := cmd.store.Commit(cmd.output, text); err != nil {
			return fmt.Errorf("write %s: %w", cmd.output, err)
		}
		fmt.Fprintf(c.Root().Writer, "Wrote %s\n", cmd.output)
	default:
		fmt.Fprint(c.Root().Writer, text)
	}

	return nil
}
