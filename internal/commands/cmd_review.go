package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/redlinehq/redline/internal/core/document"
	"github.com/redlinehq/redline/internal/core/logging"
	"github.com/redlinehq/redline/internal/core/review"
	"github.com/redlinehq/redline/internal/tui"
)

type ReviewCmd struct {
	flags    *Flags
	store    document.Store
	proposal string
}

// NewReviewCmd creates a new review command.
func NewReviewCmd(flags *Flags) *ReviewCmd {
	return &ReviewCmd{flags: flags, store: document.LocalStore{}}
}

// Register adds the review command to the application.
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "review",
		Usage:     "Interactively review a proposed edit to a document",
		UsageText: "redline review [options] DOCUMENT [PROPOSAL]",
		Description: `Review opens a TUI showing the difference between a document and a
proposed edit as a sequence of review units. Each changed unit can be
accepted (take the proposed text) or kept (keep the current text);
applying writes the reconstructed document back in place.

When PROPOSAL is omitted, the proposal file is discovered next to the
document using the configured proposal_globs patterns.

Examples:
  redline review notes.md                    # discover notes.proposed.md
  redline review notes.md notes.v2.md        # explicit proposal file
  redline review --proposal draft.md plan.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "proposal",
				Aliases:     []string{"p"},
				Usage:       "path to the proposal file",
				Destination: &cmd.proposal,
			},
		},
		Action: cmd.Run,
	})

	return app
}

// Run executes the review session. Exported so the root command can delegate
// to it when invoked as `redline DOCUMENT`.
func (cmd *ReviewCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("missing document argument")
	}

	docPath := c.Args().First()
	ctx = logging.WithDocument(ctx, docPath)
	logger := logging.Component("review")

	proposalPath, err := cmd.resolveProposal(docPath, c)
	if err != nil {
		return err
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

	_, total := store.Progress()
	if total == 0 {
		fmt.Fprintf(c.Root().Writer, "No changes between %s and %s\n", docPath, proposalPath)
		return nil
	}

	logger.Info().Ctx(ctx).
		Str("proposal", proposalPath).
		Int("units", len(units)).
		Int("changed", total).
		Msg("starting review session")

	model := tui.New(tui.Options{
		DocumentPath:  docPath,
		ProposalPath:  proposalPath,
		Units:         units,
		Store:         store,
		MarkdownStyle: cmd.flags.Config.MarkdownStyle,
		Commit: func(text string) error {
			return cmd.store.Commit(docPath, text)
		},
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run review tui: %w", err)
	}

	out := final.(tui.Model)
	if out.Err() != nil {
		return fmt.Errorf("apply review: %w", out.Err())
	}

	if out.Applied() {
		fmt.Fprintf(c.Root().Writer, "Applied review to %s\n", docPath)
	} else {
		fmt.Fprintln(c.Root().Writer, "Review closed without applying")
	}

	return nil
}

// resolveProposal picks the proposal path from the positional argument, the
// --proposal flag, or glob discovery, in that order.
func (cmd *ReviewCmd) resolveProposal(docPath string, c *cli.Command) (string, error) {
	if c.Args().Len() > 1 {
		return c.Args().Get(1), nil
	}
	if cmd.proposal != "" {
		return cmd.proposal, nil
	}

	found, err := document.FindProposal(docPath, cmd.flags.Config.ProposalGlobs)
	if err != nil {
		return "", fmt.Errorf("discover proposal for %s: %w", docPath, err)
	}
	return found, nil
}
