package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/redlinehq/redline/internal/core/document"
	"github.com/redlinehq/redline/internal/core/review"
	"github.com/redlinehq/redline/internal/core/styles"
)

type ShowCmd struct {
	flags *Flags
	store document.Store

	color string
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags, store: document.LocalStore{}}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print the review units between a document and its proposal",
		UsageText: "redline show [options] DOCUMENT [PROPOSAL]",
		Description: `Show prints the decomposed diff without opening the TUI: each changed
unit with its removed and added lines, plus a summary line. Useful for
inspecting what a review session would contain, or for piping.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "color",
				Usage:       "colorize output (auto, always, never)",
				Value:       "auto",
				Destination: &cmd.color,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("missing document argument")
	}

	docPath := c.Args().First()
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

	colorize := cmd.color == "always"
	if cmd.color == "auto" {
		colorize = term.IsTerminal(int(os.Stdout.Fd()))
	}

	w := c.Root().Writer
	changed := 0
	for i, u := range units {
		if u.Kind == review.BlockUnchanged {
			continue
		}
		changed++

		header := fmt.Sprintf("unit %d", i)
		if colorize {
			header = styles.HeaderStyle.Render(header)
		}
		fmt.Fprintln(w, header)

		if u.Original != nil {
			printLines(w, *u.Original, "-", styles.RemovedLineStyle, colorize)
		}
		if u.Modified != nil {
			printLines(w, *u.Modified, "+", styles.AddedLineStyle, colorize)
		}
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%d units, %d changed  %s <- %s", len(units), changed, docPath, proposalPath)
	if colorize {
		summary = styles.TextMutedStyle.Render(summary)
	}
	fmt.Fprintln(w, summary)

	return nil
}

func printLines(w io.Writer, text, prefix string, style lipgloss.Style, colorize bool) {
	for _, line := range strings.Split(text, "\n") {
		out := prefix + " " + line
		if colorize {
			out = style.Render(out)
		}
		fmt.Fprintln(w, out)
	}
}
