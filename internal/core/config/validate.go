package config

import (
	"fmt"
	"strings"

	"github.com/redlinehq/redline/internal/core/review"
	"github.com/redlinehq/redline/internal/core/styles"
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	switch d, err := review.ParseDecision(c.DefaultPolicy); {
	case err != nil:
		return fmt.Errorf("default_policy: %w", err)
	case d == review.DecisionPending:
		return fmt.Errorf("default_policy must be %q or %q", review.DecisionCurrent, review.DecisionIncoming)
	}

	for i, g := range c.ProposalGlobs {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("proposal_globs[%d]: pattern is empty", i)
		}
	}

	return nil
}
