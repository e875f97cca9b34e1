package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/relocateme/pkg/api"
)

func (c *Cli) runTimeline(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.api.Timeline(ctx, token)
	if err != nil {
		return authError(err)
	}

	c.io.Println("=== Relocation Timeline ===")
	c.io.Printf("Phase: %s | %d/%d steps | %.1f%%\n",
		resp.CurrentPhase, resp.CompletedSteps, resp.TotalSteps, resp.CompletionPercentage)
	c.io.Println()

	category := ""
	for _, s := range resp.Timeline {
		if s.Category != category {
			category = s.Category
			c.io.Printf("[%s]\n", category)
		}
		c.io.Printf("  %s %2d. %s (%d days)\n", checkbox(s.Completed), s.ID, s.Title, s.EstimatedDays)
	}

	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	groups, err := c.api.TimelineByCategory(ctx, token)
	if err != nil {
		return authError(err)
	}

	c.io.Println("=== Progress by Category ===")
	for _, g := range groups {
		c.io.Printf("%-14s %d/%d  %5.1f%%\n", g.Category, g.Completed, g.Total, g.CompletionPercentage)
	}

	return nil
}

// runToggle отмечает шаг: done <id> [note] / undo <id> [note]
func (c *Cli) runToggle(ctx context.Context, args []string, completed bool) error {
	if len(args) == 0 {
		return fmt.Errorf("missing step id. Usage: relocate done|undo <id> [note]")
	}

	stepID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid step id %q: must be a number", args[0])
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req := api.UpdateProgressRequest{StepID: &stepID, Completed: completed}
	if len(args) > 1 {
		note := strings.Join(args[1:], " ")
		req.Notes = &note
	}

	resp, err := c.api.UpdateProgress(ctx, token, req)
	if err != nil {
		return authError(err)
	}

	state := "completed"
	if !completed {
		state = "not completed"
	}
	if resp.Changed {
		c.io.Printf("✓ Step %d marked as %s\n", resp.StepID, state)
	} else {
		c.io.Printf("Step %d was already %s\n", resp.StepID, state)
	}
	c.io.Printf("Phase: %s | %d steps done | %.1f%%\n", resp.CurrentPhase, resp.CompletedSteps, resp.CompletionPercentage)

	return nil
}

func (c *Cli) runDashboard(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	d, err := c.api.Dashboard(ctx, token)
	if err != nil {
		return authError(err)
	}

	p := d.RelocationProgress
	c.io.Printf("=== Dashboard: %s ===\n", d.User)
	c.io.Printf("Phase: %s (%.1f%%)\n", p.CurrentPhase, p.CompletionPercentage)
	c.io.Println()

	c.io.Printf("Completed (%d):\n", len(p.CompletedSteps))
	for _, s := range p.CompletedSteps {
		c.io.Printf("  [x] %s\n", s)
	}
	c.io.Println("Up next:")
	for _, s := range p.PendingSteps {
		c.io.Printf("  [ ] %s\n", s)
	}
	c.io.Println()

	q := d.QuickStats
	c.io.Printf("Days until move:   %d\n", q.DaysUntilMove)
	c.io.Printf("Steps remaining:   %d\n", q.StepsRemaining)
	c.io.Printf("Budget allocated:  $%d\n", q.BudgetAllocated)
	c.io.Printf("Properties viewed: %d\n", q.PropertiesViewed)
	c.io.Printf("Applications sent: %d\n", q.ApplicationsSent)

	if len(d.RecentActivity) > 0 {
		c.io.Println()
		c.io.Println("Recent activity:")
		for _, a := range d.RecentActivity {
			c.io.Printf("  - %s\n", a)
		}
	}

	return nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
