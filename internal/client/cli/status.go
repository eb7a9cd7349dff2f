package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/scraperadmin/internal/client/query"
	"github.com/iudanet/scraperadmin/internal/client/views"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	st, err := c.authService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	c.io.Printf("Server:   %s\n", c.cfg.Server)
	if !st.LoggedIn {
		c.io.Println("Status:   Not authenticated")
		c.io.Println()
		c.io.Println("Run 'scraperadmin login' to authenticate.")
		return nil
	}

	c.io.Println("Status:   Authenticated")
	if st.Username != "" {
		c.io.Printf("Username: %s\n", st.Username)
	}
	c.io.Printf("Saved:    %s\n", views.FormatAge(st.SavedAt, time.Now()))

	if st.ExpiresAt == nil {
		c.io.Println("Expires:  unknown (opaque token)")
		return nil
	}

	c.io.Printf("Expires:  %s\n", st.ExpiresAt.Format(time.RFC3339))
	if st.Expired {
		c.io.Println("⚠️  Token has expired. Please login again.")
	} else {
		c.io.Printf("Time remaining: %s\n", time.Until(*st.ExpiresAt).Round(time.Second))
	}
	return nil
}

func (c *Cli) runHealth(ctx context.Context) error {
	q := query.Observe(c.cache, views.HealthKey, c.health.Check)
	defer q.Close()

	resp, err := q.Result(ctx)
	c.io.Printf("System Status: %s\n", views.SystemStatus(resp, err))
	if err != nil {
		c.logger.Debug("health check failed", "error", err)
		return ErrReported
	}
	return nil
}

func (c *Cli) runDashboard(ctx context.Context) error {
	d := views.NewDashboard(c.cache, views.DashboardGateways{
		Health:    c.health,
		Users:     c.users,
		Reports:   c.reports,
		Downloads: c.downloads,
	})
	defer d.Close()

	c.io.Println("=== Dashboard ===")
	c.io.Println()

	for _, stat := range d.Load(ctx) {
		c.io.Printf("%-18s %s\n", stat.Name+":", stat.Value)
		if stat.Err != nil {
			c.logger.Debug("dashboard tile failed", "tile", stat.Name, "error", stat.Err)
		}
	}
	return nil
}
