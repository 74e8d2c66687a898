package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// CoolDown is the minimum age of the newest managed resource before another
// one is created
const CoolDown = 24 * time.Hour

// ConsoleURL returns the AWS console page of the DB instance id
func ConsoleURL(region, id string) string {
	return fmt.Sprintf("https://console.aws.amazon.com/rds/home?region=%s#dbinstance:id=%s", region, id)
}

// Create restores a new managed resource from the latest snapshot
type Create struct {
	config  *config.Config
	kind    Kind
	locator *echo.Locator
	prompt  prompt.Prompt
	log     logger.Logger
	now     func() time.Time
}

// NewCreate creates the action that starts a new echo lifecycle
func NewCreate(c *config.Config, k Kind, loc *echo.Locator, p prompt.Prompt, l logger.Logger) *Create {
	return &Create{config: c, kind: k, locator: loc, prompt: p, log: l, now: time.Now}
}

// Identifier returns the identifier of a resource created at t
func (c *Create) Identifier(t time.Time) string {
	return fmt.Sprintf("%s-%s", c.config.Name, t.UTC().Format("2006-01-02"))
}

// Run creates the resource unless the newest managed resource is younger than
// the cool-down. A managed resource without a creation time is still being
// created and counts as inside the cool-down.
func (c *Create) Run(ctx context.Context) (echo.Outcome, error) {
	family := c.locator.Family()
	now := c.now()

	c.log.Info("Checking the age of the newest managed instance", "tag", family.ManagedKey(), "cool_down", CoolDown)

	ms, err := c.locator.List(ctx)
	if err != nil {
		return echo.OutcomeAborted, fmt.Errorf("unable to locate the newest managed instance: %w", err)
	}

	var last *echo.Resource
	for _, m := range ms {
		if m.Created == nil {
			c.log.Info("Managed instance has no creation time, it is probably still being created", "instance", m.ID, "status", m.Status)
			return echo.OutcomeTooRecent, nil
		}

		if last == nil || m.Created.After(*last.Created) {
			last = m.Resource
		}
	}

	if last != nil {
		if last.Created.Add(CoolDown).After(now) {
			c.log.Info("Newest managed instance was created less than 24 hours ago", "instance", last.ID, "created", last.Created)
			return echo.OutcomeTooRecent, nil
		}

		c.log.Info("Newest managed instance was created more than 24 hours ago", "instance", last.ID, "created", last.Created)
	} else {
		c.log.Info("No managed instance found", "tag", family.ManagedKey())
	}

	snap, err := c.kind.LatestSnapshot(ctx)
	if err != nil {
		return echo.OutcomeAborted, err
	}

	if snap == nil {
		c.log.Info("Could not locate a suitable snapshot", "kind", c.kind.Name())
		return echo.OutcomeNotFound, nil
	}

	c.log.Info("Located snapshot", "snapshot", snap.ID, "created", snap.Created.Format(time.RFC3339))

	id := c.Identifier(now)

	t := tags.Tags{}
	for k, v := range c.config.New.Tags {
		t[k] = v
	}

	for k, v := range family.InitialTags() {
		t[k] = v
	}

	p := c.kind.ProposeRestore(id, snap, t)
	c.log.Info(p.Title, p.KeyVals()...)

	ok, err := confirm(c.prompt, c.log, id, "Proceed to create a new DB instance from this snapshot? Input %s to confirm.", id)
	if err != nil || !ok {
		return echo.OutcomeAborted, err
	}

	c.log.Info("Creating new DB instance. Hold on to your butts.", "instance", id)

	err = p.Apply(ctx)
	if err != nil {
		return echo.OutcomeAborted, err
	}

	c.log.Info(
		"Created new DB instance, preparation continues once it becomes available",
		"instance", id,
		"console", ConsoleURL(c.config.Region, id),
	)

	return echo.OutcomeAdvanced, nil
}
