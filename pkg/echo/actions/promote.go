package actions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jumppad-labs/rdsecho/pkg/clients/dns"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Promote points the configured CNAME at a rebooted resource and demotes the
// resource that was promoted before it
type Promote struct {
	config  *config.Config
	client  dns.Route53
	locator *echo.Locator
	tags    tags.Store
	prompt  prompt.Prompt
	log     logger.Logger
}

func NewPromote(c *config.Config, r53 dns.Route53, loc *echo.Locator, s tags.Store, p prompt.Prompt, l logger.Logger) *Promote {
	return &Promote{config: c, client: r53, locator: loc, tags: s, prompt: p, log: l}
}

func (pr *Promote) Command() string      { return "promote" }
func (pr *Promote) Required() echo.Stage { return echo.StageRebooted }
func (pr *Promote) Result() echo.Stage   { return echo.StagePromoted }

func (pr *Promote) Traverse(ctx context.Context, r *echo.Resource) (bool, error) {
	cname := pr.config.Promote.CNAME
	family := pr.locator.Family()

	prior, err := pr.locator.FindPromoted(ctx)
	if err != nil {
		return false, err
	}

	pr.log.Info("Reading current DNS records", "cname", cname)

	zone, err := dns.FindHostedZone(ctx, pr.client, cname)
	if err != nil {
		return false, err
	}

	zoneID := aws.ToString(zone.Id)
	pr.log.Info("Found hosted zone", "name", aws.ToString(zone.Name), "id", zoneID)

	rs, err := dns.FindRecord(ctx, pr.client, zoneID, cname, types.RRTypeCname)
	if err != nil {
		return false, err
	}

	if len(rs.ResourceRecords) != 1 {
		return false, fmt.Errorf("expected CNAME %s to have a single value, found %d", cname, len(rs.ResourceRecords))
	}

	current := aws.ToString(rs.ResourceRecords[0].Value)
	pr.log.Info("Found CNAME", "cname", aws.ToString(rs.Name), "value", current)

	if r.Endpoint == nil {
		pr.log.Info("Instance has no address, is it still initializing?", "instance", r.ID, "tag", family.ManagedKey())
		return false, nil
	}

	addr := aws.ToString(r.Endpoint)
	if dns.Fqdn(current) == dns.Fqdn(addr) {
		pr.log.Info("Instance already lines up with CNAME, nothing to do", "instance", r.ID, "address", addr, "cname", cname)
		return false, nil
	}

	pr.log.Info("Instance differs from CNAME", "instance", r.ID, "address", addr, "cname", cname)

	ok, err := confirm(
		pr.prompt, pr.log, r.ID,
		"Are you sure you want to promote %s to be the new target of %s? Input %s to confirm.",
		r.ID, cname, r.ID,
	)

	if err != nil || !ok {
		return false, err
	}

	pr.log.Info("Updating CNAME", "cname", cname, "from", current, "to", addr, "ttl", pr.config.Promote.TTL)

	err = dns.UpsertCNAME(ctx, pr.client, zoneID, cname, addr, pr.config.Promote.TTL)
	if err != nil {
		return false, err
	}

	if len(pr.config.Promote.Tags) > 0 {
		pr.log.Info("Applying tags on promote", "instance", r.ID, "tags", pr.config.Promote.Tags)

		err = pr.tags.Write(ctx, r.ARN, pr.config.Promote.Tags)
		if err != nil {
			return false, err
		}
	}

	if prior == nil || prior.ID == r.ID {
		pr.log.Info("No previously promoted instance to demote")
		return true, nil
	}

	pr.log.Info("Demoting previously promoted instance", "instance", prior.ID, "stage", echo.StageForgotten)

	err = pr.tags.Write(ctx, prior.ARN, tags.Tags{family.StageKey(): echo.StageForgotten.String()})
	if err != nil {
		return false, fmt.Errorf("unable to demote %s, set tag %s=%s manually: %w", prior.ID, family.StageKey(), echo.StageForgotten, err)
	}

	return true, nil
}
