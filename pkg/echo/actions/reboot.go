package actions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
)

// Reboot restarts a modified resource so pending settings take effect
type Reboot struct {
	client database.RDS
	prompt prompt.Prompt
	log    logger.Logger
}

func NewReboot(c database.RDS, p prompt.Prompt, l logger.Logger) *Reboot {
	return &Reboot{client: c, prompt: p, log: l}
}

func (rb *Reboot) Command() string      { return "reboot" }
func (rb *Reboot) Required() echo.Stage { return echo.StageModified }
func (rb *Reboot) Result() echo.Stage   { return echo.StageRebooted }

func (rb *Reboot) Traverse(ctx context.Context, r *echo.Resource) (bool, error) {
	ok, err := confirm(rb.prompt, rb.log, r.ID, "Are you sure you would like to reboot the instance? Input %s to confirm.", r.ID)
	if err != nil || !ok {
		return false, err
	}

	rb.log.Info("Rebooting instance", "instance", r.ID)

	_, err = rb.client.RebootDBInstance(ctx, &rds.RebootDBInstanceInput{DBInstanceIdentifier: aws.String(r.ID)})
	if err != nil {
		return false, fmt.Errorf("unable to reboot %s: %w", r.ID, err)
	}

	return true, nil
}
