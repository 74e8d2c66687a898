package clients

import (
	"context"
	"os"

	"github.com/jumppad-labs/rdsecho/pkg/clients/aws"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/dns"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

type Clients struct {
	RDS     database.RDS
	Route53 dns.Route53
	Tags    tags.Store
	Prompt  prompt.Prompt
	Logger  logger.Logger
}

// GenerateClients creates the clients used to find and change resources in
// region. When interactive is false the prompt approves every change.
func GenerateClients(ctx context.Context, region string, interactive bool, l logger.Logger) (*Clients, error) {
	cfg, err := aws.LoadConfig(ctx, region, l)
	if err != nil {
		return nil, err
	}

	rc := database.NewRDS(cfg)

	var p prompt.Prompt = prompt.AutoApprove{}
	if interactive {
		p = prompt.New(os.Stdin, os.Stderr, l)
	}

	return &Clients{
		RDS:     rc,
		Route53: dns.NewRoute53(cfg),
		Tags:    tags.NewRDSStore(rc, l),
		Prompt:  p,
		Logger:  l,
	}, nil
}
