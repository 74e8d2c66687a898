package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	dbmocks "github.com/jumppad-labs/rdsecho/pkg/clients/database/mocks"
	dnsmocks "github.com/jumppad-labs/rdsecho/pkg/clients/dns/mocks"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	promptmocks "github.com/jumppad-labs/rdsecho/pkg/clients/prompt/mocks"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
	tagmocks "github.com/jumppad-labs/rdsecho/pkg/tags/mocks"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

type fixture struct {
	config    *config.Config
	family    echo.Family
	rds       *dbmocks.RDS
	route53   *dnsmocks.Route53
	store     *tagmocks.Store
	prompt    *promptmocks.Prompt
	log       logger.Logger
	state     map[string]tags.Tags
	instances []rdstypes.DBInstance
	locator   *echo.Locator
	engine    *echo.Engine
}

func testConfig() *config.Config {
	return &config.Config{
		Interactive:   true,
		Name:          "echo",
		Region:        "us-east-1",
		AccountNumber: "123456789012",
		Kind:          config.KindInstance,
		Snapshot:      config.Snapshot{DBInstanceIdentifier: "production"},
		New: config.New{
			Engine:          aws.String("postgres"),
			DBInstanceClass: aws.String("db.m5.large"),
			MultiAZ:         aws.Bool(false),
			Port:            aws.Int32(5432),
			Tags:            tags.Tags{"orange": "false"},
		},
		Mod: config.Mod{
			DBParameterGroupName:  aws.String("echo-params"),
			BackupRetentionPeriod: aws.Int32(7),
			ApplyImmediately:      true,
		},
		Promote: config.Promote{
			CNAME: "db.example.com",
			TTL:   60,
			Tags:  tags.Tags{"development": "yes"},
		},
		Retire: config.Retire{
			SkipFinalSnapshot: aws.Bool(true),
		},
	}
}

// setupFixture creates mocks that behave like an account holding
// f.instances, tags are kept in f.state and every prompt is confirmed
func setupFixture(t *testing.T, c *config.Config) *fixture {
	f := &fixture{
		config:  c,
		family:  echo.Family{Name: c.Name, Region: c.Region, Account: c.AccountNumber},
		rds:     &dbmocks.RDS{},
		route53: &dnsmocks.Route53{},
		store:   &tagmocks.Store{},
		prompt:  &promptmocks.Prompt{},
		log:     logger.NewTestLogger(t),
		state:   map[string]tags.Tags{},
	}

	f.rds.On("DescribeDBInstances", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, in *rds.DescribeDBInstancesInput) *rds.DescribeDBInstancesOutput {
			return &rds.DescribeDBInstancesOutput{DBInstances: f.instances}
		},
		nil,
	)

	f.store.On("Read", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, arn string) tags.Tags {
			t := tags.Tags{}
			for k, v := range f.state[arn] {
				t[k] = v
			}

			return t
		},
		nil,
	)

	f.store.On("Write", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		arn := args.String(1)
		if f.state[arn] == nil {
			f.state[arn] = tags.Tags{}
		}

		for k, v := range args.Get(2).(tags.Tags) {
			f.state[arn][k] = v
		}
	}).Return(nil)

	f.prompt.On("Confirm", mock.Anything, mock.Anything).Return(true, nil)

	f.locator = echo.NewLocator(f.rds, f.store, f.family, f.log)
	f.engine = echo.NewEngine(f.locator, f.store, f.log)

	return f
}

// addInstance adds a managed instance in the given stage, an empty stage adds
// an instance without echo tags
func (f *fixture) addInstance(id, status string, created time.Time, stage echo.Stage) {
	f.instances = append(f.instances, rdstypes.DBInstance{
		DBInstanceIdentifier: aws.String(id),
		DBClusterIdentifier:  aws.String(ClusterID(id)),
		DBInstanceStatus:     aws.String(status),
		InstanceCreateTime:   aws.Time(created),
		Endpoint:             &rdstypes.Endpoint{Address: aws.String(address(id))},
	})

	if stage != "" {
		f.state[f.family.ARN(id)] = tags.Tags{
			f.family.ManagedKey(): "true",
			f.family.StageKey():   stage.String(),
		}
	}
}

func (f *fixture) stage(id string) string {
	return f.state[f.family.ARN(id)][f.family.StageKey()]
}

func address(id string) string {
	return id + ".c9akciq32.us-east-1.rds.amazonaws.com"
}
