package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
	"github.com/jumppad-labs/rdsecho/testutils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupPromote adds a DNS zone where db.example.com points at target
func setupPromote(t *testing.T, target string) (*Promote, *fixture) {
	f := setupFixture(t, testConfig())

	f.route53.On("ListHostedZones", mock.Anything, mock.Anything).Return(&route53.ListHostedZonesOutput{
		HostedZones: []types.HostedZone{
			{Id: aws.String("/hostedzone/Z1"), Name: aws.String("example.com.")},
			{Id: aws.String("/hostedzone/Z2"), Name: aws.String("example.org.")},
		},
	}, nil)

	f.route53.On("ListResourceRecordSets", mock.Anything, mock.Anything).Return(&route53.ListResourceRecordSetsOutput{
		ResourceRecordSets: []types.ResourceRecordSet{
			{
				Name:            aws.String("db.example.com."),
				Type:            types.RRTypeCname,
				TTL:             aws.Int64(300),
				ResourceRecords: []types.ResourceRecord{{Value: aws.String(target)}},
			},
		},
	}, nil)

	f.route53.On("ChangeResourceRecordSets", mock.Anything, mock.Anything).Return(&route53.ChangeResourceRecordSetsOutput{}, nil)

	return NewPromote(f.config, f.route53, f.locator, f.store, f.prompt, f.log), f
}

func TestPromoteDoesNothingWhenDNSAligned(t *testing.T) {
	p, f := setupPromote(t, address("echo-2026-10-17"))
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)

	o, err := f.engine.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, echo.OutcomeAborted, o)

	f.route53.AssertNotCalled(t, "ChangeResourceRecordSets", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	require.Equal(t, "rebooted", f.stage("echo-2026-10-17"))
}

func TestPromoteSwapsCNAMEAndDemotesPrior(t *testing.T) {
	p, f := setupPromote(t, address("echo-2026-10-16"))
	f.addInstance("echo-2026-10-15", "available", testNow.Add(-48*time.Hour), echo.StageRetired)
	f.addInstance("echo-2026-10-16", "available", testNow.Add(-24*time.Hour), echo.StagePromoted)
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)

	o, err := f.engine.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, echo.OutcomeAdvanced, o)

	in := testutils.GetCalls(&f.route53.Mock, "ChangeResourceRecordSets")[0].Arguments.Get(1).(*route53.ChangeResourceRecordSetsInput)
	require.Equal(t, "/hostedzone/Z1", *in.HostedZoneId)

	rs := in.ChangeBatch.Changes[0].ResourceRecordSet
	require.Equal(t, "db.example.com", *rs.Name)
	require.Equal(t, int64(60), *rs.TTL)
	require.Equal(t, address("echo-2026-10-17"), *rs.ResourceRecords[0].Value)

	require.Equal(t, "promoted", f.stage("echo-2026-10-17"))
	require.Equal(t, "forgotten", f.stage("echo-2026-10-16"))
	require.Equal(t, "retired", f.stage("echo-2026-10-15"))
	require.Equal(t, "yes", f.state[f.family.ARN("echo-2026-10-17")]["development"])

	f.prompt.AssertCalled(t, "Confirm", mock.Anything, "echo-2026-10-17")
}

func TestPromoteWithoutPriorPromotion(t *testing.T) {
	p, f := setupPromote(t, "legacy.example.net")
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)

	o, err := f.engine.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, echo.OutcomeAdvanced, o)

	writes := testutils.GetCalls(&f.store.Mock, "Write")
	require.Len(t, writes, 2)
	require.Equal(t, tags.Tags{"development": "yes"}, writes[0].Arguments.Get(2))
	require.Equal(t, tags.Tags{"rdsecho:echo:stage": "promoted"}, writes[1].Arguments.Get(2))
}

func TestPromoteFailsBeforeMutationWhenMultiplePromoted(t *testing.T) {
	p, f := setupPromote(t, "legacy.example.net")
	f.addInstance("echo-2026-10-15", "available", testNow.Add(-48*time.Hour), echo.StagePromoted)
	f.addInstance("echo-2026-10-16", "available", testNow.Add(-24*time.Hour), echo.StagePromoted)
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)

	_, err := f.engine.Run(context.Background(), p)
	require.ErrorIs(t, err, echo.ErrMultiplePromoted)

	f.route53.AssertNotCalled(t, "ListHostedZones", mock.Anything, mock.Anything)
	f.route53.AssertNotCalled(t, "ChangeResourceRecordSets", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestPromoteAbortsWithoutEndpoint(t *testing.T) {
	p, f := setupPromote(t, "legacy.example.net")
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)
	f.instances[0].Endpoint = nil

	o, err := f.engine.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, echo.OutcomeAborted, o)

	f.route53.AssertNotCalled(t, "ChangeResourceRecordSets", mock.Anything, mock.Anything)
}

func TestPromoteDeclinedMakesNoChange(t *testing.T) {
	p, f := setupPromote(t, "legacy.example.net")
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)
	testutils.RemoveOn(&f.prompt.Mock, "Confirm")
	f.prompt.On("Confirm", mock.Anything, mock.Anything).Return(false, nil)

	o, err := f.engine.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, echo.OutcomeAborted, o)

	f.route53.AssertNotCalled(t, "ChangeResourceRecordSets", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestPromoteFailsWhenRecordHasMultipleValues(t *testing.T) {
	p, f := setupPromote(t, "legacy.example.net")
	f.addInstance("echo-2026-10-17", "available", testNow, echo.StageRebooted)

	testutils.RemoveOn(&f.route53.Mock, "ListResourceRecordSets")
	f.route53.On("ListResourceRecordSets", mock.Anything, mock.Anything).Return(&route53.ListResourceRecordSetsOutput{
		ResourceRecordSets: []types.ResourceRecordSet{
			{
				Name: aws.String("db.example.com."),
				Type: types.RRTypeCname,
				ResourceRecords: []types.ResourceRecord{
					{Value: aws.String("a.example.net")},
					{Value: aws.String("b.example.net")},
				},
			},
		},
	}, nil)

	_, err := f.engine.Run(context.Background(), p)
	require.Error(t, err)

	f.route53.AssertNotCalled(t, "ChangeResourceRecordSets", mock.Anything, mock.Anything)
}
