package tags

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database/mocks"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/testutils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testARN = "arn:aws:rds:us-east-1:123456789012:db:echo-2026-10-17"

func setupStore(t *testing.T) (*RDSStore, *mocks.RDS) {
	m := &mocks.RDS{}
	s := NewRDSStore(m, logger.NewTestLogger(t), WithBackoff(time.Millisecond, 4*time.Millisecond))

	return s, m
}

func tagOutput(kv ...string) *rds.ListTagsForResourceOutput {
	out := &rds.ListTagsForResourceOutput{}
	for i := 0; i < len(kv); i += 2 {
		out.TagList = append(out.TagList, rdstypes.Tag{Key: aws.String(kv[i]), Value: aws.String(kv[i+1])})
	}

	return out
}

func TestReadReturnsTags(t *testing.T) {
	s, m := setupStore(t)
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(tagOutput("rdsecho:echo:stage", "new", "team", "data"), nil)

	tags, err := s.Read(context.Background(), testARN)
	require.NoError(t, err)

	require.Equal(t, Tags{"rdsecho:echo:stage": "new", "team": "data"}, tags)

	in := testutils.GetCalls(&m.Mock, "ListTagsForResource")[0].Arguments[1].(*rds.ListTagsForResourceInput)
	require.Equal(t, testARN, *in.ResourceName)
}

func TestReadRetriesUntilSuccess(t *testing.T) {
	s, m := setupStore(t)
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("throttled")).Times(9)
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(tagOutput("rdsecho:echo:stage", "modified"), nil).Once()

	tags, err := s.Read(context.Background(), testARN)
	require.NoError(t, err)

	require.Equal(t, "modified", tags["rdsecho:echo:stage"])
	m.AssertNumberOfCalls(t, "ListTagsForResource", 10)
}

func TestReadReturnsLastErrorWhenAttemptsExhausted(t *testing.T) {
	s, m := setupStore(t)

	first := &smithy.GenericAPIError{Code: "Throttling", Message: "rate exceeded"}
	last := &smithy.GenericAPIError{Code: "InternalFailure", Message: "service fault"}

	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(nil, first).Times(9)
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(nil, last).Once()

	_, err := s.Read(context.Background(), testARN)
	require.Error(t, err)
	require.ErrorIs(t, err, last)

	m.AssertNumberOfCalls(t, "ListTagsForResource", 10)
}

func TestReadHonoursAttemptOption(t *testing.T) {
	m := &mocks.RDS{}
	s := NewRDSStore(m, logger.NewTestLogger(t), WithBackoff(time.Millisecond, time.Millisecond), WithAttempts(3))
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("boom"))

	_, err := s.Read(context.Background(), testARN)
	require.Error(t, err)

	m.AssertNumberOfCalls(t, "ListTagsForResource", 3)
}

func TestReadStopsWhenContextCancelled(t *testing.T) {
	s, m := setupStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	m.On("ListTagsForResource", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		cancel()
	}).Return(nil, fmt.Errorf("request cancelled"))

	_, err := s.Read(ctx, testARN)
	require.Error(t, err)

	m.AssertNumberOfCalls(t, "ListTagsForResource", 1)
}

func TestWriteAddsTagsSortedByKey(t *testing.T) {
	s, m := setupStore(t)
	m.On("AddTagsToResource", mock.Anything, mock.Anything).Return(&rds.AddTagsToResourceOutput{}, nil)

	err := s.Write(context.Background(), testARN, Tags{"b": "2", "a": "1"})
	require.NoError(t, err)

	in := testutils.GetCalls(&m.Mock, "AddTagsToResource")[0].Arguments[1].(*rds.AddTagsToResourceInput)
	require.Equal(t, testARN, *in.ResourceName)
	require.Len(t, in.Tags, 2)
	require.Equal(t, "a", *in.Tags[0].Key)
	require.Equal(t, "b", *in.Tags[1].Key)
}

func TestWriteIsNotRetried(t *testing.T) {
	s, m := setupStore(t)
	m.On("AddTagsToResource", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("boom"))

	err := s.Write(context.Background(), testARN, Tags{"a": "1"})
	require.Error(t, err)

	m.AssertNumberOfCalls(t, "AddTagsToResource", 1)
}

func TestReadReturnsMostRecentWrite(t *testing.T) {
	s, m := setupStore(t)

	// the mock behaves like the provider, writes replace same key tags
	state := Tags{}
	m.On("AddTagsToResource", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		for _, tag := range args.Get(1).(*rds.AddTagsToResourceInput).Tags {
			state[*tag.Key] = *tag.Value
		}
	}).Return(&rds.AddTagsToResourceOutput{}, nil)

	m.On("ListTagsForResource", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, in *rds.ListTagsForResourceInput) *rds.ListTagsForResourceOutput {
			kv := []string{}
			for _, k := range state.Keys() {
				kv = append(kv, k, state[k])
			}

			return tagOutput(kv...)
		},
		nil,
	)

	for _, v := range []string{"new", "modified", "rebooted"} {
		require.NoError(t, s.Write(context.Background(), testARN, Tags{"rdsecho:echo:stage": v}))
	}

	tags, err := s.Read(context.Background(), testARN)
	require.NoError(t, err)

	require.Equal(t, Tags{"rdsecho:echo:stage": "rebooted"}, tags)
}

func TestParseTags(t *testing.T) {
	tags := Parse([]string{"development=yes", "potato=no", "tomato", "pterodactyl=well=maybe", "=empty"})

	require.Equal(t, Tags{
		"development": "yes",
		"potato":      "no",
		"pterodactyl": "well=maybe",
	}, tags)
}

func TestDefaultBackoffDoublesFromOneSecondUpToAMinute(t *testing.T) {
	s := NewRDSStore(&mocks.RDS{}, logger.NewTestLogger(t))
	b := s.backoff()

	expected := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		32 * time.Second,
		60 * time.Second,
		60 * time.Second,
		60 * time.Second,
	}

	for i, e := range expected {
		d, stop := b.Next()
		require.False(t, stop, "retry %d", i+1)
		require.Equal(t, e, d, "retry %d", i+1)
	}

	// ten reads in total, the first one is not a retry
	_, stop := b.Next()
	require.True(t, stop)
}
