package tags

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/sethvargo/go-retry"
	"golang.org/x/xerrors"
)

const (
	// DefaultBackoffBase is the wait before the first retry of a tag read
	DefaultBackoffBase = 1 * time.Second
	// DefaultBackoffMax caps the exponential wait between reads
	DefaultBackoffMax = 60 * time.Second
	// DefaultAttempts is the total number of reads before giving up
	DefaultAttempts = 10
)

// Tags is the set of tags on a resource, keys are unique
type Tags map[string]string

// Get returns the value for key and whether the tag is present
func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Has returns true when the tag key is present with the given value
func (t Tags) Has(key, value string) bool {
	v, ok := t[key]
	return ok && v == value
}

// Keys returns the sorted tag keys
func (t Tags) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Store reads and writes the tags on a cloud resource
//
//go:generate mockery --name Store --filename store.go
type Store interface {
	// Read returns the current tags on the resource, tolerating propagation
	// delay after a recent write
	Read(ctx context.Context, arn string) (Tags, error)
	// Write sets the given tags on the resource, replacing the value of any
	// existing tag with the same key
	Write(ctx context.Context, arn string, tags Tags) error
}

// RDSStore is a Store for tags on RDS resources
type RDSStore struct {
	client   database.RDS
	log      logger.Logger
	base     time.Duration
	max      time.Duration
	attempts uint64
}

type Option func(s *RDSStore)

// WithBackoff sets the initial and maximum wait between tag reads
func WithBackoff(base, max time.Duration) Option {
	return func(s *RDSStore) {
		s.base = base
		s.max = max
	}
}

// WithAttempts sets the total number of times a tag read is attempted
func WithAttempts(n uint64) Option {
	return func(s *RDSStore) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// NewRDSStore creates a Store backed by the RDS tagging API
func NewRDSStore(c database.RDS, l logger.Logger, opts ...Option) *RDSStore {
	s := &RDSStore{
		client:   c,
		log:      l,
		base:     DefaultBackoffBase,
		max:      DefaultBackoffMax,
		attempts: DefaultAttempts,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

func (s *RDSStore) backoff() retry.Backoff {
	b := retry.NewExponential(s.base)
	b = retry.WithCappedDuration(s.max, b)

	return retry.WithMaxRetries(s.attempts-1, b)
}

// Read lists the tags on the resource. Any provider error is retried with
// exponential backoff, the last error is returned once all attempts fail.
func (s *RDSStore) Read(ctx context.Context, arn string) (Tags, error) {
	var tags Tags
	attempt := 0

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		attempt++

		out, err := s.client.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{
			ResourceName: aws.String(arn),
		})

		if err != nil {
			if ctx.Err() != nil {
				return err
			}

			s.log.Debug("Unable to read tags, retrying", "arn", arn, "attempt", attempt, "code", errorCode(err), "error", err)
			return retry.RetryableError(err)
		}

		tags = fromRDS(out.TagList)
		return nil
	})

	if err != nil {
		return nil, xerrors.Errorf("unable to read tags for %s after %d attempts: %w", arn, attempt, err)
	}

	s.log.Trace("Read tags", "arn", arn, "tags", tags)

	return tags, nil
}

// Write adds the tags to the resource, it is not retried
func (s *RDSStore) Write(ctx context.Context, arn string, t Tags) error {
	s.log.Debug("Writing tags", "arn", arn, "tags", t)

	_, err := s.client.AddTagsToResource(ctx, &rds.AddTagsToResourceInput{
		ResourceName: aws.String(arn),
		Tags:         ToRDS(t),
	})

	if err != nil {
		return xerrors.Errorf("unable to write tags to %s: %w", arn, err)
	}

	return nil
}

// ToRDS converts tags to the RDS representation ordered by key
func ToRDS(t Tags) []rdstypes.Tag {
	rt := []rdstypes.Tag{}
	for _, k := range t.Keys() {
		rt = append(rt, rdstypes.Tag{Key: aws.String(k), Value: aws.String(t[k])})
	}

	return rt
}

func fromRDS(rt []rdstypes.Tag) Tags {
	t := Tags{}
	for _, tag := range rt {
		if tag.Key == nil {
			continue
		}

		t[*tag.Key] = aws.ToString(tag.Value)
	}

	return t
}

func errorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}

	return ""
}
