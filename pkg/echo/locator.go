package echo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/paging"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Member is a managed resource along with the tags read when it was listed
type Member struct {
	*Resource
	Tags tags.Tags
}

// Stage returns the stage tag read when the member was listed
func (m Member) Stage(f Family) (Stage, bool) {
	v, ok := m.Tags.Get(f.StageKey())
	return Stage(v), ok
}

// Locator finds the resources of a family by searching the tags of every DB
// instance in the account
type Locator struct {
	client database.RDS
	tags   tags.Store
	family Family
	log    logger.Logger
}

// NewLocator creates a Locator for the resources of family f
func NewLocator(c database.RDS, s tags.Store, f Family, l logger.Logger) *Locator {
	return &Locator{client: c, tags: s, family: f, log: l}
}

// Family returns the family the locator searches
func (l *Locator) Family() Family {
	return l.family
}

func (l *Locator) pages(ctx context.Context, marker *string) ([]*Resource, *string, error) {
	out, err := l.client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{Marker: marker})
	if err != nil {
		return nil, nil, fmt.Errorf("unable to list DB instances: %w", err)
	}

	rs := make([]*Resource, 0, len(out.DBInstances))
	for _, i := range out.DBInstances {
		rs = append(rs, l.family.fromDBInstance(i))
	}

	var next *string
	if aws.ToString(out.Marker) != "" {
		next = out.Marker
	}

	return rs, next, nil
}

// members lists every managed instance whose tags satisfy match
func (l *Locator) members(ctx context.Context, match func(tags.Tags) bool) ([]Member, error) {
	found := map[string]tags.Tags{}

	it := paging.New(l.pages, func(ctx context.Context, r *Resource) (bool, error) {
		t, err := l.tags.Read(ctx, r.ARN)
		if err != nil {
			return false, err
		}

		if !t.Has(l.family.ManagedKey(), "true") || !match(t) {
			return false, nil
		}

		found[r.ID] = t
		return true, nil
	})

	rs, err := it.Collect(ctx)
	if err != nil {
		return nil, err
	}

	ms := make([]Member, 0, len(rs))
	for _, r := range rs {
		ms = append(ms, Member{Resource: r, Tags: found[r.ID]})
	}

	l.log.Debug("Located managed resources", "family", l.family.Name, "count", len(ms))

	return ms, nil
}

// List returns every managed resource of the family
func (l *Locator) List(ctx context.Context) ([]Member, error) {
	return l.members(ctx, func(tags.Tags) bool { return true })
}

// FindManaged returns the most recently created managed resource, nil when
// the family has no resource that can be selected
func (l *Locator) FindManaged(ctx context.Context) (*Resource, error) {
	ms, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	return newest(ms), nil
}

// FindNewestInStage returns the most recently created managed resource whose
// stage tag is s
func (l *Locator) FindNewestInStage(ctx context.Context, s Stage) (*Resource, error) {
	ms, err := l.members(ctx, func(t tags.Tags) bool {
		return t.Has(l.family.StageKey(), s.String())
	})

	if err != nil {
		return nil, err
	}

	return newest(ms), nil
}

// FindPromoted returns the single promoted resource, nil when nothing is
// promoted. ErrMultiplePromoted is returned when the family holds more than
// one.
func (l *Locator) FindPromoted(ctx context.Context) (*Resource, error) {
	ms, err := l.members(ctx, func(t tags.Tags) bool {
		return t.Has(l.family.StageKey(), StagePromoted.String())
	})

	if err != nil {
		return nil, err
	}

	switch len(ms) {
	case 0:
		return nil, nil
	case 1:
		return ms[0].Resource, nil
	}

	ids := []string{}
	for _, m := range ms {
		ids = append(ids, m.ID)
	}

	return nil, fmt.Errorf("%w: %v", ErrMultiplePromoted, ids)
}

// ReadStage returns the current stage tag of r, false when the tag is absent
func (l *Locator) ReadStage(ctx context.Context, r *Resource) (Stage, bool, error) {
	t, err := l.tags.Read(ctx, r.ARN)
	if err != nil {
		return "", false, err
	}

	v, ok := t.Get(l.family.StageKey())
	return Stage(v), ok, nil
}

// newest returns the member with the latest creation time. Members without a
// creation time, or sharing their creation time with another member, are
// never selected.
func newest(ms []Member) *Resource {
	seen := map[time.Time]int{}
	for _, m := range ms {
		if m.Created != nil {
			seen[m.Created.UTC()]++
		}
	}

	var n *Resource
	for _, m := range ms {
		if m.Created == nil || seen[m.Created.UTC()] > 1 {
			continue
		}

		if n == nil || m.Created.After(*n.Created) {
			n = m.Resource
		}
	}

	return n
}
