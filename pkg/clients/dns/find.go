package dns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jumppad-labs/rdsecho/pkg/paging"
	"golang.org/x/xerrors"
)

// ErrNotFound is returned when no hosted zone or record matches a name
var ErrNotFound = errors.New("not found")

// Fqdn returns name with a single trailing dot, the form Route 53 returns
// names in
func Fqdn(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".") + "."
}

// FindHostedZone returns the hosted zone with the longest name that contains
// the record name
func FindHostedZone(ctx context.Context, c Route53, name string) (*types.HostedZone, error) {
	fqdn := Fqdn(name)

	it := paging.New(func(ctx context.Context, marker *string) ([]types.HostedZone, *string, error) {
		out, err := c.ListHostedZones(ctx, &route53.ListHostedZonesInput{Marker: marker})
		if err != nil {
			return nil, nil, xerrors.Errorf("unable to list hosted zones: %w", err)
		}

		var next *string
		if out.IsTruncated {
			next = out.NextMarker
		}

		return out.HostedZones, next, nil
	}, func(ctx context.Context, z types.HostedZone) (bool, error) {
		zn := Fqdn(aws.ToString(z.Name))
		return fqdn == zn || strings.HasSuffix(fqdn, "."+zn), nil
	})

	var zone *types.HostedZone
	for it.Next(ctx) {
		z := it.Item()
		if zone == nil || len(aws.ToString(z.Name)) > len(aws.ToString(zone.Name)) {
			zone = &z
		}
	}

	if it.Err() != nil {
		return nil, it.Err()
	}

	if zone == nil {
		return nil, xerrors.Errorf("hosted zone for %s: %w", name, ErrNotFound)
	}

	return zone, nil
}

type recordMarker struct {
	name       *string
	recordType types.RRType
	identifier *string
}

// FindRecord returns the record set of the given type and name in the zone
func FindRecord(ctx context.Context, c Route53, zoneID, name string, t types.RRType) (*types.ResourceRecordSet, error) {
	fqdn := Fqdn(name)
	start := &recordMarker{name: aws.String(fqdn), recordType: t}

	it := paging.New(func(ctx context.Context, m *recordMarker) ([]types.ResourceRecordSet, *recordMarker, error) {
		if m == nil {
			m = start
		}

		out, err := c.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
			HostedZoneId:          aws.String(zoneID),
			StartRecordName:       m.name,
			StartRecordType:       m.recordType,
			StartRecordIdentifier: m.identifier,
		})

		if err != nil {
			return nil, nil, xerrors.Errorf("unable to list records in zone %s: %w", zoneID, err)
		}

		var next *recordMarker
		if out.IsTruncated {
			next = &recordMarker{out.NextRecordName, out.NextRecordType, out.NextRecordIdentifier}
		}

		return out.ResourceRecordSets, next, nil
	}, func(ctx context.Context, rs types.ResourceRecordSet) (bool, error) {
		return rs.Type == t && Fqdn(aws.ToString(rs.Name)) == fqdn, nil
	})

	rs, ok, err := it.First(ctx)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, xerrors.Errorf("%s record %s: %w", t, name, ErrNotFound)
	}

	return &rs, nil
}

// UpsertCNAME points the CNAME name at target, creating the record when it
// does not exist
func UpsertCNAME(ctx context.Context, c Route53, zoneID, name, target string, ttl int64) error {
	_, err := c.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Comment: aws.String(fmt.Sprintf("rds-echo promote %s", target)),
			Changes: []types.Change{
				{
					Action: types.ChangeActionUpsert,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name:            aws.String(name),
						Type:            types.RRTypeCname,
						TTL:             aws.Int64(ttl),
						ResourceRecords: []types.ResourceRecord{{Value: aws.String(target)}},
					},
				},
			},
		},
	})

	if err != nil {
		return xerrors.Errorf("unable to update %s to %s: %w", name, target, err)
	}

	return nil
}
