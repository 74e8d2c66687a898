package echo

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Resource is a point in time view of a DB instance taking part in the echo
// lifecycle
type Resource struct {
	// ID is the DB instance identifier
	ID string
	// ClusterID is the identifier of the owning DB cluster, empty for
	// standalone instances
	ClusterID string
	ARN       string
	// Created is nil while the provider has not assigned a creation time
	Created  *time.Time
	Status   string
	Endpoint *string
}

// Available returns true when the provider reports the resource as operable
func (r *Resource) Available() bool {
	return r.Status == StatusAvailable
}

// InstanceARN returns the ARN of the DB instance with the given identifier
func InstanceARN(region, account, id string) string {
	return fmt.Sprintf("arn:aws:rds:%s:%s:db:%s", region, account, id)
}

// Family is the named group of resources an echo lifecycle operates on, the
// name parameterises the tag keys
type Family struct {
	Name    string
	Region  string
	Account string
}

// ManagedKey is the tag marking a resource as a member of the family
func (f Family) ManagedKey() string {
	return fmt.Sprintf("rdsecho:%s:managed", f.Name)
}

// StageKey is the tag holding the stage of a resource
func (f Family) StageKey() string {
	return fmt.Sprintf("rdsecho:%s:stage", f.Name)
}

// InitialTags returns the tags a newly created resource carries
func (f Family) InitialTags() tags.Tags {
	return tags.Tags{
		f.ManagedKey(): "true",
		f.StageKey():   StageNew.String(),
	}
}

// ARN returns the ARN of the DB instance id within the family's account
func (f Family) ARN(id string) string {
	return InstanceARN(f.Region, f.Account, id)
}

func (f Family) fromDBInstance(i rdstypes.DBInstance) *Resource {
	id := aws.ToString(i.DBInstanceIdentifier)

	r := &Resource{
		ID:        id,
		ClusterID: aws.ToString(i.DBClusterIdentifier),
		ARN:       f.ARN(id),
		Created:   i.InstanceCreateTime,
		Status:    aws.ToString(i.DBInstanceStatus),
	}

	if i.Endpoint != nil {
		r.Endpoint = i.Endpoint.Address
	}

	return r
}
